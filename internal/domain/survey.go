package domain

// SurveyResponse is a HaTS survey response to be logged.
// Every field is optional; absent fields are omitted from the wire payload.
type SurveyResponse struct {
	ProjectNumber           string                   `json:"projectNumber,omitempty" yaml:"projectNumber,omitempty"`
	UserSessionID           string                   `json:"userSessionId,omitempty" yaml:"userSessionId,omitempty"`
	Metadata                *SurveyMetadata          `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	MultipleChoiceResponses []MultipleChoiceResponse `json:"multipleChoiceResponses,omitempty" yaml:"multipleChoiceResponses,omitempty"`
	RatingResponses         []RatingResponse         `json:"ratingResponses,omitempty" yaml:"ratingResponses,omitempty"`
	OpenTextResponses       []OpenTextResponse       `json:"openTextResponses,omitempty" yaml:"openTextResponses,omitempty"`
}

// SurveyMetadata identifies the survey and the site it ran on.
type SurveyMetadata struct {
	SiteID           string `json:"siteId,omitempty" yaml:"siteId,omitempty"`
	SiteName         string `json:"siteName,omitempty" yaml:"siteName,omitempty"`
	SurveyID         string `json:"surveyId,omitempty" yaml:"surveyId,omitempty"`
	SurveyInstanceID string `json:"surveyInstanceId,omitempty" yaml:"surveyInstanceId,omitempty"`
}

// MultipleChoiceResponse is the answer to one multiple choice question.
type MultipleChoiceResponse struct {
	QuestionNumber int      `json:"questionNumber,omitempty" yaml:"questionNumber,omitempty"`
	OrderIndex     []int    `json:"orderIndex,omitempty" yaml:"orderIndex,omitempty"`
	AnswerIndex    []int    `json:"answerIndex,omitempty" yaml:"answerIndex,omitempty"`
	AnswerText     []string `json:"answerText,omitempty" yaml:"answerText,omitempty"`
	Order          []int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// RatingResponse is the answer to one rating question.
// Rating is a pointer so that a zero rating is still reported.
type RatingResponse struct {
	QuestionNumber int  `json:"questionNumber,omitempty" yaml:"questionNumber,omitempty"`
	Rating         *int `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// OpenTextResponse is the answer to one free-text question.
type OpenTextResponse struct {
	QuestionNumber int    `json:"questionNumber,omitempty" yaml:"questionNumber,omitempty"`
	AnswerText     string `json:"answerText,omitempty" yaml:"answerText,omitempty"`
}
