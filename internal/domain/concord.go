package domain

// LogSource is the log source name every batch is tagged with.
const LogSource = "CONCORD"

// Survey responses are logged as events with this type and name.
const (
	SurveyEventType = "hatsSurvey"
	SurveyEventName = "surveyResponse"
)

// ConcordEvent is the JSON object serialized into LogEvent.SourceExtensionJSON.
type ConcordEvent struct {
	ConsoleType     string        `json:"console_type,omitempty"`
	EventType       string        `json:"event_type,omitempty"`
	EventName       string        `json:"event_name,omitempty"`
	EventMetadata   []any         `json:"event_metadata,omitempty"`
	ProjectNumber   string        `json:"project_number,omitempty"`
	LatencyMs       int64         `json:"latency_ms,omitempty"`
	BrowserWindowID string        `json:"browser_window_id,omitempty"`
	HatsResponse    *HatsResponse `json:"hats_response,omitempty"`
}

// HatsResponse is the wire form of a SurveyResponse.
type HatsResponse struct {
	HatsMetadata           *HatsMetadata                `json:"hats_metadata,omitempty"`
	MultipleChoiceResponse []WireMultipleChoiceResponse `json:"multiple_choice_response,omitempty"`
	RatingResponse         []WireRatingResponse         `json:"rating_response,omitempty"`
	OpenTextResponse       []WireOpenTextResponse       `json:"open_text_response,omitempty"`
}

// HatsMetadata is the wire form of SurveyMetadata.
type HatsMetadata struct {
	SiteID           string `json:"site_id,omitempty"`
	SiteName         string `json:"site_name,omitempty"`
	SurveyID         string `json:"survey_id,omitempty"`
	SurveyInstanceID string `json:"survey_instance_id,omitempty"`
}

type WireMultipleChoiceResponse struct {
	QuestionNumber int      `json:"question_number,omitempty"`
	OrderIndex     []int    `json:"order_index,omitempty"`
	AnswerIndex    []int    `json:"answer_index,omitempty"`
	AnswerText     []string `json:"answer_text,omitempty"`
	Order          []int    `json:"order,omitempty"`
}

type WireRatingResponse struct {
	QuestionNumber int  `json:"question_number,omitempty"`
	Rating         *int `json:"rating,omitempty"`
}

type WireOpenTextResponse struct {
	QuestionNumber int    `json:"question_number,omitempty"`
	AnswerText     string `json:"answer_text,omitempty"`
}

// FirelogClientInfo is the wire form of ClientInfo.
type FirelogClientInfo struct {
	ClientType        ClientType             `json:"client_type"`
	JSClientInfo      *WireJSClientInfo      `json:"js_client_info,omitempty"`
	DesktopClientInfo *WireDesktopClientInfo `json:"desktop_client_info,omitempty"`
}

type WireJSClientInfo struct {
	DeviceType DeviceType `json:"device_type"`
}

type WireDesktopClientInfo struct {
	DeviceType OsType `json:"device_type"`
}
