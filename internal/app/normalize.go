package app

import (
	"encoding/json"

	"github.com/bft-labs/concordlog/internal/domain"
)

// ConcordEventFromCloudEvent maps an application event onto the wire schema.
func ConcordEventFromCloudEvent(consoleType string, ev domain.CloudEvent) domain.ConcordEvent {
	return domain.ConcordEvent{
		ConsoleType:     consoleType,
		EventType:       ev.Type,
		EventName:       ev.Name,
		EventMetadata:   ev.Metadata,
		ProjectNumber:   ev.ProjectNumber,
		LatencyMs:       ev.Latency,
		BrowserWindowID: ev.UserSessionID,
	}
}

// ConcordEventFromSurvey maps a survey response onto the wire schema.
// Response lists are only present on the wire when the caller supplied them.
func ConcordEventFromSurvey(consoleType string, sr domain.SurveyResponse) domain.ConcordEvent {
	var md domain.SurveyMetadata
	if sr.Metadata != nil {
		md = *sr.Metadata
	}
	hats := &domain.HatsResponse{
		HatsMetadata: &domain.HatsMetadata{
			SiteID:           md.SiteID,
			SiteName:         md.SiteName,
			SurveyID:         md.SurveyID,
			SurveyInstanceID: md.SurveyInstanceID,
		},
	}
	for _, r := range sr.MultipleChoiceResponses {
		hats.MultipleChoiceResponse = append(hats.MultipleChoiceResponse, domain.WireMultipleChoiceResponse{
			QuestionNumber: r.QuestionNumber,
			OrderIndex:     r.OrderIndex,
			AnswerIndex:    r.AnswerIndex,
			AnswerText:     r.AnswerText,
			Order:          r.Order,
		})
	}
	for _, r := range sr.RatingResponses {
		hats.RatingResponse = append(hats.RatingResponse, domain.WireRatingResponse{
			QuestionNumber: r.QuestionNumber,
			Rating:         r.Rating,
		})
	}
	for _, r := range sr.OpenTextResponses {
		hats.OpenTextResponse = append(hats.OpenTextResponse, domain.WireOpenTextResponse{
			QuestionNumber: r.QuestionNumber,
			AnswerText:     r.AnswerText,
		})
	}
	return domain.ConcordEvent{
		ConsoleType:     consoleType,
		EventType:       domain.SurveyEventType,
		EventName:       domain.SurveyEventName,
		ProjectNumber:   sr.ProjectNumber,
		BrowserWindowID: sr.UserSessionID,
		HatsResponse:    hats,
	}
}

// FirelogClientInfo maps client info onto the wire schema.
func FirelogClientInfo(ci domain.ClientInfo) domain.FirelogClientInfo {
	out := domain.FirelogClientInfo{ClientType: ci.ClientType}
	if ci.JSClientInfo != nil {
		out.JSClientInfo = &domain.WireJSClientInfo{DeviceType: ci.JSClientInfo.DeviceType}
	}
	if ci.DesktopClientInfo != nil {
		out.DesktopClientInfo = &domain.WireDesktopClientInfo{DeviceType: ci.DesktopClientInfo.OS}
	}
	return out
}

// normalize serializes a ConcordEvent into a LogEvent stamped with timeMs.
func normalize(ev domain.ConcordEvent, timeMs int64) (domain.LogEvent, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return domain.LogEvent{}, err
	}
	return domain.LogEvent{EventTimeMs: timeMs, SourceExtensionJSON: string(payload)}, nil
}
