package dto

import "github.com/google/uuid"

// OptionResultDTO carries the vote statistics for a single option.
type OptionResultDTO struct {
	OptionID   uuid.UUID `json:"option_id"`
	OptionText string    `json:"option_text"`
	VotesCount int       `json:"votes_count"`
	Percentage float64   `json:"percentage"`
	Leading    bool      `json:"leading"`
}

// QuestionResultDTO carries the aggregated results for a single question.
type QuestionResultDTO struct {
	QuestionID   uuid.UUID         `json:"question_id"`
	QuestionText string            `json:"question_text"`
	TotalAnswers int               `json:"total_answers"`
	Options      []OptionResultDTO `json:"options"`
}

// SurveyResultsDTO is the full aggregation returned for a survey.
type SurveyResultsDTO struct {
	SurveyID       uuid.UUID           `json:"survey_id"`
	SurveyTitle    string              `json:"survey_title"`
	TotalResponses int                 `json:"total_responses"`
	Questions      []QuestionResultDTO `json:"questions"`
}
