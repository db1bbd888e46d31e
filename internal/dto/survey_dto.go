package dto

import (
	"time"

	"github.com/google/uuid"
)

// OptionCreateDTO is used within QuestionCreateDTO for survey creation.
type OptionCreateDTO struct {
	OptionText  string `json:"option_text" binding:"required"`
	OptionOrder int    `json:"option_order" binding:"required,min=1"`
}

// QuestionCreateDTO is used within SurveyCreateDTO for survey creation.
type QuestionCreateDTO struct {
	QuestionText         string            `json:"question_text" binding:"required"`
	QuestionOrder        int               `json:"question_order" binding:"required,min=1"`
	AllowMultipleAnswers bool              `json:"allow_multiple_answers"`
	Options              []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// SurveyCreateDTO is for creating a new survey with all its questions.
type SurveyCreateDTO struct {
	Title       string              `json:"title" binding:"required,max=255"`
	Description string              `json:"description,omitempty"`
	EndDate     time.Time           `json:"end_date" binding:"required"`
	StartDate   *time.Time          `json:"start_date"`
	IsAnonymous bool                `json:"is_anonymous"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// OptionResponseDTO is used for displaying option details to users.
type OptionResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	QuestionID  uuid.UUID `json:"question_id"`
	OptionText  string    `json:"option_text"`
	OptionOrder int       `json:"option_order"`
}

// QuestionResponseDTO is used for displaying question details to users.
type QuestionResponseDTO struct {
	ID                   uuid.UUID           `json:"id"`
	SurveyID             uuid.UUID           `json:"survey_id"`
	QuestionText         string              `json:"question_text"`
	QuestionOrder        int                 `json:"question_order"`
	AllowMultipleAnswers bool                `json:"allow_multiple_answers"`
	Options              []OptionResponseDTO `json:"options,omitempty"`
}

// SurveyResponseDTO is used for displaying full survey details to users.
type SurveyResponseDTO struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	Status         string                `json:"status"`
	StartDate      *time.Time            `json:"start_date,omitempty"`
	EndDate        time.Time             `json:"end_date"`
	ResponsesCount int                   `json:"responses_count"`
	IsAnonymous    bool                  `json:"is_anonymous"`
	Questions      []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// SurveySummaryDTO is used for listing surveys.
type SurveySummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	EndDate        time.Time `json:"end_date"`
	ResponsesCount int       `json:"responses_count"`
	IsAnonymous    bool      `json:"is_anonymous"`
	QuestionCount  int       `json:"question_count"`
	CreatedAt      time.Time `json:"created_at"`
}
