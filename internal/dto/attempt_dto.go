package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttemptResponseDTO describes the state of a user's attempt at a survey.
type AttemptResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	SurveyID    uuid.UUID  `json:"survey_id"`
	UserID      uint       `json:"user_id"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AnswerSubmissionDTO is a user's selection for a single question.
type AnswerSubmissionDTO struct {
	QuestionID uuid.UUID   `json:"question_id" binding:"required"`
	OptionIDs  []uuid.UUID `json:"option_ids" binding:"required,min=1"`
}

// SubmitAnswersDTO is the request DTO for submitting all answers of a survey.
type SubmitAnswersDTO struct {
	SurveyID uuid.UUID             `json:"survey_id" binding:"required"`
	Answers  []AnswerSubmissionDTO `json:"answers" binding:"required,min=1,dive"`
}

// SubmitAnswersResponseDTO confirms a completed submission.
type SubmitAnswersResponseDTO struct {
	SurveyID    uuid.UUID `json:"survey_id"`
	AttemptID   uuid.UUID `json:"attempt_id"`
	Message     string    `json:"message"`
	CompletedAt time.Time `json:"completed_at"`
}
