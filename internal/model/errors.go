package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound              = errors.New("entity not found")
	ErrSurveyNotActive       = errors.New("survey is not active")
	ErrAlreadyCompleted      = errors.New("survey already completed by this user")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidCredentials    = errors.New("incorrect email or password")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidTransition     = errors.New("invalid survey status transition")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// IncompleteSubmissionError names the survey questions missing from a
// submission. The caller can correct and retry; nothing was persisted.
type IncompleteSubmissionError struct {
	MissingQuestionIDs []uuid.UUID
}

func (e *IncompleteSubmissionError) Error() string {
	ids := make([]string, len(e.MissingQuestionIDs))
	for i, id := range e.MissingQuestionIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("submission is missing answers for questions: %s", strings.Join(ids, ", "))
}

// InvalidSelectionError reports a selection-count rule violation for a question.
type InvalidSelectionError struct {
	QuestionID uuid.UUID
	Reason     string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection for question %s: %s", e.QuestionID, e.Reason)
}

// UnknownQuestionError reports a submitted question that does not belong to the survey.
type UnknownQuestionError struct {
	QuestionID uuid.UUID
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question %s does not belong to this survey", e.QuestionID)
}

// UnknownOptionError reports a selected option that does not belong to its question.
type UnknownOptionError struct {
	QuestionID uuid.UUID
	OptionID   uuid.UUID
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("option %s does not belong to question %s", e.OptionID, e.QuestionID)
}
