package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttemptStatusStarted   = "started"
	AttemptStatusCompleted = "completed"
)

// Attempt is a user's single pass at answering a survey. The composite unique
// index enforces at most one attempt per (user, survey); concurrent starts
// serialize through it.
type Attempt struct {
	ID          uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	SurveyID    uuid.UUID      `json:"survey_id" gorm:"type:uuid;not null;uniqueIndex:ux_attempts_user_survey"`
	Survey      Survey         `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:ux_attempts_user_survey"`
	Status      string         `json:"status" gorm:"size:20;not null;default:'started'"` // "started", "completed"
	StartedAt   time.Time      `json:"started_at" gorm:"not null"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
