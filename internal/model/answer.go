package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer records one selected option of one question within an attempt.
// A multi-select question produces one row per selected option. Rows are
// immutable once the owning attempt is completed.
type Answer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	AttemptID  uuid.UUID      `json:"attempt_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_answers_attempt_question_option"`
	QuestionID uuid.UUID      `json:"question_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_answers_attempt_question_option"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	OptionID   uuid.UUID      `json:"option_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_answers_attempt_question_option"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
