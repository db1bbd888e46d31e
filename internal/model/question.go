package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	SurveyID             uuid.UUID      `json:"survey_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_questions_survey_order"`
	QuestionText         string         `json:"question_text" gorm:"type:text;not null"`
	QuestionOrder        int            `json:"question_order" gorm:"not null;uniqueIndex:ux_questions_survey_order"`
	AllowMultipleAnswers bool           `json:"allow_multiple_answers" gorm:"not null;default:false"`
	Options              []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
