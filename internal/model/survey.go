package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SurveyStatusDraft     = "draft"
	SurveyStatusActive    = "active"
	SurveyStatusCompleted = "completed"
)

type Survey struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	Title          string         `json:"title" gorm:"size:255;not null"`
	Description    string         `json:"description,omitempty" gorm:"type:text"`
	Status         string         `json:"status" gorm:"size:20;not null;default:'draft';index"` // "draft", "active", "completed"
	CreatedBy      uint           `json:"created_by" gorm:"not null;index"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        time.Time      `json:"end_date" gorm:"not null;index"`
	ResponsesCount int            `json:"responses_count" gorm:"not null;default:0"`
	IsAnonymous    bool           `json:"is_anonymous" gorm:"not null;default:false"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ValidStatusTransition reports whether a survey may move from one lifecycle
// status to another. Transitions are monotonic: draft -> active -> completed.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case SurveyStatusDraft:
		return to == SurveyStatusActive
	case SurveyStatusActive:
		return to == SurveyStatusCompleted
	default:
		return false
	}
}
