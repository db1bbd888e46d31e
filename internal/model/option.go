package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Option struct {
	ID          uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	QuestionID  uuid.UUID      `json:"question_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_options_question_order"`
	OptionText  string         `json:"option_text" gorm:"type:text;not null"`
	OptionOrder int            `json:"option_order" gorm:"not null;uniqueIndex:ux_options_question_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
