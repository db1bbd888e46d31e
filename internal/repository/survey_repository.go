package repository

import (
	"errors"

	"context"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	FindByIDWithQuestions(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	FindAllWithQuestionCount(ctx context.Context, statusFilter string) ([]struct {
		model.Survey
		QuestionCount int
	}, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	// GORM creates associated questions and options in one go when populated.
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).First(&survey, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		First(&survey, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllWithQuestionCount(ctx context.Context, statusFilter string) ([]struct {
	model.Survey
	QuestionCount int
}, error) {
	var results []struct {
		model.Survey
		QuestionCount int
	}
	query := r.db.WithContext(ctx).Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Order("surveys.created_at DESC")
	if statusFilter != "" {
		query = query.Where("surveys.status = ?", statusFilter)
	}
	err := query.Scan(&results).Error
	return results, err
}

// UpdateStatus applies a guarded status transition. A zero-row update means the
// survey is no longer in the expected source status.
func (r *surveyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	res := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrInvalidTransition
	}
	return nil
}
