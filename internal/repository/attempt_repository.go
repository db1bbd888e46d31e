package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error)
	FindByUserAndSurvey(ctx context.Context, userID uint, surveyID uuid.UUID) (*model.Attempt, error)
	CountCompletedBySurvey(ctx context.Context, surveyID uuid.UUID) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByUserAndSurvey(ctx context.Context, userID uint, surveyID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND survey_id = ?", userID, surveyID).
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) CountCompletedBySurvey(ctx context.Context, surveyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("survey_id = ? AND status = ?", surveyID, model.AttemptStatusCompleted).
		Count(&count).Error
	return count, err
}
