package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByAttempt(ctx context.Context, attemptID uuid.UUID) ([]model.Answer, error)
	CountVotesByOption(ctx context.Context, surveyID uuid.UUID) (map[uuid.UUID]int, error)
	CountRespondentsByQuestion(ctx context.Context, surveyID uuid.UUID) (map[uuid.UUID]int, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByAttempt(ctx context.Context, attemptID uuid.UUID) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

// CountVotesByOption returns, per option of the survey, how many answers from
// completed attempts selected it. In-progress attempts never count.
func (r *answerRepository) CountVotesByOption(ctx context.Context, surveyID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		OptionID uuid.UUID
		Votes    int
	}
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answers.option_id AS option_id, COUNT(*) AS votes").
		Joins("JOIN attempts ON attempts.id = answers.attempt_id").
		Where("attempts.survey_id = ? AND attempts.status = ? AND attempts.deleted_at IS NULL", surveyID, model.AttemptStatusCompleted).
		Group("answers.option_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.OptionID] = row.Votes
	}
	return counts, nil
}

// CountRespondentsByQuestion returns, per question of the survey, how many
// completed attempts answered it. A multi-select answer counts once.
func (r *answerRepository) CountRespondentsByQuestion(ctx context.Context, surveyID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		QuestionID  uuid.UUID
		Respondents int
	}
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answers.question_id AS question_id, COUNT(DISTINCT answers.attempt_id) AS respondents").
		Joins("JOIN attempts ON attempts.id = answers.attempt_id").
		Where("attempts.survey_id = ? AND attempts.status = ? AND attempts.deleted_at IS NULL", surveyID, model.AttemptStatusCompleted).
		Group("answers.question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.QuestionID] = row.Respondents
	}
	return counts, nil
}
