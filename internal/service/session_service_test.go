package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) SessionService {
	return NewSessionService(
		repository.NewSurveyRepository(db),
		repository.NewAttemptRepository(db),
		db,
	)
}

func submissionFor(survey *model.Survey, picks map[int][]int) dto.SubmitAnswersDTO {
	req := dto.SubmitAnswersDTO{SurveyID: survey.ID}
	for qi, optIdxs := range picks {
		sub := dto.AnswerSubmissionDTO{QuestionID: survey.Questions[qi].ID}
		for _, oi := range optIdxs {
			sub.OptionIDs = append(sub.OptionIDs, survey.Questions[qi].Options[oi].ID)
		}
		req.Answers = append(req.Answers, sub)
	}
	return req
}

func TestStartAttemptIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	first, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)
	require.Equal(t, model.AttemptStatusStarted, first.Status)

	second, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStartAttemptSurveyNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)

	_, err := svc.StartAttempt(context.Background(), 7, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStartAttemptSurveyNotActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)

	for _, status := range []string{model.SurveyStatusDraft, model.SurveyStatusCompleted} {
		survey := seedSurvey(t, db, status, []int{2})
		_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
		assert.ErrorIs(t, err, model.ErrSurveyNotActive, "status %s", status)
	}
}

func TestSubmitAnswersCompletesAttempt(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2, 3})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	resp, err := svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0}, 1: {2}}))
	require.NoError(t, err)
	assert.Equal(t, survey.ID, resp.SurveyID)
	assert.False(t, resp.CompletedAt.IsZero())

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, "id = ?", resp.AttemptID).Error)
	assert.Equal(t, model.AttemptStatusCompleted, attempt.Status)
	require.NotNil(t, attempt.CompletedAt)

	var answers []model.Answer
	require.NoError(t, db.Where("attempt_id = ?", attempt.ID).Find(&answers).Error)
	assert.Len(t, answers, 2)

	var reloaded model.Survey
	require.NoError(t, db.First(&reloaded, "id = ?", survey.ID).Error)
	assert.Equal(t, 1, reloaded.ResponsesCount)
}

func TestSubmitAnswersMultiSelect(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{3}, 0)

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0, 2}}))
	require.NoError(t, err)

	var answers []model.Answer
	require.NoError(t, db.Find(&answers).Error)
	assert.Len(t, answers, 2)
}

func TestSubmitAnswersIncomplete(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2, 2})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0}}))

	var incomplete *model.IncompleteSubmissionError
	require.ErrorAs(t, err, &incomplete)
	require.Len(t, incomplete.MissingQuestionIDs, 1)
	assert.Equal(t, survey.Questions[1].ID, incomplete.MissingQuestionIDs[0])

	// Nothing persisted, attempt still open.
	var answerCount int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&answerCount).Error)
	assert.EqualValues(t, 0, answerCount)

	var attempt model.Attempt
	require.NoError(t, db.Where("survey_id = ? AND user_id = ?", survey.ID, 7).First(&attempt).Error)
	assert.Equal(t, model.AttemptStatusStarted, attempt.Status)

	var reloaded model.Survey
	require.NoError(t, db.First(&reloaded, "id = ?", survey.ID).Error)
	assert.Equal(t, 0, reloaded.ResponsesCount)
}

func TestSubmitAnswersSingleSelectViolation(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{3})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0, 1}}))

	var invalid *model.InvalidSelectionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, survey.Questions[0].ID, invalid.QuestionID)
}

func TestSubmitAnswersUnknownOption(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	bogus := uuid.New()
	req := dto.SubmitAnswersDTO{
		SurveyID: survey.ID,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: survey.Questions[0].ID, OptionIDs: []uuid.UUID{bogus}},
		},
	}
	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, req)

	var unknown *model.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, bogus, unknown.OptionID)
	assert.Equal(t, survey.Questions[0].ID, unknown.QuestionID)
}

func TestSubmitAnswersUnknownQuestion(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)

	req := dto.SubmitAnswersDTO{
		SurveyID: survey.ID,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: uuid.New(), OptionIDs: []uuid.UUID{survey.Questions[0].Options[0].ID}},
		},
	}
	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, req)

	var unknown *model.UnknownQuestionError
	require.ErrorAs(t, err, &unknown)
}

func TestSubmitAnswersWithoutAttempt(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0}}))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestResubmissionRejectedWithoutMutation(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0}}))
	require.NoError(t, err)

	// Second submission picks the other option; it must change nothing.
	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {1}}))
	assert.ErrorIs(t, err, model.ErrAlreadyCompleted)

	var answers []model.Answer
	require.NoError(t, db.Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, survey.Questions[0].Options[0].ID, answers[0].OptionID)

	var reloaded model.Survey
	require.NoError(t, db.First(&reloaded, "id = ?", survey.ID).Error)
	assert.Equal(t, 1, reloaded.ResponsesCount)
}

func TestStartAfterCompletionConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.StartAttempt(context.Background(), 7, survey.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(context.Background(), 7, survey.ID, submissionFor(survey, map[int][]int{0: {0}}))
	require.NoError(t, err)

	_, err = svc.StartAttempt(context.Background(), 7, survey.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyCompleted)
}

func TestAttemptsAreIndependentPerUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newSessionService(db)
	survey := seedSurvey(t, db, model.SurveyStatusActive, []int{2})

	_, err := svc.StartAttempt(context.Background(), 1, survey.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(context.Background(), 1, survey.ID, submissionFor(survey, map[int][]int{0: {0}}))
	require.NoError(t, err)

	second, err := svc.StartAttempt(context.Background(), 2, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptStatusStarted, second.Status)
}
