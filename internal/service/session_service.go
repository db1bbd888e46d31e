package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService governs the lifecycle of a user's attempt at a survey:
// start, answer submission, completion. One attempt per (user, survey).
type SessionService interface {
	StartAttempt(ctx context.Context, userID uint, surveyID uuid.UUID) (*dto.AttemptResponseDTO, error)
	SubmitAnswers(ctx context.Context, userID uint, surveyID uuid.UUID, req dto.SubmitAnswersDTO) (*dto.SubmitAnswersResponseDTO, error)
	GetAttempt(ctx context.Context, userID uint, surveyID uuid.UUID) (*dto.AttemptResponseDTO, error)
}

type sessionService struct {
	surveyRepo  repository.SurveyRepository
	attemptRepo repository.AttemptRepository
	db          *gorm.DB // transactions for SubmitAnswers
}

func NewSessionService(
	surveyRepo repository.SurveyRepository,
	attemptRepo repository.AttemptRepository,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		surveyRepo:  surveyRepo,
		attemptRepo: attemptRepo,
		db:          db,
	}
}

// StartAttempt creates a started attempt for (user, survey) unless one already
// exists. Repeated calls while started are idempotent and return the same
// attempt; a completed attempt is a conflict, never a silent overwrite.
func (s *sessionService) StartAttempt(ctx context.Context, userID uint, surveyID uuid.UUID) (*dto.AttemptResponseDTO, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("StartAttempt: failed to load survey")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	if survey.Status != model.SurveyStatusActive {
		return nil, model.ErrSurveyNotActive
	}

	existing, err := s.attemptRepo.FindByUserAndSurvey(ctx, userID, surveyID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Error().Err(err).Uint("userID", userID).Str("surveyID", surveyID.String()).Msg("StartAttempt: failed to look up attempt")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	if existing != nil {
		if existing.Status == model.AttemptStatusCompleted {
			return nil, model.ErrAlreadyCompleted
		}
		return attemptToDTO(existing), nil
	}

	attempt := &model.Attempt{
		SurveyID:  surveyID,
		UserID:    userID,
		Status:    model.AttemptStatusStarted,
		StartedAt: time.Now(),
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		// A concurrent start may have won the race on the (user, survey)
		// unique index. Re-read and resolve as the idempotent case.
		raced, lookupErr := s.attemptRepo.FindByUserAndSurvey(ctx, userID, surveyID)
		if lookupErr == nil && raced != nil {
			if raced.Status == model.AttemptStatusCompleted {
				return nil, model.ErrAlreadyCompleted
			}
			return attemptToDTO(raced), nil
		}
		log.Error().Err(err).Uint("userID", userID).Str("surveyID", surveyID.String()).Msg("StartAttempt: failed to create attempt")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}

	log.Info().Str("attemptID", attempt.ID.String()).Uint("userID", userID).Str("surveyID", surveyID.String()).Msg("Attempt started")
	return attemptToDTO(attempt), nil
}

// SubmitAnswers validates the full submission against the survey's question
// set and, if valid, persists all answers, completes the attempt and bumps the
// survey's response counter in a single transaction. Validation failures leave
// the attempt started with no answers persisted.
func (s *sessionService) SubmitAnswers(ctx context.Context, userID uint, surveyID uuid.UUID, req dto.SubmitAnswersDTO) (*dto.SubmitAnswersResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, surveyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("SubmitAnswers: failed to load survey")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	if survey.Status != model.SurveyStatusActive {
		return nil, model.ErrSurveyNotActive
	}
	if len(survey.Questions) == 0 {
		return nil, fmt.Errorf("survey %s has no questions, submission is not possible", surveyID)
	}

	attempt, err := s.attemptRepo.FindByUserAndSurvey(ctx, userID, surveyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		log.Error().Err(err).Uint("userID", userID).Str("surveyID", surveyID.String()).Msg("SubmitAnswers: failed to look up attempt")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	if attempt.Status == model.AttemptStatusCompleted {
		return nil, model.ErrAlreadyCompleted
	}

	answers, err := validateSubmission(survey, req.Answers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarded transition: a concurrent submitter that already completed
		// the attempt updates zero rows, so answers are written and the
		// response counter incremented at most once.
		res := tx.Model(&model.Attempt{}).
			Where("id = ? AND status = ?", attempt.ID, model.AttemptStatusStarted).
			Updates(map[string]interface{}{"status": model.AttemptStatusCompleted, "completed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrAlreadyCompleted
		}

		for i := range answers {
			answers[i].AttemptID = attempt.ID
		}
		if err := tx.Create(&answers).Error; err != nil {
			return fmt.Errorf("failed to persist answers: %w", err)
		}

		if err := tx.Model(&model.Survey{}).
			Where("id = ?", surveyID).
			UpdateColumn("responses_count", gorm.Expr("responses_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment response counter: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyCompleted) {
			return nil, model.ErrAlreadyCompleted
		}
		log.Error().Err(err).Str("attemptID", attempt.ID.String()).Msg("SubmitAnswers: transaction failed")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}

	log.Info().Str("attemptID", attempt.ID.String()).Str("surveyID", surveyID.String()).Int("answers", len(answers)).Msg("Survey completed")
	return &dto.SubmitAnswersResponseDTO{
		SurveyID:    surveyID,
		AttemptID:   attempt.ID,
		Message:     "Survey completed successfully",
		CompletedAt: now,
	}, nil
}

// GetAttempt returns the caller's attempt for a survey, if any.
func (s *sessionService) GetAttempt(ctx context.Context, userID uint, surveyID uuid.UUID) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.attemptRepo.FindByUserAndSurvey(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}
	return attemptToDTO(attempt), nil
}

// validateSubmission checks completeness, selection counts and option
// membership before anything is written. The returned answer rows carry no
// attempt id yet.
func validateSubmission(survey *model.Survey, submitted []dto.AnswerSubmissionDTO) ([]model.Answer, error) {
	questionMap := make(map[uuid.UUID]*model.Question, len(survey.Questions))
	for i := range survey.Questions {
		questionMap[survey.Questions[i].ID] = &survey.Questions[i]
	}

	seen := make(map[uuid.UUID]bool, len(submitted))
	var answers []model.Answer

	for _, sub := range submitted {
		question, exists := questionMap[sub.QuestionID]
		if !exists {
			return nil, &model.UnknownQuestionError{QuestionID: sub.QuestionID}
		}
		if seen[sub.QuestionID] {
			return nil, &model.InvalidSelectionError{QuestionID: sub.QuestionID, Reason: "question answered more than once"}
		}
		seen[sub.QuestionID] = true

		if len(sub.OptionIDs) == 0 {
			return nil, &model.InvalidSelectionError{QuestionID: sub.QuestionID, Reason: "at least one option must be selected"}
		}
		if len(sub.OptionIDs) > 1 && !question.AllowMultipleAnswers {
			return nil, &model.InvalidSelectionError{QuestionID: sub.QuestionID, Reason: "question does not allow multiple answers"}
		}

		validOptions := make(map[uuid.UUID]bool, len(question.Options))
		for _, opt := range question.Options {
			validOptions[opt.ID] = true
		}
		picked := make(map[uuid.UUID]bool, len(sub.OptionIDs))
		for _, optionID := range sub.OptionIDs {
			if !validOptions[optionID] {
				return nil, &model.UnknownOptionError{QuestionID: sub.QuestionID, OptionID: optionID}
			}
			if picked[optionID] {
				return nil, &model.InvalidSelectionError{QuestionID: sub.QuestionID, Reason: "option selected more than once"}
			}
			picked[optionID] = true
			answers = append(answers, model.Answer{
				QuestionID: sub.QuestionID,
				OptionID:   optionID,
			})
		}
	}

	var missing []uuid.UUID
	for _, q := range survey.Questions {
		if !seen[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].String() < missing[j].String() })
		return nil, &model.IncompleteSubmissionError{MissingQuestionIDs: missing}
	}

	return answers, nil
}

func attemptToDTO(attempt *model.Attempt) *dto.AttemptResponseDTO {
	return &dto.AttemptResponseDTO{
		ID:          attempt.ID,
		SurveyID:    attempt.SurveyID,
		UserID:      attempt.UserID,
		Status:      attempt.Status,
		StartedAt:   attempt.StartedAt,
		CompletedAt: attempt.CompletedAt,
	}
}
