package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResultsService computes display-ready statistics for a survey from the
// answers of completed attempts. Pure read, safe to run alongside writes.
type ResultsService interface {
	ComputeResults(ctx context.Context, surveyID uuid.UUID) (*dto.SurveyResultsDTO, error)
}

type resultsService struct {
	surveyRepo  repository.SurveyRepository
	answerRepo  repository.AnswerRepository
	attemptRepo repository.AttemptRepository
}

func NewResultsService(
	surveyRepo repository.SurveyRepository,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.AttemptRepository,
) ResultsService {
	return &resultsService{
		surveyRepo:  surveyRepo,
		answerRepo:  answerRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *resultsService) ComputeResults(ctx context.Context, surveyID uuid.UUID) (*dto.SurveyResultsDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, surveyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("ComputeResults: failed to load survey")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}

	votes, err := s.answerRepo.CountVotesByOption(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("ComputeResults: failed to count votes")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	respondents, err := s.answerRepo.CountRespondentsByQuestion(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("ComputeResults: failed to count respondents")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}
	totalResponses, err := s.attemptRepo.CountCompletedBySurvey(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Str("surveyID", surveyID.String()).Msg("ComputeResults: failed to count completed attempts")
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryUnavailable, err)
	}

	results := &dto.SurveyResultsDTO{
		SurveyID:       survey.ID,
		SurveyTitle:    survey.Title,
		TotalResponses: int(totalResponses),
		Questions:      make([]dto.QuestionResultDTO, 0, len(survey.Questions)),
	}

	for _, question := range survey.Questions {
		totalAnswers := respondents[question.ID]

		qResult := dto.QuestionResultDTO{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			TotalAnswers: totalAnswers,
			Options:      make([]dto.OptionResultDTO, 0, len(question.Options)),
		}

		maxPct := 0.0
		for _, option := range question.Options {
			votesCount := votes[option.ID]
			pct := 0.0
			if totalAnswers > 0 {
				pct = roundToOneDecimal(float64(votesCount) / float64(totalAnswers) * 100)
			}
			if pct > maxPct {
				maxPct = pct
			}
			qResult.Options = append(qResult.Options, dto.OptionResultDTO{
				OptionID:   option.ID,
				OptionText: option.OptionText,
				VotesCount: votesCount,
				Percentage: pct,
			})
		}

		// Ties are all leading; with no answers nothing leads.
		if totalAnswers > 0 {
			for i := range qResult.Options {
				if qResult.Options[i].Percentage == maxPct {
					qResult.Options[i].Leading = true
				}
			}
		}

		results.Questions = append(results.Questions, qResult)
	}

	return results, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
