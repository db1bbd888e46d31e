package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/rs/zerolog/log"
)

// SurveyService covers the survey catalog: listing, details, creation and
// lifecycle transitions.
type SurveyService interface {
	ListSurveys(ctx context.Context, statusFilter string) ([]dto.SurveySummaryDTO, error)
	GetSurvey(ctx context.Context, id uuid.UUID) (*dto.SurveyResponseDTO, error)
	CreateSurvey(ctx context.Context, userID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	ActivateSurvey(ctx context.Context, id uuid.UUID) error
	CompleteSurvey(ctx context.Context, id uuid.UUID) error
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo}
}

func (s *surveyService) ListSurveys(ctx context.Context, statusFilter string) ([]dto.SurveySummaryDTO, error) {
	surveysWithCount, err := s.surveyRepo.FindAllWithQuestionCount(ctx, statusFilter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list surveys from repository")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveySummaryDTO, 0, len(surveysWithCount))
	for _, swc := range surveysWithCount {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:             swc.Survey.ID,
			Title:          swc.Survey.Title,
			Description:    swc.Survey.Description,
			Status:         swc.Survey.Status,
			EndDate:        swc.Survey.EndDate,
			ResponsesCount: swc.Survey.ResponsesCount,
			IsAnonymous:    swc.Survey.IsAnonymous,
			QuestionCount:  swc.QuestionCount,
			CreatedAt:      swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *surveyService) GetSurvey(ctx context.Context, id uuid.UUID) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, survey); err != nil {
		log.Error().Err(err).Msg("Failed to copy Survey model to SurveyResponseDTO")
		return nil, fmt.Errorf("error preparing survey details response: %w", err)
	}
	return &resp, nil
}

func (s *surveyService) CreateSurvey(ctx context.Context, userID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	orders := make(map[int]bool, len(req.Questions))
	for _, q := range req.Questions {
		if orders[q.QuestionOrder] {
			return nil, fmt.Errorf("duplicate question_order %d in survey", q.QuestionOrder)
		}
		orders[q.QuestionOrder] = true

		optOrders := make(map[int]bool, len(q.Options))
		for _, o := range q.Options {
			if optOrders[o.OptionOrder] {
				return nil, fmt.Errorf("duplicate option_order %d in question %q", o.OptionOrder, q.QuestionText)
			}
			optOrders[o.OptionOrder] = true
		}
	}

	survey := model.Survey{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.SurveyStatusDraft,
		CreatedBy:   userID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsAnonymous: req.IsAnonymous,
	}
	for _, q := range req.Questions {
		question := model.Question{
			QuestionText:         q.QuestionText,
			QuestionOrder:        q.QuestionOrder,
			AllowMultipleAnswers: q.AllowMultipleAnswers,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.Option{
				OptionText:  o.OptionText,
				OptionOrder: o.OptionOrder,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}

	if err := s.surveyRepo.Create(ctx, &survey); err != nil {
		log.Error().Err(err).Msg("Failed to create survey")
		return nil, fmt.Errorf("error creating survey: %w", err)
	}

	log.Info().Str("surveyID", survey.ID.String()).Uint("userID", userID).Msg("Survey created")
	return s.GetSurvey(ctx, survey.ID)
}

func (s *surveyService) ActivateSurvey(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, model.SurveyStatusActive)
}

func (s *surveyService) CompleteSurvey(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, model.SurveyStatusCompleted)
}

func (s *surveyService) transition(ctx context.Context, id uuid.UUID, to string) error {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !model.ValidStatusTransition(survey.Status, to) {
		return model.ErrInvalidTransition
	}
	if err := s.surveyRepo.UpdateStatus(ctx, id, survey.Status, to); err != nil {
		return err
	}
	log.Info().Str("surveyID", id.String()).Str("from", survey.Status).Str("to", to).Msg("Survey status changed")
	return nil
}
