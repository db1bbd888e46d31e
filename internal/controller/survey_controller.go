package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/middleware"
	"github.com/nmatviiv/pollster/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveyService  service.SurveyService
	sessionService service.SessionService
	resultsService service.ResultsService
}

func NewSurveyController(
	surveyService service.SurveyService,
	sessionService service.SessionService,
	resultsService service.ResultsService,
) *SurveyController {
	return &SurveyController{
		surveyService:  surveyService,
		sessionService: sessionService,
		resultsService: resultsService,
	}
}

// ListSurveys godoc
// @Summary List surveys
// @Description Get survey summaries, optionally filtered by status.
// @Tags Surveys
// @Produce json
// @Param status query string false "Status filter" Enums(draft, active, completed)
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	statusFilter := ctx.Query("status")

	surveys, err := c.surveyService.ListSurveys(ctx.Request.Context(), statusFilter)
	if err != nil {
		log.Error().Err(err).Msg("ListSurveys: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurvey godoc
// @Summary Get full survey details
// @Description Get a survey with its questions and options in display order.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid survey ID"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	survey, err := c.surveyService.GetSurvey(ctx.Request.Context(), surveyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Create a draft survey with all of its questions and options.
// @Tags Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SurveyCreateDTO true "Survey definition"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	survey, err := c.surveyService.CreateSurvey(ctx.Request.Context(), userID, req)
	if err != nil {
		log.Error().Err(err).Msg("CreateSurvey: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// ActivateSurvey godoc
// @Summary Activate a draft survey
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /surveys/{id}/activate [post]
func (c *SurveyController) ActivateSurvey(ctx *gin.Context) {
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	if err := c.surveyService.ActivateSurvey(ctx.Request.Context(), surveyID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Survey activated"})
}

// CompleteSurvey godoc
// @Summary Close an active survey
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /surveys/{id}/complete [post]
func (c *SurveyController) CompleteSurvey(ctx *gin.Context) {
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	if err := c.surveyService.CompleteSurvey(ctx.Request.Context(), surveyID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Survey completed"})
}

// StartAttempt godoc
// @Summary Start an attempt at a survey
// @Description Creates a started attempt for the caller, or returns the existing one.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Survey is not active"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 409 {object} dto.ErrorResponse "Survey already completed by this user"
// @Router /surveys/{id}/start [post]
func (c *SurveyController) StartAttempt(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	attempt, err := c.sessionService.StartAttempt(ctx.Request.Context(), userID, surveyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SubmitAnswers godoc
// @Summary Submit all answers for a survey
// @Description Validates completeness and option membership, then completes the attempt atomically.
// @Tags Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Param request body dto.SubmitAnswersDTO true "Answers for every question of the survey"
// @Success 200 {object} dto.SubmitAnswersResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Incomplete or invalid submission"
// @Failure 403 {object} dto.ErrorResponse "Survey is not active"
// @Failure 404 {object} dto.ErrorResponse "Survey or attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Survey already completed by this user"
// @Router /surveys/{id}/answer [post]
func (c *SurveyController) SubmitAnswers(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if req.SurveyID != surveyID {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Survey ID in path and body do not match"})
		return
	}

	result, err := c.sessionService.SubmitAnswers(ctx.Request.Context(), userID, surveyID, req)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Str("surveyID", surveyID.String()).Msg("SubmitAnswers rejected")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResults godoc
// @Summary Get aggregated survey results
// @Description Per-question, per-option vote counts and percentages from completed attempts.
// @Tags Surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResultsDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/results [get]
func (c *SurveyController) GetResults(ctx *gin.Context) {
	surveyID, ok := parseSurveyID(ctx)
	if !ok {
		return
	}

	results, err := c.resultsService.ComputeResults(ctx.Request.Context(), surveyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func parseSurveyID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid survey ID format"})
		return uuid.Nil, false
	}
	return id, true
}
