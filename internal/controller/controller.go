package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/middleware"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/service"
)

type Controller struct {
	auth    *AuthController
	surveys *SurveyController
	tokens  service.TokenService
}

func NewController(auth *AuthController, surveys *SurveyController, tokens service.TokenService) *Controller {
	return &Controller{auth: auth, surveys: surveys, tokens: tokens}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	requireAuth := middleware.RequireAuth(ctrl.tokens)
	{
		auth := apiV1.Group("/auth")
		auth.POST("/register", ctrl.auth.Register)
		auth.POST("/login", ctrl.auth.Login)
		auth.GET("/me", requireAuth, ctrl.auth.Me)

		surveys := apiV1.Group("/surveys")
		surveys.GET("", ctrl.surveys.ListSurveys)
		surveys.POST("", requireAuth, ctrl.surveys.CreateSurvey)
		surveys.GET("/:id", requireAuth, ctrl.surveys.GetSurvey)
		surveys.POST("/:id/activate", requireAuth, ctrl.surveys.ActivateSurvey)
		surveys.POST("/:id/complete", requireAuth, ctrl.surveys.CompleteSurvey)
		surveys.POST("/:id/start", requireAuth, ctrl.surveys.StartAttempt)
		surveys.POST("/:id/answer", requireAuth, ctrl.surveys.SubmitAnswers)
		surveys.GET("/:id/results", ctrl.surveys.GetResults)
	}
}

// respondError maps domain errors onto HTTP statuses. Validation errors carry
// the offending identities so the caller can correct and retry.
func respondError(ctx *gin.Context, err error) {
	var (
		incomplete *model.IncompleteSubmissionError
		invalidSel *model.InvalidSelectionError
		unknownQ   *model.UnknownQuestionError
		unknownOpt *model.UnknownOptionError
	)
	switch {
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found"})
	case errors.Is(err, model.ErrSurveyNotActive):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Survey is not active"})
	case errors.Is(err, model.ErrAlreadyCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "You have already completed this survey"})
	case errors.Is(err, model.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Invalid survey status transition"})
	case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrUsernameTaken):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &incomplete):
		details := make([]string, len(incomplete.MissingQuestionIDs))
		for i, id := range incomplete.MissingQuestionIDs {
			details[i] = id.String()
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Submission is incomplete", Details: details})
	case errors.As(err, &invalidSel), errors.As(err, &unknownQ), errors.As(err, &unknownOpt):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrRepositoryUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Storage temporarily unavailable, please retry"})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
