package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmatviiv/pollster/config"
	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/nmatviiv/pollster/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	tokens service.TokenService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Survey{}, &model.Question{},
		&model.Option{}, &model.Attempt{}, &model.Answer{},
	))

	cfg := &config.Config{Auth: config.Auth{JWTSecret: "test-secret", TokenTTLMinutes: 30}}
	tokens := service.NewTokenService(cfg)

	surveyRepo := repository.NewSurveyRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	userRepo := repository.NewUserRepository(db)

	authCtrl := NewAuthController(service.NewAuthService(userRepo, tokens))
	surveyCtrl := NewSurveyController(
		service.NewSurveyService(surveyRepo),
		service.NewSessionService(surveyRepo, attemptRepo, db),
		service.NewResultsService(surveyRepo, answerRepo, attemptRepo),
	)

	router := gin.New()
	NewController(authCtrl, surveyCtrl, tokens).RegisterRoutes(router)

	return &testApp{router: router, db: db, tokens: tokens}
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) tokenFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := a.tokens.Issue(userID)
	require.NoError(t, err)
	return token
}

func (a *testApp) seedActiveSurvey(t *testing.T, optionCounts []int) *model.Survey {
	t.Helper()
	survey := &model.Survey{
		Title:     "Release retrospective",
		Status:    model.SurveyStatusActive,
		CreatedBy: 1,
		EndDate:   time.Now().Add(48 * time.Hour),
	}
	for qi, count := range optionCounts {
		q := model.Question{QuestionText: "Question", QuestionOrder: qi + 1}
		for oi := 0; oi < count; oi++ {
			q.Options = append(q.Options, model.Option{OptionText: "Option", OptionOrder: oi + 1})
		}
		survey.Questions = append(survey.Questions, q)
	}
	require.NoError(t, a.db.Create(survey).Error)
	return survey
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterDTO{
		Email: "u@example.com", Username: "user1", Password: "long-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginDTO{
		Email: "u@example.com", Password: "long-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token dto.TokenDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	require.NotEmpty(t, token.AccessToken)

	rec = app.request(t, http.MethodGet, "/api/v1/auth/me", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me dto.UserResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "user1", me.Username)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	survey := app.seedActiveSurvey(t, []int{2})

	rec := app.request(t, http.MethodPost, "/api/v1/surveys/"+survey.ID.String()+"/start", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/v1/surveys/"+survey.ID.String()+"/start", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStartAndSubmitFlow(t *testing.T) {
	app := newTestApp(t)
	survey := app.seedActiveSurvey(t, []int{2})
	token := app.tokenFor(t, 7)
	base := "/api/v1/surveys/" + survey.ID.String()

	rec := app.request(t, http.MethodPost, base+"/start", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var attempt dto.AttemptResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attempt))
	assert.Equal(t, model.AttemptStatusStarted, attempt.Status)

	submission := dto.SubmitAnswersDTO{
		SurveyID: survey.ID,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: survey.Questions[0].ID, OptionIDs: []uuid.UUID{survey.Questions[0].Options[0].ID}},
		},
	}
	rec = app.request(t, http.MethodPost, base+"/answer", token, submission)
	require.Equal(t, http.StatusOK, rec.Code)

	// Resubmission conflicts
	rec = app.request(t, http.MethodPost, base+"/answer", token, submission)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Restarting conflicts too
	rec = app.request(t, http.MethodPost, base+"/start", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.request(t, http.MethodGet, base+"/results", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results dto.SurveyResultsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Equal(t, 1, results.TotalResponses)
	require.Len(t, results.Questions, 1)
	assert.Equal(t, 100.0, results.Questions[0].Options[0].Percentage)
	assert.Equal(t, 0.0, results.Questions[0].Options[1].Percentage)
}

func TestSubmitStatusMapping(t *testing.T) {
	app := newTestApp(t)
	survey := app.seedActiveSurvey(t, []int{2, 2})
	token := app.tokenFor(t, 7)
	base := "/api/v1/surveys/" + survey.ID.String()

	// Body/path survey mismatch
	rec := app.request(t, http.MethodPost, base+"/answer", token, dto.SubmitAnswersDTO{
		SurveyID: uuid.New(),
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: survey.Questions[0].ID, OptionIDs: []uuid.UUID{survey.Questions[0].Options[0].ID}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.request(t, http.MethodPost, base+"/start", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Incomplete submission names the missing question
	rec = app.request(t, http.MethodPost, base+"/answer", token, dto.SubmitAnswersDTO{
		SurveyID: survey.ID,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: survey.Questions[0].ID, OptionIDs: []uuid.UUID{survey.Questions[0].Options[0].ID}},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.Len(t, errResp.Details, 1)
	assert.Equal(t, survey.Questions[1].ID.String(), errResp.Details[0])
}

func TestStartStatusMapping(t *testing.T) {
	app := newTestApp(t)
	token := app.tokenFor(t, 7)

	// Unknown survey
	rec := app.request(t, http.MethodPost, "/api/v1/surveys/"+uuid.NewString()+"/start", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Malformed id
	rec = app.request(t, http.MethodPost, "/api/v1/surveys/not-a-uuid/start", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Draft survey is not open for attempts
	draft := &model.Survey{
		Title: "Unpublished", Status: model.SurveyStatusDraft,
		CreatedBy: 1, EndDate: time.Now().Add(time.Hour),
		Questions: []model.Question{{QuestionText: "Q", QuestionOrder: 1, Options: []model.Option{
			{OptionText: "O", OptionOrder: 1}, {OptionText: "P", OptionOrder: 2},
		}}},
	}
	require.NoError(t, app.db.Create(draft).Error)
	rec = app.request(t, http.MethodPost, "/api/v1/surveys/"+draft.ID.String()+"/start", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSurveyLifecycleEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := app.tokenFor(t, 1)

	req := dto.SurveyCreateDTO{
		Title:   "New survey",
		EndDate: time.Now().Add(24 * time.Hour),
		Questions: []dto.QuestionCreateDTO{
			{QuestionText: "Q1", QuestionOrder: 1, Options: []dto.OptionCreateDTO{
				{OptionText: "A", OptionOrder: 1}, {OptionText: "B", OptionOrder: 2},
			}},
		},
	}
	rec := app.request(t, http.MethodPost, "/api/v1/surveys", token, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.SurveyResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	base := "/api/v1/surveys/" + created.ID.String()

	rec = app.request(t, http.MethodPost, base+"/complete", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.request(t, http.MethodPost, base+"/activate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/surveys?status=active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []dto.SurveySummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, created.ID, summaries[0].ID)

	rec = app.request(t, http.MethodPost, base+"/complete", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
