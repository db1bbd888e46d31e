package service

import (
	"testing"
	"time"

	"github.com/nmatviiv/pollster/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.Option{},
		&model.Attempt{},
		&model.Answer{},
	))
	return db
}

// seedSurvey creates a survey with the given per-question option counts.
// optionCounts[i] is the number of options of question i; multiFlags marks
// which questions allow multiple answers.
func seedSurvey(t *testing.T, db *gorm.DB, status string, optionCounts []int, multiFlags ...int) *model.Survey {
	t.Helper()

	multi := make(map[int]bool, len(multiFlags))
	for _, idx := range multiFlags {
		multi[idx] = true
	}

	survey := &model.Survey{
		Title:     "Team lunch preferences",
		Status:    status,
		CreatedBy: 1,
		EndDate:   time.Now().Add(72 * time.Hour),
	}
	for qi, count := range optionCounts {
		question := model.Question{
			QuestionText:         "Question " + string(rune('A'+qi)),
			QuestionOrder:        qi + 1,
			AllowMultipleAnswers: multi[qi],
		}
		for oi := 0; oi < count; oi++ {
			question.Options = append(question.Options, model.Option{
				OptionText:  "Option " + string(rune('1'+oi)),
				OptionOrder: oi + 1,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}
	require.NoError(t, db.Create(survey).Error)
	return survey
}
