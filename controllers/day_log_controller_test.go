package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at an in-memory database migrated with the
// same options as config.InitDB, so duplicate-key violations translate to
// gorm.ErrDuplicatedKey exactly as they do against Postgres.
func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)

	// One shared in-memory database per test.
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Meal{},
		&models.FoodEntry{},
		&models.DayLog{},
	))
	config.DB = db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func dayLogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/daylogs", CreateDayLog)
	return r
}

func TestCreateDayLogDuplicateUserDateRejected(t *testing.T) {
	setupTestDB(t)
	r := dayLogRouter()

	userID := uuid.NewString()
	body := `{"userID":"` + userID + `","date":"2024-03-15"}`

	w := postJSON(r, "/api/daylogs", body)
	assert.Equal(t, 201, w.Code)

	// Same user, same date: the composite unique index rejects the insert.
	w = postJSON(r, "/api/daylogs", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Day log already exists for this user and date")
}

func TestCreateDayLogDifferentDateOrUserSucceeds(t *testing.T) {
	setupTestDB(t)
	r := dayLogRouter()

	userID := uuid.NewString()
	w := postJSON(r, "/api/daylogs", `{"userID":"`+userID+`","date":"2024-03-15"}`)
	assert.Equal(t, 201, w.Code)

	w = postJSON(r, "/api/daylogs", `{"userID":"`+userID+`","date":"2024-03-16"}`)
	assert.Equal(t, 201, w.Code)

	w = postJSON(r, "/api/daylogs", `{"userID":"`+uuid.NewString()+`","date":"2024-03-15"}`)
	assert.Equal(t, 201, w.Code)
}

func TestCreateDayLogInvalidUserID(t *testing.T) {
	setupTestDB(t)
	r := dayLogRouter()

	w := postJSON(r, "/api/daylogs", `{"userID":"not-an-id","date":"2024-03-15"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user ID")
}
