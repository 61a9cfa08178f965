package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/controllers"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubProgressRepo struct {
	records []models.Progress
}

func (s *stubProgressRepo) Create(_ context.Context, p *models.Progress) (string, error) {
	s.records = append(s.records, *p)
	return "507f1f77bcf86cd799439011", nil
}

func (s *stubProgressRepo) FindByUser(_ context.Context, _ string) ([]models.Progress, error) {
	return s.records, nil
}

type stubRewardRepo struct{}

func (s *stubRewardRepo) Create(_ context.Context, _ *models.Reward) (string, error) {
	return "507f1f77bcf86cd799439012", nil
}
func (s *stubRewardRepo) FindByUser(_ context.Context, _ string) ([]models.Reward, error) {
	return nil, nil
}
func (s *stubRewardRepo) ExistsByType(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func newProgressRouter(repo *stubProgressRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()
	svc := services.NewProgressService(repo, &stubRewardRepo{}, logger)
	ctrl := controllers.NewProgressController(svc)

	r := gin.New()
	r.POST("/api/progress/complete", ctrl.Complete)
	r.GET("/api/progress/stats", ctrl.Stats)
	r.GET("/api/rewards", ctrl.Rewards)
	return r
}

func TestComplete_Created(t *testing.T) {
	repo := &stubProgressRepo{}
	r := newProgressRouter(repo)

	body := `{"user_id":"u1","day":"2025-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/progress/complete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp services.CompletionResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.PointsEarned)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.records, 1)
}

func TestComplete_MissingUserID(t *testing.T) {
	r := newProgressRouter(&stubProgressRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/progress/complete", strings.NewReader(`{"day":"2025-01-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplete_MalformedDay(t *testing.T) {
	r := newProgressRouter(&stubProgressRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/progress/complete", strings.NewReader(`{"user_id":"u1","day":"not-a-date"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats_ReturnsComputedStats(t *testing.T) {
	today := time.Now().Format(services.DayFormat)
	yesterday := time.Now().AddDate(0, 0, -1).Format(services.DayFormat)
	repo := &stubProgressRepo{records: []models.Progress{
		{UserID: "u1", Day: yesterday, Completed: true, PointsEarned: 10},
		{UserID: "u1", Day: today, Completed: true, PointsEarned: 10},
	}}
	r := newProgressRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress/stats?user_id=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.ProgressStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.DaysCompleted)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 20, stats.TotalPoints)
}

func TestStats_MissingUserID(t *testing.T) {
	r := newProgressRouter(&stubProgressRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRewards_UnsupportedLocale(t *testing.T) {
	r := newProgressRouter(&stubProgressRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rewards?user_id=u1&locale=fr", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
