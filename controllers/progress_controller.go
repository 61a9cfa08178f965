package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
)

// ProgressController handles HTTP requests for completions, stats and
// rewards.
type ProgressController struct {
	service *services.ProgressService
}

func NewProgressController(service *services.ProgressService) *ProgressController {
	return &ProgressController{service: service}
}

// Complete records a completion for a user.
// POST /api/progress/complete
func (pc *ProgressController) Complete(c *gin.Context) {
	var req models.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Day != "" {
		if _, err := time.Parse(services.DayFormat, req.Day); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day, expected YYYY-MM-DD"})
			return
		}
	}

	result, err := pc.service.CompleteDay(c.Request.Context(), req.UserID, req.Day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Stats returns computed completion stats for a user.
// GET /api/progress/stats?user_id=...
func (pc *ProgressController) Stats(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}

	stats, err := pc.service.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Rewards lists a user's earned rewards.
// GET /api/rewards?user_id=...&locale=en
func (pc *ProgressController) Rewards(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}

	loc, ok := localeFromQuery(c)
	if !ok {
		return
	}

	rewards, err := pc.service.Rewards(c.Request.Context(), userID, loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rewards"})
		return
	}

	c.JSON(http.StatusOK, rewards)
}
