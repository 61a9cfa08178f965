package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
)

// DevotionalController handles HTTP requests for devotional content.
type DevotionalController struct {
	service *services.DevotionalService
}

func NewDevotionalController(service *services.DevotionalService) *DevotionalController {
	return &DevotionalController{service: service}
}

// Today returns today's devotional.
// GET /api/devotionals/today?locale=en
func (dc *DevotionalController) Today(c *gin.Context) {
	loc, ok := localeFromQuery(c)
	if !ok {
		return
	}

	view, err := dc.service.Today(c.Request.Context(), loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotional"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// ByDay returns the devotional for a specific day.
// GET /api/devotionals?date=YYYY-MM-DD&locale=en
func (dc *DevotionalController) ByDay(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date parameter"})
		return
	}

	loc, ok := localeFromQuery(c)
	if !ok {
		return
	}

	view, err := dc.service.ByDay(c.Request.Context(), day, loc)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDevotionalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Devotional not found"})
		case errors.Is(err, services.ErrInvalidDay):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devotional"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// Create stores a new devotional.
// POST /api/devotionals
func (dc *DevotionalController) Create(c *gin.Context) {
	var req models.CreateDevotionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if _, err := time.Parse(services.DayFormat, req.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day, expected YYYY-MM-DD"})
		return
	}

	id, err := dc.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create devotional"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
