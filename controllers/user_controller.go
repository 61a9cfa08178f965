package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"github.com/sanctuary-builder/backend/services"
)

// UserController handles HTTP requests for user profiles.
type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Create stores a new user profile.
// POST /api/users
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Locale != "" {
		if _, err := models.ParseLocale(req.Locale); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported locale, expected en or zh"})
			return
		}
	}

	id, err := uc.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Get returns a profile by ID.
// GET /api/users/:id
func (uc *UserController) Get(c *gin.Context) {
	id := c.Param("id")

	user, err := uc.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
