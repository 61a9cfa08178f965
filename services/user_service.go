package services

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"go.uber.org/zap"
)

// UserService manages user profiles. No authentication lives here.
type UserService struct {
	users  repository.UserRepo
	logger *zap.Logger
}

func NewUserService(users repository.UserRepo, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create stores a new profile with the default role and locale.
func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (string, error) {
	loc := models.DefaultLocale
	if req.Locale != "" {
		parsed, err := models.ParseLocale(req.Locale)
		if err != nil {
			return "", err
		}
		loc = parsed
	}

	u := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Locale:    loc,
		IsActive:  true,
		Roles:     []string{"user"},
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", zap.String("id", id), zap.String("email", req.Email))
	return id, nil
}

// Get returns a profile by its generated ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
