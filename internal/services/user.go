package services

import (
	"context"
	"errors"
	"strings"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/repository"

	"go.uber.org/zap"
)

type UserService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	logger.WithCtx(ctx).Info("Getting user by ID (service)", zap.Int64("user_id", id))
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		logger.WithCtx(ctx).Warn("User not found (service)", zap.Int64("user_id", id))
		return nil, &NotFoundError{Kind: UserNotFound, ID: id}
	}
	return u, err
}

// Login matches username and password exactly; the password is stored and
// compared verbatim. With duplicate pairs the store's first match wins.
// The returned user includes the password.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Login attempt (service)", zap.String("username", username))

	u, err := s.repo.FindByCredentials(ctx, username, password)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Login rejected (service)", zap.String("username", username))
		return nil, &UnauthorizedError{}
	}
	if err != nil {
		log.Error("Login lookup failed (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Login succeeded (service)", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

// Create registers a user; role defaults to user.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, &models.User{Username: req.Username, Password: req.Password, Role: req.Role})
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to create user (service)", zap.Error(err))
		return nil, err
	}
	logger.WithCtx(ctx).Info("User created (service)", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}
