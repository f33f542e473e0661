package mysql

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/repository"
)

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) repository.UserRepo { return &userRepo{db: db} }

func (r *userRepo) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(Tables.Users)
}

func (r *userRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	row := userRow{Username: u.Username, Password: u.Password, Role: string(u.Role)}
	if err := r.table(ctx).Create(&row).Error; err != nil {
		logger.WithCtx(ctx).Error("Failed to create user (repo)", zap.String("username", u.Username), zap.Error(err))
		return nil, err
	}
	return row.toModel(), nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var row userRow
	err := r.table(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// BINARY keeps the match exact under case-insensitive collations.
func (r *userRepo) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var row userRow
	err := r.table(ctx).
		Where("BINARY username = ? AND BINARY password = ?", username, password).
		Order("id").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (row *userRow) toModel() *models.User {
	return &models.User{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
		Role:     models.Role(row.Role),
	}
}
