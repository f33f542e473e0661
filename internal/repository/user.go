package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"myblog/internal/logger"
	"myblog/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	logger.WithCtx(ctx).Info("Creating user (repo)", zap.String("username", u.Username), zap.String("role", string(u.Role)))
	const q = `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password, role`

	out, err := scanUser(r.db.QueryRow(ctx, q, u.Username, u.Password, string(u.Role)))
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to create user (repo)", zap.String("username", u.Username), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	logger.WithCtx(ctx).Debug("Getting user by ID (repo)", zap.Int64("user_id", id))
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT id, username, password, role FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to get user by ID (repo)", zap.Int64("user_id", id), zap.Error(err))
	}
	return u, err
}

func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	logger.WithCtx(ctx).Debug("Looking up user by credentials (repo)", zap.String("username", username))
	const q = `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1 AND password = $2
		ORDER BY id
		LIMIT 1`

	u, err := scanUser(r.db.QueryRow(ctx, q, username, password))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &role); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}
