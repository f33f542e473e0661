package repository

import (
	"context"
	"errors"

	"myblog/internal/models"
)

// ErrNotFound is returned by every store when the keyed row is absent.
var ErrNotFound = errors.New("record not found")

// ArticleRepo is the Entity Store port for articles. Every method is a
// single store operation; ids are assigned by the store on Create.
type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	GetAll(ctx context.Context) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

type UserRepo interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// FindByCredentials returns the first user, lowest id first, whose
	// username and password both match exactly.
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
}
