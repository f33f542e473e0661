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

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, author, title, body, created_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (author, title, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + articleColumns

	out, err := scanArticle(r.db.QueryRow(ctx, q, a.Author, a.Title, a.Body, a.CreatedAt))
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to insert article (repo)", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY id`)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to list articles (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `UPDATE articles SET author = $1, title = $2, body = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, q, a.Author, a.Title, a.Body, a.ID)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to update article (repo)", zap.Int64("id", a.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to delete article (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(&a.ID, &a.Author, &a.Title, &a.Body, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}
