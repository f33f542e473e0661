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

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

const commentColumns = `id, article_id, author, body, created_at`

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const q = `
		INSERT INTO comments (article_id, author, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + commentColumns

	out, err := scanComment(r.db.QueryRow(ctx, q, c.ArticleID, c.Author, c.Body, c.CreatedAt))
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to insert comment (repo)", zap.Int64("article_id", c.ArticleID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *commentRepo) GetAll(ctx context.Context) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY id`)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to list comments (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []*models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Update leaves article_id alone: the parent is fixed at creation.
func (r *commentRepo) Update(ctx context.Context, c *models.Comment) error {
	tag, err := r.db.Exec(ctx, `UPDATE comments SET author = $1, body = $2 WHERE id = $3`, c.Author, c.Body, c.ID)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to update comment (repo)", zap.Int64("id", c.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to delete comment (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}
