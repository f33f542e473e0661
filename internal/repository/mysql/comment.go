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

type commentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) repository.CommentRepo { return &commentRepo{db: db} }

func (r *commentRepo) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(Tables.Comments)
}

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	row := commentRow{ArticleID: c.ArticleID, Author: c.Author, Body: c.Body, CreatedAt: c.CreatedAt}
	if err := r.table(ctx).Create(&row).Error; err != nil {
		logger.WithCtx(ctx).Error("Failed to insert comment (repo)", zap.Int64("article_id", c.ArticleID), zap.Error(err))
		return nil, err
	}
	return row.toModel(), nil
}

func (r *commentRepo) GetAll(ctx context.Context) ([]*models.Comment, error) {
	var rows []commentRow
	if err := r.table(ctx).Order("id").Find(&rows).Error; err != nil {
		logger.WithCtx(ctx).Error("Failed to list comments (repo)", zap.Error(err))
		return nil, err
	}
	list := make([]*models.Comment, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toModel())
	}
	return list, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var row commentRow
	err := r.table(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *commentRepo) Update(ctx context.Context, c *models.Comment) error {
	res := r.table(ctx).Where("id = ?", c.ID).Updates(map[string]any{
		"author": c.Author,
		"body":   c.Body,
	})
	if res.Error != nil {
		logger.WithCtx(ctx).Error("Failed to update comment (repo)", zap.Int64("id", c.ID), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	res := r.table(ctx).Where("id = ?", id).Delete(&commentRow{})
	if res.Error != nil {
		logger.WithCtx(ctx).Error("Failed to delete comment (repo)", zap.Int64("id", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (row *commentRow) toModel() *models.Comment {
	return &models.Comment{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		Author:    row.Author,
		Body:      row.Body,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
