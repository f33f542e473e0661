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

type articleRepo struct{ db *gorm.DB }

func NewArticleRepo(db *gorm.DB) repository.ArticleRepo { return &articleRepo{db: db} }

func (r *articleRepo) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(Tables.Articles)
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	row := articleRow{Author: a.Author, Title: a.Title, Body: a.Body, CreatedAt: a.CreatedAt}
	if err := r.table(ctx).Create(&row).Error; err != nil {
		logger.WithCtx(ctx).Error("Failed to insert article (repo)", zap.Error(err))
		return nil, err
	}
	return row.toModel(), nil
}

func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	var rows []articleRow
	if err := r.table(ctx).Order("id").Find(&rows).Error; err != nil {
		logger.WithCtx(ctx).Error("Failed to list articles (repo)", zap.Error(err))
		return nil, err
	}
	list := make([]*models.Article, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toModel())
	}
	return list, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var row articleRow
	err := r.table(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	res := r.table(ctx).Where("id = ?", a.ID).Updates(map[string]any{
		"author": a.Author,
		"title":  a.Title,
		"body":   a.Body,
	})
	if res.Error != nil {
		logger.WithCtx(ctx).Error("Failed to update article (repo)", zap.Int64("id", a.ID), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	res := r.table(ctx).Where("id = ?", id).Delete(&articleRow{})
	if res.Error != nil {
		logger.WithCtx(ctx).Error("Failed to delete article (repo)", zap.Int64("id", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.table(ctx).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (row *articleRow) toModel() *models.Article {
	return &models.Article{
		ID:        row.ID,
		Author:    row.Author,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
