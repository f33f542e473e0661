package services

import (
	"context"

	"myblog/internal/logger"
	"myblog/internal/repository"

	"go.uber.org/zap"
)

// ArticleGuard checks that a referenced article exists. The check happens
// once, at comment creation; nothing keeps it true afterwards.
type ArticleGuard struct {
	articles repository.ArticleRepo
}

func NewArticleGuard(articles repository.ArticleRepo) *ArticleGuard {
	return &ArticleGuard{articles: articles}
}

func (g *ArticleGuard) AssertArticleExists(ctx context.Context, articleID int64) error {
	ok, err := g.articles.Exists(ctx, articleID)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to check article existence (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return err
	}
	if !ok {
		logger.WithCtx(ctx).Warn("Parent article missing (service)", zap.Int64("article_id", articleID))
		return &NotFoundError{Kind: ParentMissing, ID: articleID}
	}
	return nil
}
