package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/repository"

	"go.uber.org/zap"
)

type CommentService interface {
	Create(ctx context.Context, articleID int64, req models.CreateCommentRequest) (*models.Comment, error)
	List(ctx context.Context) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Update(ctx context.Context, id int64, upd models.CommentUpdate) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (*models.DeleteResult, error)
}

type commentService struct {
	repo  repository.CommentRepo
	guard *ArticleGuard
	now   func() time.Time
}

func NewCommentService(repo repository.CommentRepo, guard *ArticleGuard) CommentService {
	return &commentService{repo: repo, guard: guard, now: utcNow}
}

// Create attaches the comment to articleID, which the caller takes from the
// request path or query, never from the body.
func (s *commentService) Create(ctx context.Context, articleID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	req.Author = strings.TrimSpace(req.Author)
	log.Info("Creating comment (service)", zap.Int64("article_id", articleID), zap.String("author", req.Author))

	if err := validateStruct(req); err != nil {
		log.Warn("Comment validation failed (service)", zap.Error(err))
		return nil, err
	}

	if err := s.guard.AssertArticleExists(ctx, articleID); err != nil {
		return nil, err
	}

	c := &models.Comment{
		ArticleID: articleID,
		Author:    req.Author,
		Body:      req.Body,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		log.Error("Failed to create comment (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Comment created (service)", zap.Int64("id", created.ID), zap.Int64("article_id", articleID))
	return created, nil
}

func (s *commentService) List(ctx context.Context) ([]*models.Comment, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Failed to list comments (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, commentErr(ctx, id, err)
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, id int64, upd models.CommentUpdate) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Updating comment (service)", zap.Int64("id", id), zap.Strings("fields", upd.Fields()))

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*existing)
	if upd.IsEmpty() {
		return &merged, nil
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, commentErr(ctx, id, err)
	}
	return &merged, nil
}

func (s *commentService) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	logger.WithCtx(ctx).Info("Deleting comment (service)", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, commentErr(ctx, id, err)
	}
	return &models.DeleteResult{Deleted: true}, nil
}

func commentErr(ctx context.Context, id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		logger.WithCtx(ctx).Warn("Comment not found (service)", zap.Int64("id", id))
		return &NotFoundError{Kind: CommentNotFound, ID: id}
	}
	logger.WithCtx(ctx).Error("Comment store error (service)", zap.Int64("id", id), zap.Error(err))
	return err
}
