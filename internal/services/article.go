package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleService interface {
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	PreviewBody(ctx context.Context, raw string) string
	List(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Update(ctx context.Context, id int64, upd models.ArticleUpdate) (*models.Article, error)
	Delete(ctx context.Context, id int64) (*models.DeleteResult, error)
}

type articleService struct {
	repo   repository.ArticleRepo
	policy *bluemonday.Policy
	now    func() time.Time
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, policy: p, now: utcNow}
}

// utcNow is microsecond precision so timestamps survive every store unchanged.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// PreviewBody sanitizes an HTML body for display. Nothing is stored, and
// stored bodies are never rewritten.
func (s *articleService) PreviewBody(ctx context.Context, raw string) string {
	clean := s.policy.Sanitize(raw)
	logger.WithCtx(ctx).Debug("Article body preview (sanitize)",
		zap.Int("raw_len", len(raw)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	req.Author = strings.TrimSpace(req.Author)
	req.Title = strings.TrimSpace(req.Title)
	log.Info("Creating article (service)", zap.String("author", req.Author), zap.String("title", req.Title))

	if err := validateStruct(req); err != nil {
		log.Warn("Article validation failed (service)", zap.Error(err))
		return nil, err
	}

	a := &models.Article{
		Author:    req.Author,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Failed to create article (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Article created (service)", zap.Int64("id", created.ID))
	return created, nil
}

// List returns articles in store order, which is by id for every bundled store.
func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("Failed to list articles (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Articles listed (service)", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, articleErr(ctx, id, err)
	}
	return a, nil
}

// Update is read-merge-write with no lock: concurrent patches of the same
// article are last-write-wins.
func (s *articleService) Update(ctx context.Context, id int64, upd models.ArticleUpdate) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Updating article (service)", zap.Int64("id", id), zap.Strings("fields", upd.Fields()))

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*existing)
	if upd.IsEmpty() {
		return &merged, nil
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, articleErr(ctx, id, err)
	}

	log.Info("Article updated (service)", zap.Int64("id", id))
	return &merged, nil
}

// Delete does not touch comments that reference the article.
func (s *articleService) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	log := logger.WithCtx(ctx)
	log.Info("Deleting article (service)", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, articleErr(ctx, id, err)
	}

	log.Info("Article deleted (service)", zap.Int64("id", id))
	return &models.DeleteResult{Deleted: true}, nil
}

// articleErr turns store absence into ArticleNotFound; other errors pass through.
func articleErr(ctx context.Context, id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		logger.WithCtx(ctx).Warn("Article not found (service)", zap.Int64("id", id))
		return &NotFoundError{Kind: ArticleNotFound, ID: id}
	}
	logger.WithCtx(ctx).Error("Article store error (service)", zap.Int64("id", id), zap.Error(err))
	return err
}
