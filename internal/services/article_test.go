package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"myblog/internal/models"
	"myblog/internal/patch"
	"myblog/internal/repository"
	"myblog/internal/repository/memory"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)

func newTestArticleService(repo repository.ArticleRepo) *articleService {
	s := NewArticleService(repo).(*articleService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func strPtr(s string) *string { return &s }

// failingArticleRepo fails every call with err.
type failingArticleRepo struct{ err error }

func (f failingArticleRepo) Create(context.Context, *models.Article) (*models.Article, error) {
	return nil, f.err
}
func (f failingArticleRepo) GetAll(context.Context) ([]*models.Article, error) { return nil, f.err }
func (f failingArticleRepo) GetByID(context.Context, int64) (*models.Article, error) {
	return nil, f.err
}
func (f failingArticleRepo) Update(context.Context, *models.Article) error { return f.err }
func (f failingArticleRepo) Delete(context.Context, int64) error           { return f.err }
func (f failingArticleRepo) Exists(context.Context, int64) (bool, error)   { return false, f.err }

func TestArticleService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestArticleService(memory.New().Articles())

	created, err := svc.Create(ctx, models.CreateArticleRequest{Author: "Alice", Title: "Hi", Body: strPtr("hello")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not assigned: %+v", created)
	}
	if !created.CreatedAt.Equal(fixedNow) || created.CreatedAt.Location() != time.UTC {
		t.Fatalf("createdAt = %v", created.CreatedAt)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Author != "Alice" || got.Title != "Hi" || *got.Body != "hello" || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("get returned %+v, want %+v", got, created)
	}
}

func TestArticleService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := memory.New().Articles()
	svc := newTestArticleService(repo)

	cases := []models.CreateArticleRequest{
		{Title: "Hi"},
		{Author: "Alice"},
		{Author: "   ", Title: "Hi"},
		{},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Create(%+v) err = %v, want ValidationError", req, err)
		}
	}

	_, err := svc.Create(ctx, models.CreateArticleRequest{})
	var vErr *ValidationError
	errors.As(err, &vErr)
	if len(vErr.Problems) != 2 || vErr.Problems[0] != "author is required" || vErr.Problems[1] != "title is required" {
		t.Fatalf("problems = %v", vErr.Problems)
	}

	list, _ := repo.GetAll(ctx)
	if len(list) != 0 {
		t.Fatalf("invalid creates persisted %d rows", len(list))
	}
}

// create two, list, delete the first, get it back
func TestArticleService_Scenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestArticleService(memory.New().Articles())

	a1, err := svc.Create(ctx, models.CreateArticleRequest{Author: "Alice", Title: "Hi"})
	if err != nil || a1.ID != 1 {
		t.Fatalf("first create: %+v %v", a1, err)
	}
	a2, err := svc.Create(ctx, models.CreateArticleRequest{Author: "Bob", Title: "Yo"})
	if err != nil || a2.ID != 2 {
		t.Fatalf("second create: %+v %v", a2, err)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %d %v", len(list), err)
	}

	res, err := svc.Delete(ctx, 1)
	if err != nil || !res.Deleted {
		t.Fatalf("delete: %+v %v", res, err)
	}

	_, err = svc.GetByID(ctx, 1)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != ArticleNotFound {
		t.Fatalf("get after delete: %v", err)
	}

	_, err = svc.Delete(ctx, 1)
	if !errors.As(err, &nf) || nf.Kind != ArticleNotFound {
		t.Fatalf("second delete: %v", err)
	}
}

func TestArticleService_UpdateMergesSparsePayload(t *testing.T) {
	ctx := context.Background()
	svc := newTestArticleService(memory.New().Articles())

	a, _ := svc.Create(ctx, models.CreateArticleRequest{Author: "Alice", Title: "Hi", Body: strPtr("old")})

	updated, err := svc.Update(ctx, a.ID, models.ArticleUpdate{Body: patch.Set("new body")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Author != "Alice" || updated.Title != "Hi" || *updated.Body != "new body" {
		t.Fatalf("merged = %+v", updated)
	}
	if updated.ID != a.ID || !updated.CreatedAt.Equal(a.CreatedAt) {
		t.Fatal("id/createdAt changed by update")
	}

	stored, _ := svc.GetByID(ctx, a.ID)
	if *stored.Body != "new body" {
		t.Fatalf("update not persisted: %+v", stored)
	}

	cleared, err := svc.Update(ctx, a.ID, models.ArticleUpdate{Body: patch.Null[string]()})
	if err != nil || cleared.Body != nil {
		t.Fatalf("clear body: %+v %v", cleared, err)
	}

	same, err := svc.Update(ctx, a.ID, models.ArticleUpdate{})
	if err != nil || same.Body != nil || same.Title != "Hi" {
		t.Fatalf("empty update: %+v %v", same, err)
	}
}

func TestArticleService_UpdateMissing(t *testing.T) {
	svc := newTestArticleService(memory.New().Articles())

	_, err := svc.Update(context.Background(), 42, models.ArticleUpdate{Title: patch.Set("x")})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != ArticleNotFound || nf.ID != 42 {
		t.Fatalf("err = %v", err)
	}
}

func TestArticleService_StoreErrorsPropagateUnchanged(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	svc := newTestArticleService(failingArticleRepo{err: boom})

	if _, err := svc.Create(ctx, models.CreateArticleRequest{Author: "a", Title: "t"}); err != boom {
		t.Fatalf("create err = %v", err)
	}
	if _, err := svc.List(ctx); err != boom {
		t.Fatalf("list err = %v", err)
	}
	if _, err := svc.GetByID(ctx, 1); err != boom {
		t.Fatalf("get err = %v", err)
	}
	if _, err := svc.Update(ctx, 1, models.ArticleUpdate{}); err != boom {
		t.Fatalf("update err = %v", err)
	}
	if _, err := svc.Delete(ctx, 1); err != boom {
		t.Fatalf("delete err = %v", err)
	}
}

func TestArticleService_PreviewBody(t *testing.T) {
	svc := newTestArticleService(memory.New().Articles())

	got := svc.PreviewBody(context.Background(), `<p>hi</p><script>alert(1)</script>`)
	if got != "<p>hi</p>" {
		t.Fatalf("preview = %q", got)
	}
}
