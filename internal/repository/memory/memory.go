// Package memory is an in-process Entity Store. Each Store value owns its
// own tables; nothing is shared between instances.
package memory

import (
	"context"
	"sort"
	"sync"

	"myblog/internal/models"
	"myblog/internal/repository"
)

type table[T any] struct {
	seq  int64
	rows map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// next hands out ids from a monotonic counter, so deleted ids are never reused.
func (t *table[T]) next() int64 {
	t.seq++
	return t.seq
}

func (t *table[T]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type Store struct {
	mu       sync.RWMutex
	articles *table[models.Article]
	comments *table[models.Comment]
	users    *table[models.User]
}

func New() *Store {
	return &Store{
		articles: newTable[models.Article](),
		comments: newTable[models.Comment](),
		users:    newTable[models.User](),
	}
}

func (s *Store) Articles() repository.ArticleRepo { return articleRepo{s} }
func (s *Store) Comments() repository.CommentRepo { return commentRepo{s} }
func (s *Store) Users() repository.UserRepo       { return userRepo{s} }

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneArticle(a models.Article) *models.Article {
	a.Body = cloneStr(a.Body)
	return &a
}

func cloneComment(c models.Comment) *models.Comment {
	c.Body = cloneStr(c.Body)
	return &c
}

type articleRepo struct{ s *Store }

func (r articleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *cloneArticle(*a)
	row.ID = r.s.articles.next()
	r.s.articles.rows[row.ID] = row
	return cloneArticle(row), nil
}

func (r articleRepo) GetAll(_ context.Context) ([]*models.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []*models.Article{}
	for _, id := range r.s.articles.sortedIDs() {
		list = append(list, cloneArticle(r.s.articles.rows[id]))
	}
	return list, nil
}

func (r articleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.articles.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneArticle(a), nil
}

func (r articleRepo) Update(_ context.Context, a *models.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.articles.rows[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Author = a.Author
	cur.Title = a.Title
	cur.Body = cloneStr(a.Body)
	r.s.articles.rows[a.ID] = cur
	return nil
}

func (r articleRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.articles.rows, id)
	return nil
}

func (r articleRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.articles.rows[id]
	return ok, nil
}

type commentRepo struct{ s *Store }

func (r commentRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *cloneComment(*c)
	row.ID = r.s.comments.next()
	r.s.comments.rows[row.ID] = row
	return cloneComment(row), nil
}

func (r commentRepo) GetAll(_ context.Context) ([]*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []*models.Comment{}
	for _, id := range r.s.comments.sortedIDs() {
		list = append(list, cloneComment(r.s.comments.rows[id]))
	}
	return list, nil
}

func (r commentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneComment(c), nil
}

func (r commentRepo) Update(_ context.Context, c *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.comments.rows[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Author = c.Author
	cur.Body = cloneStr(c.Body)
	r.s.comments.rows[c.ID] = cur
	return nil
}

func (r commentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.comments.rows, id)
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *u
	row.ID = r.s.users.next()
	r.s.users.rows[row.ID] = row
	out := row
	return &out, nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) FindByCredentials(_ context.Context, username, password string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.users.sortedIDs() {
		u := r.s.users.rows[id]
		if u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}
