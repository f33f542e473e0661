package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myblog/internal/models"
	"myblog/internal/repository"
)

func TestArticles_IDsAreSequentialAndNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := New().Articles()

	a1, err := repo.Create(ctx, &models.Article{Author: "Alice", Title: "Hi"})
	require.NoError(t, err)
	a2, err := repo.Create(ctx, &models.Article{Author: "Bob", Title: "Yo"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a1.ID)
	assert.Equal(t, int64(2), a2.ID)

	require.NoError(t, repo.Delete(ctx, a2.ID))
	a3, err := repo.Create(ctx, &models.Article{Author: "Carol", Title: "Hey"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a3.ID)

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestArticles_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := New().Articles()

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Article{ID: 1}), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), repository.ErrNotFound)

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArticles_ReturnedValuesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := New().Articles()

	body := "original"
	created, err := repo.Create(ctx, &models.Article{Author: "A", Title: "T", Body: &body})
	require.NoError(t, err)

	body = "mutated by caller"
	*created.Body = "mutated result"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", *got.Body)
}

func TestStores_AreIndependent(t *testing.T) {
	ctx := context.Background()
	s1, s2 := New(), New()

	_, err := s1.Articles().Create(ctx, &models.Article{Author: "A", Title: "T"})
	require.NoError(t, err)

	list, err := s2.Articles().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestComments_UpdateKeepsParent(t *testing.T) {
	ctx := context.Background()
	repo := New().Comments()

	c, err := repo.Create(ctx, &models.Comment{ArticleID: 5, Author: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &models.Comment{ID: c.ID, ArticleID: 9, Author: "y"}))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ArticleID)
	assert.Equal(t, "y", got.Author)
}

func TestUsers_FindByCredentialsFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	first, err := repo.Create(ctx, &models.User{Username: "alice", Password: "secret", Role: models.RoleUser})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{Username: "alice", Password: "secret", Role: models.RoleAdmin})
	require.NoError(t, err)

	got, err := repo.FindByCredentials(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repo.FindByCredentials(ctx, "alice", "Secret")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticles_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := New().Articles()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, &models.Article{Author: "a", Title: "t"})
		}()
	}
	wg.Wait()

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
	assert.Equal(t, int64(50), list[49].ID)
}
