// Package cache puts a redis read-through cache in front of an ArticleRepo.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/repository"
)

const (
	articleKeyPrefix = "myblog:article:"

	// genTTL bounds how long a generation counter outlives its last write.
	genTTL = 24 * time.Hour
)

var errStaleFill = errors.New("article changed during cache fill")

// ArticleRepo serves GetByID from redis when it can. Every write bumps a
// per-article generation counter, and a cached entry is only served while
// its generation is current, so a fill racing an update or delete is
// never read back. Exists always asks the wrapped store. Any redis failure
// falls back to the store.
type ArticleRepo struct {
	next repository.ArticleRepo
	rdb  *redis.Client
	ttl  time.Duration
}

// entry is the cached value: the article plus the generation it was read at.
type entry struct {
	Gen     int64           `json:"gen"`
	Article *models.Article `json:"article"`
}

func NewArticleRepo(next repository.ArticleRepo, rdb *redis.Client, ttl time.Duration) *ArticleRepo {
	return &ArticleRepo{next: next, rdb: rdb, ttl: ttl}
}

func articleKey(id int64) string {
	return articleKeyPrefix + strconv.FormatInt(id, 10)
}

func genKey(id int64) string {
	return articleKey(id) + ":gen"
}

func (r *ArticleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	return r.next.Create(ctx, a)
}

func (r *ArticleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	return r.next.GetAll(ctx)
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, hit, err := r.lookup(ctx, id)
	if err != nil {
		log.Warn("Article cache read failed (cache)", zap.Int64("id", id), zap.Error(err))
	}
	if hit {
		return a, nil
	}

	// the generation is read before the store so any later write invalidates the fill
	gen, genErr := parseGen(r.rdb.Get(ctx, genKey(id)))

	out, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		log.Warn("Article cache generation read failed (cache)", zap.Int64("id", id), zap.Error(genErr))
		return out, nil
	}
	r.fill(ctx, id, gen, out)
	return out, nil
}

// Writes invalidate before and after the store call. The second pass
// discards any fill that raced the write.
func (r *ArticleRepo) Update(ctx context.Context, a *models.Article) error {
	r.invalidate(ctx, a.ID)
	if err := r.next.Update(ctx, a); err != nil {
		return err
	}
	r.invalidate(ctx, a.ID)
	return nil
}

func (r *ArticleRepo) Delete(ctx context.Context, id int64) error {
	r.invalidate(ctx, id)
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// Exists backs the parent check on comment create, so it never trusts the cache.
func (r *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.next.Exists(ctx, id)
}

// lookup reads the entry and the current generation in one round trip and
// reports a hit only when they agree.
func (r *ArticleRepo) lookup(ctx context.Context, id int64) (*models.Article, bool, error) {
	vals, err := r.rdb.MGet(ctx, articleKey(id), genKey(id)).Result()
	if err != nil {
		return nil, false, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, false, nil
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false, err
	}

	var gen int64
	if s, ok := vals[1].(string); ok {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, false, err
		}
	}
	if e.Article == nil || e.Gen != gen {
		return nil, false, nil
	}
	return e.Article, true, nil
}

// fill stores a under generation gen unless a write has bumped it since.
func (r *ArticleRepo) fill(ctx context.Context, id, gen int64, a *models.Article) {
	data, err := json.Marshal(entry{Gen: gen, Article: a})
	if err != nil {
		logger.WithCtx(ctx).Warn("Article cache encode failed (cache)", zap.Int64("id", id), zap.Error(err))
		return
	}

	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := parseGen(tx.Get(ctx, genKey(id)))
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, articleKey(id), data, r.ttl)
			return nil
		})
		return err
	}, genKey(id))

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		logger.WithCtx(ctx).Debug("Article cache fill skipped, concurrent write (cache)", zap.Int64("id", id))
	default:
		logger.WithCtx(ctx).Warn("Article cache write failed (cache)", zap.Int64("id", id), zap.Error(err))
	}
}

// invalidate bumps the generation before dropping the entry. Either step
// alone is enough to stop the old value being served.
func (r *ArticleRepo) invalidate(ctx context.Context, id int64) {
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey(id))
		p.Expire(ctx, genKey(id), genTTL)
		p.Del(ctx, articleKey(id))
		return nil
	})
	if err != nil {
		logger.WithCtx(ctx).Warn("Article cache invalidate failed (cache)", zap.Int64("id", id), zap.Error(err))
	}
}

// parseGen reads a generation counter; a missing key is generation 0.
func parseGen(cmd *redis.StringCmd) (int64, error) {
	gen, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
