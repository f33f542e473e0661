package app

import (
	"context"
	"fmt"

	"myblog/internal/config"
	"myblog/internal/db"
	"myblog/internal/handlers"
	"myblog/internal/logger"
	"myblog/internal/metrics"
	"myblog/internal/repository"
	"myblog/internal/repository/cache"
	"myblog/internal/repository/memory"
	mysqlstore "myblog/internal/repository/mysql"
	"myblog/internal/routes"
	"myblog/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Stores is one Entity Store backend, chosen by DB_DRIVER.
type Stores struct {
	Articles repository.ArticleRepo
	Comments repository.CommentRepo
	Users    repository.UserRepo

	closers []func()
}

func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// NewMemoryStores backs every repo with a fresh in-process store.
func NewMemoryStores() *Stores {
	store := memory.New()
	return &Stores{
		Articles: store.Articles(),
		Comments: store.Comments(),
		Users:    store.Users(),
	}
}

// OpenStores connects the configured backend. When migrate is set the schema
// is created first.
func OpenStores(ctx context.Context, cfg *config.Config, migrate bool) (*Stores, error) {
	switch cfg.DbDriver {
	case config.DriverPostgres:
		pool, err := db.NewPostgresConnection(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres %s: %w", cfg.GetDSNSafe(), err)
		}
		if migrate {
			if err := db.MigratePostgres(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Stores{
			Articles: repository.NewArticleRepo(pool),
			Comments: repository.NewCommentRepo(pool),
			Users:    repository.NewUserRepository(pool),
			closers:  []func(){pool.Close},
		}, nil

	case config.DriverMySQL:
		gdb, err := db.NewMySQLConnection(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mysql %s: %w", cfg.GetDSNSafe(), err)
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if migrate {
			if err := db.MigrateMySQL(gdb); err != nil {
				closeFn()
				return nil, err
			}
		}
		return &Stores{
			Articles: mysqlstore.NewArticleRepo(gdb),
			Comments: mysqlstore.NewCommentRepo(gdb),
			Users:    mysqlstore.NewUserRepo(gdb),
			closers:  []func(){closeFn},
		}, nil

	case config.DriverMemory:
		return NewMemoryStores(), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DbDriver)
}

// withArticleCache puts the redis read-through cache in front of articles.
// An unreachable redis is logged and the app runs uncached.
func withArticleCache(ctx context.Context, cfg *config.Config, stores *Stores) {
	rdb, err := db.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, article cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return
	}
	if rdb == nil {
		return
	}
	stores.Articles = cache.NewArticleRepo(stores.Articles, rdb, cfg.CacheTTL)
	stores.closers = append(stores.closers, func() { _ = rdb.Close() })
	logger.Log.Info("Article cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
}

// NewRouter wires services and handlers over stores.
func NewRouter(stores *Stores, collector *metrics.Collector) *mux.Router {
	// services
	articleSvc := services.NewArticleService(stores.Articles)
	guard := services.NewArticleGuard(stores.Articles)
	commentSvc := services.NewCommentService(stores.Comments, guard)
	userSvc := services.NewUserService(stores.Users)

	// handlers
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	authH := handlers.NewAuthHandler(userSvc)

	// routes
	router := mux.NewRouter()
	routes.InitRoutes(router, articleH, commentH, authH, collector)
	return router
}

// InitApp opens the stores, applies the schema and builds the router.
// The returned cleanup releases every connection.
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, func(), error) {
	stores, err := OpenStores(ctx, cfg, true)
	if err != nil {
		return nil, nil, err
	}
	withArticleCache(ctx, cfg, stores)

	router := NewRouter(stores, metrics.NewCollector("myblog"))
	return router, stores.Close, nil
}
