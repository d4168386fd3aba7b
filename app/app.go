// Package app wires configuration into the stores, repositories and HTTP
// router used by the server and promisectl.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"promisewatch-be/cache"
	"promisewatch-be/config"
	"promisewatch-be/controllers"
	"promisewatch-be/docstore"
	"promisewatch-be/economics"
	"promisewatch-be/middlewares"
	"promisewatch-be/repositories"
	"promisewatch-be/routes"
)

const cachePrefix = "promisewatch:cache"

// App holds every long-lived component.
type App struct {
	Config *config.Config
	Log    zerolog.Logger

	Promises *repositories.PromiseRepository
	Reports  *repositories.ReportRepository
	Stats    *repositories.StatsRepository
	Users    *repositories.UserRepository
	History  *repositories.IndicatorHistoryRepository

	Aggregator *economics.Aggregator
	Verifier   *economics.Verifier

	// RateCounter is nil when report rate limiting is disabled.
	RateCounter middlewares.RateCounter

	closers []func() error
}

// Build connects the configured drivers and assembles the components. On
// error everything opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *App, err error) {
	a := &App{Config: cfg, Log: log}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	store, err := a.docStore(ctx)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)
	}

	indicatorCache, err := a.cacheStore(redisClient)
	if err != nil {
		return nil, err
	}

	if cfg.ReportRateLimit > 0 {
		a.RateCounter = middlewares.NewRedisCounter(redisClient, cfg.ReportLimitQueue)
	}

	fetcher := economics.NewFetcher(indicatorCache, economics.NewHTTPClient(cfg.HTTPTimeout), log)
	catalog := economics.DefaultCatalog(economics.Sources{
		WorldBankBaseURL: cfg.WorldBankBaseURL,
		ExchangeURL:      cfg.ExchangeURL,
	})
	a.Aggregator = economics.NewAggregator(fetcher, catalog)
	a.Verifier = economics.NewVerifier(a.Aggregator)

	a.Promises = repositories.NewPromiseRepository(store, cfg.SeedBatchSize, log)
	a.Reports = repositories.NewReportRepository(store, log)
	a.Stats = repositories.NewStatsRepository(store, log)
	a.Users = repositories.NewUserRepository(store, log)
	a.History = repositories.NewIndicatorHistoryRepository(store, log)

	return a, nil
}

func (a *App) docStore(ctx context.Context) (docstore.Store, error) {
	if a.Config.DocStoreDriver == config.DocStoreMemory {
		a.Log.Warn().Msg("using in-memory document store; data is lost on exit")
		return docstore.NewMemoryStore(), nil
	}

	client, db, err := config.ConnectDB(ctx, a.Config.MongoURI, a.Config.MongoDatabase, a.Log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() error {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Disconnect(dctx)
	})
	store := docstore.NewMongoStore(db)
	if err := store.EnsureIndexes(ctx, repositories.Indexes...); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *App) cacheStore(redisClient *redis.Client) (cache.Store, error) {
	switch a.Config.CacheDriver {
	case config.CacheRedis:
		return cache.NewRedisStore(redisClient, cachePrefix), nil
	case config.CacheSQLite:
		s, err := cache.NewSQLiteStore(a.Config.SQLiteCachePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s.Close)
		return s, nil
	default:
		return cache.NewMemoryStore(), nil
	}
}

// Router builds the HTTP API.
func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(a.Log))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.AdminKeyHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middlewares.AuthMiddleware(a.Config.JWTSecret, a.Log)
	var reportGuards []gin.HandlerFunc
	if a.RateCounter != nil {
		reportGuards = append(reportGuards, middlewares.ReportRateLimiter(a.RateCounter, a.Config.ReportRateLimit, a.Log))
	}

	routes.AuthRoutes(r, controllers.NewAuthController(a.Users, a.Config.JWTSecret, gin.Mode() == gin.ReleaseMode, a.Log), auth)
	routes.IndicatorRoutes(r, controllers.NewIndicatorController(a.Aggregator, a.History))
	routes.PromiseRoutes(r,
		controllers.NewPromiseController(a.Promises, a.Reports, a.Verifier),
		controllers.NewStatsController(a.Stats))
	routes.ReportRoutes(r, controllers.NewReportController(a.Reports), auth, reportGuards...)
	routes.AdminRoutes(r,
		controllers.NewAdminController(a.Promises, a.Aggregator, a.History),
		middlewares.AdminMiddleware(a.Config.AdminKeyHash))

	return r
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
