// Package app wires configuration, storage and services into one container
// shared by the HTTP server and its tests.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fontquiz/internal/cache"
	"fontquiz/internal/catalog"
	"fontquiz/internal/config"
	"fontquiz/internal/repository"
	"fontquiz/internal/scoring"
	"fontquiz/internal/service"
	"fontquiz/internal/transport/rest"
	"fontquiz/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// leadTimeout bounds one background lead delivery including CRM retries
const leadTimeout = 30 * time.Second

const pingTimeout = 5 * time.Second

type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Catalog *catalog.Catalog
	Engine  *scoring.Engine

	Sessions    cache.SessionStore
	StyleTally  cache.StyleTally
	AnswerStats cache.AnswerStats
	LeadRepo    repository.LeadRepo   // nil without Mongo
	ReportRepo  repository.ReportRepo // nil without Mongo

	Auth    *service.AuthService
	Leads   *service.LeadService
	Stats   *service.StatsService
	Quiz    *service.QuizService
	Reports *service.ReportService
	Hub     *ws.Hub

	Handler http.Handler

	redis *redis.Client
	mongo *mongo.Client
}

// New connects the configured backends and builds every service.
// Empty REDIS_URI and MONGO_URI fall back to in-memory stores and no archive.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{Config: cfg, Logger: logger}

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.Catalog = cat
	a.Engine = scoring.NewEngine(cat, logger)

	if err := a.connectRedis(ctx); err != nil {
		return nil, err
	}
	if err := a.connectMongo(ctx); err != nil {
		a.Close(ctx)
		return nil, err
	}

	var sinks []service.LeadSink
	if cfg.CRM != nil && cfg.CRM.IsEnabled() {
		sinks = append(sinks, service.NewCRMClient(cfg.CRM, logger))
		logger.Info("crm sink enabled", zap.String("endpoint", cfg.CRM.Endpoint))
	}
	if a.LeadRepo != nil {
		sinks = append(sinks, service.NewArchiveSink(a.LeadRepo))
	}

	a.Auth = service.NewAuthService(cfg)
	a.Leads = service.NewLeadService(logger, leadTimeout, sinks...)
	if a.LeadRepo != nil {
		a.Leads.SetArchive(a.LeadRepo)
	}
	a.Stats = service.NewStatsService(a.StyleTally, a.AnswerStats, cat.Labels(), cat.Questions(), logger)
	a.Quiz = service.NewQuizService(a.Sessions, a.Engine, a.Auth, a.Leads, a.Stats, logger)

	a.Reports = service.NewReportService(a.Quiz, cat, a.ReportRepo, logger)

	a.Hub = ws.NewHub(logger)
	a.Quiz.SetBroadcaster(a.Hub)

	a.Handler = rest.NewRouter(&rest.Container{
		Catalog:       cat,
		Engine:        a.Engine,
		AuthService:   a.Auth,
		QuizService:   a.Quiz,
		LeadService:   a.Leads,
		StatsService:  a.Stats,
		ReportService: a.Reports,
		WSHub:         a.Hub,
		CORS:          cfg.CORS,
		Logger:        logger,
	})
	return a, nil
}

func (a *App) connectRedis(ctx context.Context) error {
	if a.Config.RedisURI == "" {
		a.Logger.Warn("REDIS_URI not set, using in-memory session store")
		a.Sessions = cache.NewMemorySessionStore(a.Config.SessionTTL)
		a.StyleTally = cache.NewMemoryStyleTally()
		a.AnswerStats = cache.NewMemoryAnswerStats()
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr()})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	a.Logger.Info("connected to redis", zap.String("addr", a.Config.RedisAddr()))

	a.redis = rdb
	a.Sessions = cache.NewRedisSessionStore(rdb, a.Config.SessionTTL)
	a.StyleTally = cache.NewRedisStyleTally(rdb)
	a.AnswerStats = cache.NewRedisAnswerStats(rdb)
	return nil
}

func (a *App) connectMongo(ctx context.Context) error {
	if a.Config.MongoURI == "" {
		a.Logger.Warn("MONGO_URI not set, lead and report archive disabled")
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.Config.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	a.Logger.Info("connected to mongodb", zap.String("db", a.Config.MongoDB))

	db := client.Database(a.Config.MongoDB)
	a.mongo = client
	a.LeadRepo = repository.NewLeadRepo(db)
	a.ReportRepo = repository.NewReportRepo(db)
	return nil
}

// Close stops the hub, drains pending lead deliveries and disconnects the
// backends. It is safe to call on a partially built App.
func (a *App) Close(ctx context.Context) error {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.Leads != nil {
		drained := make(chan struct{})
		go func() {
			a.Leads.Wait()
			close(drained)
		}()
		select {
		case <-drained:
		case <-ctx.Done():
			a.Logger.Warn("gave up waiting for lead deliveries", zap.Error(ctx.Err()))
		}
	}

	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect mongodb: %w", err))
		}
	}
	return errors.Join(errs...)
}
