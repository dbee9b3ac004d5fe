package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"resume-forge/internal/config"
	"resume-forge/internal/database"
	"resume-forge/internal/database/migration"
	dbpostgres "resume-forge/internal/database/postgres"
	"resume-forge/internal/delivery/http/handler"
	"resume-forge/internal/delivery/http/middleware"
	"resume-forge/internal/fetcher"
	"resume-forge/internal/infrastructure/cache"
	"resume-forge/internal/pkg/jwt"
	"resume-forge/internal/repository"
	"resume-forge/internal/usecase"
	"resume-forge/internal/ws"
)

type Container struct {
	Config config.Config
	Logger zerolog.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	AuthMiddleware *middleware.AuthMiddleware
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	ResumeHandler  *handler.ResumeHandler
	WSHandler      *ws.Handler
}

// NewContainer wires every component. The database is optional: without
// one the pipeline endpoints still work, only accounts and history are
// disabled.
func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if cfg.HasDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Msg("database unavailable, history and accounts disabled")
		} else {
			c.DB = db
			runner := migration.Runner{Dir: "migrations"}
			if err := runner.Run(context.Background(), db.SQLDB()); err != nil {
				logger.Warn().Err(err).Msg("migrations failed, history and accounts disabled")
				_ = db.Close()
				c.DB = nil
			}
		}
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)
	c.WSHandler = ws.NewHandler(c.Hub, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	c.AuthMiddleware = middleware.NewAuthMiddleware(jwtSvc)

	var snapshots repository.ResumeRepository
	if c.DB != nil {
		snapshots = repository.NewPostgresResumeRepository(c.DB)

		users := repository.NewPostgresUserRepository(c.DB)
		authUC := usecase.NewAuthUsecase(users, jwtSvc)
		c.AuthHandler = handler.NewAuthHandler(authUC)
	}

	generateUC := usecase.NewGenerateUsecase(snapshots, logger)
	uploadUC := usecase.NewUploadUsecase()
	optimizeUC := usecase.NewOptimizeUsecase(fetcher.NewJobPostingFetcher(), c.Cache, logger)
	applyUC := usecase.NewApplyUsecase(snapshots, c.Cache, logger)
	historyUC := usecase.NewHistoryUsecase(snapshots)

	c.ResumeHandler = handler.NewResumeHandler(
		generateUC, uploadUC, optimizeUC, applyUC, historyUC,
		cfg.Upload.MaxFileBytes,
	)

	var dbPinger handler.Pinger
	if c.DB != nil {
		dbPinger = c.DB
	}
	c.HealthHandler = handler.NewHealthHandler(dbPinger, c.Cache)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
