package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"meca-api/core/cache"
	"meca-api/core/config"
	"meca-api/core/constants"
	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/core/middleware"
	"meca-api/core/queue"
	"meca-api/core/storage"
	"meca-api/core/utils"
	"meca-api/modules/event"
	"meca-api/modules/hostingrequest"
	"meca-api/modules/notification"
	"meca-api/modules/profile"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run loads config, connects every backing service, mounts the modules and
// blocks until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Server.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, databaseConfig(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	var statsCache cache.Cache
	redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Server:Run:RedisUnavailable", "addr", cfg.Redis.Addr, "error", err)
		_ = redisCache.Close()
	} else {
		statsCache = redisCache
		defer redisCache.Close()
	}

	var q *queue.Queue
	if cfg.Queue.Enabled {
		q = queue.New(queue.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Queue.Concurrency)
	}

	var archiver storage.Archiver = storage.NopArchiver{}
	if cfg.Storage.Bucket != "" {
		archiver = storage.NewS3Archiver(storage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
		})
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: utils.GenerateID,
	}))
	e.Use(echoMiddleware.CORS())
	e.Use(requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/ready", readiness(&db, statsCache))

	mw := middleware.NewMiddleware(cfg.JWT.Secret)
	v1 := e.Group("/api/v1")
	public := v1.Group("/public")
	private := v1.Group("/private")

	profiles := profile.Init(db)
	events := event.Init(private, db, mw)
	notifications := notification.Init(private, db, mw, q)
	hostingrequest.Init(public, private, db, mw, hostingrequest.Options{
		Profiles: profiles,
		Events:   events,
		Notifier: notifications,
		Cache:    statsCache,
		Archiver: archiver,
		StatsTTL: cfg.Cache.StatsTTL,
	})

	if q != nil {
		if err := q.Start(); err != nil {
			return fmt.Errorf("start queue worker: %w", err)
		}
		defer q.Shutdown()
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Run:Listening", "addr", addr, "env", cfg.Server.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Server:Run:ShutdownSignal")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("Server:Run:Stopped")
	return nil
}

func requestLogger() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warn("HTTP", "method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "request_id", v.RequestID, "error", v.Error)
				return nil
			}
			logger.Info("HTTP", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency, "request_id", v.RequestID)
			return nil
		},
	})
}

// readiness reports 503 while postgres is unreachable. Redis only backs the
// stats cache, so its state is reported without failing the probe.
func readiness(db *database.Database, statsCache cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), constants.HealthCheckTimeout)
		defer cancel()

		status := map[string]string{"database": "ok", "cache": "disabled"}
		code := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			logger.Warn("Server:Readiness:Database", "error", err)
			status["database"] = "unavailable"
			code = http.StatusServiceUnavailable
		}
		if statsCache != nil {
			status["cache"] = "ok"
			if err := statsCache.Ping(ctx); err != nil {
				status["cache"] = "unavailable"
			}
		}
		return c.JSON(code, status)
	}
}
