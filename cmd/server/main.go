package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"course_backend/internal/app/di"
	"course_backend/internal/app/router"
	platformdb "course_backend/internal/platform/db"
	platformhandler "course_backend/internal/platform/http/handler"
	jwtmw "course_backend/internal/platform/jwt"
	"course_backend/internal/platform/logger"
	platformredis "course_backend/internal/platform/redis"
	"course_backend/internal/platform/storage"
	"course_backend/internal/platform/validation"
	"course_backend/internal/shared/ratelimiter"
)

const (
	shutdownTimeout = 10 * time.Second
	authRateLimit   = 10
	authRateWindow  = time.Minute
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	zl, err := logger.New(logger.ConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	flush := logger.Install(zl)
	defer flush()

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		flush()
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	authCfg, err := jwtmw.LoadConfigFromEnv()
	if err != nil {
		return err
	}

	// db
	db, err := platformdb.Open(platformdb.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() {
		if err := platformdb.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	if os.Getenv("RUN_MIGRATIONS") != "false" {
		if err := platformdb.Migrate(ctx, db); err != nil {
			return err
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if redisCfg := platformredis.LoadConfigFromEnv(); redisCfg.Enabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Storage
	storageCfg, err := storage.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	uploader, err := storage.New(ctx, storageCfg)
	if err != nil {
		return err
	}
	defer uploader.Close()

	validation.Init()

	r := router.NewRouter(router.Handlers{
		Health: platformhandler.NewHealthHandler(sqlDB),
		User:   di.NewUserHandler(db, uploader, authCfg),
		Course: di.NewCourseHandler(db, rdb),
	}, router.Options{
		JWTSecret:      authCfg.Secret,
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AuthLimiter:    ratelimiter.NewRateLimiter(authRateLimit, authRateWindow),
	})

	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
