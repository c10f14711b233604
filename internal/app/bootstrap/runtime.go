package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "github.com/dushan456/portfolio-backend/internal/adapters/cache"
	httpadapter "github.com/dushan456/portfolio-backend/internal/adapters/http"
	"github.com/dushan456/portfolio-backend/internal/adapters/postgres"
	"github.com/dushan456/portfolio-backend/internal/adapters/security"
	"github.com/dushan456/portfolio-backend/internal/adapters/storage"
	"github.com/dushan456/portfolio-backend/internal/application"
	"github.com/dushan456/portfolio-backend/internal/domain"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping portfolio backend", "http_port", cfg.HTTPPort)

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := pool.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	tokenSigner, err := security.NewJWTSigner(cfg.JWTSecret)
	if err != nil {
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("init jwt signer: %w", err)
	}

	repos := postgres.NewRepositories(pool)
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			TokenTTL:             cfg.TokenTTL,
			FailedLoginThreshold: cfg.FailedThreshold,
			LockoutDuration:      cfg.LockoutDuration,
			CacheTTL:             cfg.CacheTTL,
			MaxUploadBytes:       cfg.MaxUploadBytes,
			ContactRecentWindow:  cfg.ContactRecentWindow,
		},
		Admins:        repos.Admins,
		Projects:      repos.Projects,
		Skills:        repos.Skills,
		Education:     repos.Education,
		Personal:      repos.PersonalDetails,
		Contacts:      repos.Contact,
		LoginAttempts: repos.LoginAttempts,
		Cache:         cacheadapter.NewRedisCache(redisClient),
		Files:         fileStore,
		Hasher:        security.NewBcryptHasher(cfg.BcryptCost),
		TokenSigner:   tokenSigner,
	})

	if err := seedAdmin(ctx, logger, svc, cfg); err != nil {
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, err
	}

	handler := httpadapter.NewHandler(svc, int64(cfg.MaxUploadBytes))
	router := httpadapter.NewRouter(handler, httpadapter.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      fileStore.Dir(),
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func(ctx context.Context) {
			_ = redisClient.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

// seedAdmin provisions the initial account when credentials are configured
// and no account with that email exists yet. Reruns are no-ops.
func seedAdmin(ctx context.Context, logger *slog.Logger, svc *application.Service, cfg Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}
	_, err := svc.ProvisionAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword, cfg.SeedAdminName, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("seed admin provisioned", "email", cfg.SeedAdminEmail)
	return nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
