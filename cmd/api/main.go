package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/rafabene/gravegrounds-backend/docs"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/gravegrounds-backend/internal/handlers/http"
	"github.com/rafabene/gravegrounds-backend/internal/handlers/middleware"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/config"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/i18n"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/logging"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/moderation"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/ratelimit"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/realtime"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/security"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/storage"
	"github.com/rafabene/gravegrounds-backend/internal/services"
)

// @title                       GraveGrounds Faction Tracker API
// @version                     1.0
// @description                 Contadores de facção, galeria de personagens e canal de broadcast da comunidade GraveGrounds.
// @host                        localhost:3000
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gravegrounds backend",
		"env", cfg.Env,
		"version", "dev",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Conectar ao banco de dados e aplicar migrations
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Env, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Armazenamento de imagens e moderação
	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize blob storage", "driver", cfg.Storage.Driver, "error", err)
		log.Fatal(err)
	}
	scanner := moderation.New(cfg.Moderation.URL, cfg.Moderation.Timeout)
	if cfg.Moderation.URL == "" {
		logger.Warn("MODERATION_URL not set, uploads are not moderated")
	}

	limiter := newLimiter(ctx, cfg, logger)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	statsRepo := postgres.NewFactionStatsRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// O hub lê o snapshot direto do repositório; os serviços publicam nele
	hub := realtime.NewHub(ports.SnapshotFunc(statsRepo.List), logger, middleware.SplitOrigins(cfg.CORS.AllowedOrigins))

	// Inicializar services
	images := services.NewImageIntake(blobs, scanner, cfg.Upload.MaxBytes, cfg.Moderation.Threshold, logger)
	factionService := services.NewFactionService(statsRepo, userRepo, uow, hub, logger)
	galleryService := services.NewGalleryService(galleryRepo, userRepo, uow, hub, images, logger)
	tokens := security.NewJWTProvider(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	userService := services.NewUserService(services.UserServiceDeps{
		UserRepo:     userRepo,
		UnitOfWork:   uow,
		Factions:     factionService,
		Gallery:      galleryService,
		Images:       images,
		Hasher:       security.NewBcryptHasher(bcrypt.DefaultCost),
		Tokens:       tokens,
		Logger:       logger,
		IsAdminEmail: cfg.Admin.IsAdminEmail,
	})

	if err := factionService.Seed(ctx); err != nil {
		logger.Error("failed to seed faction stats", "error", err)
		log.Fatal(err)
	}

	if cfg.Reconcile.Interval > 0 {
		go factionService.RunReconciliation(ctx, cfg.Reconcile.Interval)
		logger.Info("faction reconciliation scheduled", "interval", cfg.Reconcile.Interval)
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	uploadDir := ""
	if cfg.Storage.Driver == "local" {
		uploadDir = cfg.Storage.UploadDir
	}

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		UploadDir:      uploadDir,
		Users:          userService,
		Factions:       factionService,
		Gallery:        galleryService,
		Hub:            hub,
		I18n:           i18nService,
		Tokens:         tokens,
		Limiter:        limiter,
		Logger:         logger,
		Ping: func(ctx context.Context) error {
			return postgres.Ping(db)
		},
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Conexões WebSocket são sequestradas e não entram no Shutdown do http.Server
	hub.Close()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// newLimiter usa Redis quando REDIS_URL está definido e cai para memória caso contrário
func newLimiter(ctx context.Context, cfg *config.Config, logger ports.Logger) ratelimit.Limiter {
	if cfg.Redis.URL == "" {
		logger.Info("rate limiting in memory", "max", cfg.RateLimit.Max, "window", cfg.RateLimit.Window)
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	rdb, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting in memory", "error", err)
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	logger.Info("rate limiting with redis", "max", cfg.RateLimit.Max, "window", cfg.RateLimit.Window)
	return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
}
