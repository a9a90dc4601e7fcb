package main

import (
	"context"
	"fmt"
	"log"

	"learnplatform/config"
	"learnplatform/internal/application/usecase"
	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/email"
	"learnplatform/internal/infrastructure/kvstore"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/security"
	"learnplatform/internal/middleware"
	"learnplatform/internal/pkg/logger"
	handlers "learnplatform/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError нужен, чтобы нарушение уникального индекса приходило
	// как gorm.ErrDuplicatedKey, а не как сырой код драйвера.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		appLog.Fatal("Failed to connect to DB", "err", err)
	}

	appLog.Info("Running migrations...")
	if err := db.AutoMigrate(&domain.Profile{}, &domain.ProgressRecord{}, &domain.TrackingLink{}); err != nil {
		appLog.Fatal("Failed to migrate DB", "err", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		appLog.Fatal("Failed to connect to Redis", "err", err)
	}

	cat := catalog.New()
	store := kvstore.NewRedisStore(rdb)

	profileRepo := repository.NewProfileRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	linkRepo := repository.NewLinkRepo(db)

	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	sender := email.NewSender(cfg.SendgridAPIKey, cfg.SenderEmail)

	authService := usecase.NewAuthService(profileRepo, hasher, tokenManager, store, appLog)
	progressService := usecase.NewProgressService(cat, store, progressRepo, appLog)
	linkService := usecase.NewLinkService(linkRepo, profileRepo, progressRepo, cat, sender, appLog)
	settingsService := usecase.NewSettingsService(store, appLog)

	limiter := middleware.NewRateLimiter(rdb)

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewCatalogHandler(cat),
		handlers.NewProgressHandler(progressService, cat),
		handlers.NewLinkHandler(linkService),
		handlers.NewSettingsHandler(settingsService),
		limiter,
		tokenManager,
	)

	appLog.Info("LearnPlatform API running", "port", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		appLog.Fatal("Failed to serve", "err", err)
	}
}
