package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
	"github.com/yusufkecer/jarosmart-backend/internal/config"
	"github.com/yusufkecer/jarosmart-backend/internal/db"
	"github.com/yusufkecer/jarosmart-backend/internal/handler"
	"github.com/yusufkecer/jarosmart-backend/internal/logging"
	"github.com/yusufkecer/jarosmart-backend/internal/repository"
	"github.com/yusufkecer/jarosmart-backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET environment variable must be set")
	}

	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	router := handler.NewRouter(handler.RouterConfig{
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustProxy:     cfg.TrustProxy,
		Issuer:         auth.NewIssuer(cfg.JWTSecret),
		Accounts:       repository.NewAccountRepository(database),
		Weights:        service.NewWeightHistoryService(repository.NewWeightRepository(database), logger),
		Preferences:    service.NewPreferencesService(repository.NewPreferencesRepository(database), logger),
		Ingredients:    service.NewIngredientsService(repository.NewIngredientRepository(database), logger),
		Profiles:       service.NewProfileService(repository.NewProfileRepository(database), logger),
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
