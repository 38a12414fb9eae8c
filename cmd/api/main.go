package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fitnexus/fitnexus-backend/api/routes"
	"github.com/fitnexus/fitnexus-backend/internal/assistant"
	"github.com/fitnexus/fitnexus-backend/internal/catalog"
	"github.com/fitnexus/fitnexus-backend/internal/identity"
	"github.com/fitnexus/fitnexus-backend/internal/profile"
	"github.com/fitnexus/fitnexus-backend/internal/profile/otpstore"
	"github.com/fitnexus/fitnexus-backend/internal/session"
	"github.com/fitnexus/fitnexus-backend/pkg/config"
	"github.com/fitnexus/fitnexus-backend/pkg/db"
	"github.com/fitnexus/fitnexus-backend/pkg/db/models"
	"github.com/fitnexus/fitnexus-backend/pkg/logger"
	"github.com/fitnexus/fitnexus-backend/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}
	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.AutoMigrate {
		if err := dbClient.DB().AutoMigrate(
			&models.Product{},
			&models.Gym{},
			&models.Package{},
			&models.WorkoutSession{},
		); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}
	}
	if cfg.FeatureFlags.SeedCatalog && cfg.App.IsDev() {
		if err := catalog.Seed(context.Background(), dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
	}

	store := session.NewStore()

	// In dev mode OTP state lives in memory and codes go to the log
	// instead of a redis-backed store and an SMS provider.
	var codes otpstore.Store
	var redisPinger redis.Pinger
	if cfg.App.IsDev() {
		codes = otpstore.NewMemory()
	} else {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisCodes, err := otpstore.NewRedis(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create otp store", err)
			os.Exit(1)
		}
		codes = redisCodes
		redisPinger = redisClient
	}

	profileService, err := profile.NewService(profile.ServiceParams{
		Store:    store,
		Identity: identity.NewTokenAdapter(),
		Codes:    codes,
		Dispatcher: &profile.SimulatedDispatcher{
			Latency: cfg.OTP.SendLatency,
			Logger:  logg,
		},
		OTPConfig: cfg.OTP,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	assistantManager, err := assistant.NewManager(assistant.ManagerParams{
		Client: assistant.NewOpenAIClient(cfg.Assistant),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create assistant manager", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisPinger,
			store,
			profileService,
			assistantManager,
			catalogService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
