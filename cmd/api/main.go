package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/filmoteca/movie-catalog/internal/api"
	"github.com/filmoteca/movie-catalog/internal/core/service"
	mongodb "github.com/filmoteca/movie-catalog/internal/infrastructure/db/mongo"
	redisdb "github.com/filmoteca/movie-catalog/internal/infrastructure/db/redis"
	"github.com/filmoteca/movie-catalog/internal/infrastructure/swapi"
	"github.com/filmoteca/movie-catalog/internal/pkg/config"
	"github.com/filmoteca/movie-catalog/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories and services ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	movieService := service.NewMovieService(movieRepo, log)
	userService := service.NewUserService(userRepo, log)

	filmSource := swapi.NewClient(cfg.StarWars.BaseURL, cfg.StarWars.Timeout)
	syncService := service.NewSyncService(filmSource, movieRepo, redisdb.NewSyncLock(rdb), log)

	// --- Admin seeding ---
	seeder := service.NewSeeder(userRepo, cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, log)
	if err := seeder.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Services{
		Auth:   authService,
		Movies: movieService,
		Users:  userService,
		Sync:   syncService,
	}, db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting movie catalog API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
