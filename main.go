package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vibeflow/config"
	"vibeflow/helpers"
	"vibeflow/routes"
	"vibeflow/services"
	"vibeflow/store"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = config.GenerateRandomKey()
		log.Warn().Msg("VIBEFLOW_JWT_SECRET not set, using a generated key; tokens will not survive restarts")
	}
	helpers.SetJWTKey(secret)

	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := store.NewMongo(client, cfg.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}
	if cfg.SeedOnStart {
		if n, err := db.CountRecommendations(ctx); err == nil && n == 0 {
			if err := db.SeedDefaults(ctx); err != nil {
				log.Warn().Err(err).Msg("startup catalog seed failed")
			}
		}
	}
	cancel()

	recService := services.NewRecommendationService(db)
	sessions := services.NewSessionManager(db, db, recService)

	chatService, err := services.NewChatService(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("AI chat disabled")
		chatService = nil
	}

	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api, &routes.Deps{
		Users:    db,
		Profiles: db,
		Sessions: sessions,
		Chat:     chatService,
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
