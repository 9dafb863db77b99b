package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"outfitai/internal/config"
	"outfitai/internal/logging"
	"outfitai/internal/server"
	"outfitai/internal/stylist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config failed: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	logger := logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	geminiClient, err := stylist.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	styler := stylist.New(geminiClient, logger)
	catalog := stylist.NewModelCatalog(geminiClient, logger)
	handler := server.NewHandler(styler, catalog, cfg.DefaultModel, cfg.MaxImageBytes, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(server.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	handler.Routes(router)

	logger.Info().Str("address", cfg.Address).Str("default_model", cfg.DefaultModel).Msg("stylist agent starting")
	if err := router.Run(cfg.Address); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
