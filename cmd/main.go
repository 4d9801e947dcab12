package main

import (
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/atknatk/parser-api/internal/api"
	"github.com/atknatk/parser-api/internal/config"
	"github.com/atknatk/parser-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.IsDev())
	log := logger.Log

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())
	api.SetupRoutes(app, cfg.MatchTimezone)

	go func() {
		addr := ":" + cfg.HTTPPort
		log.Info().Str("addr", addr).Str("timezone", cfg.MatchTimezone).Msg("parser API starting")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
