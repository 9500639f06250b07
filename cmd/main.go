package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipt-ledger/cmd/config"
	migration "receipt-ledger/cmd/database/migrate"
	"receipt-ledger/cmd/database/seed"
	"receipt-ledger/internal/utils"
	"receipt-ledger/internal/utils/logger"
)

func main() {
	var (
		seedDemo  = flag.Bool("seed", false, "insert demo vendors, products and receipts, then exit")
		resetDemo = flag.Bool("reset", false, "clear all data and insert the demo set, then exit")
	)
	flag.Parse()

	log := logger.New()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect database")
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	switch {
	case *resetDemo:
		if err := seed.Reset(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset demo data")
		}
		log.Info().Msg("Demo data reset")
		return
	case *seedDemo:
		if err := seed.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Msg("Demo data seeded")
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build app")
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Info().Str("addr", addr).Msg("Starting server")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}
