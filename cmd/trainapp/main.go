package main // Entry point package

import (
	"log" // Fallback logging before zap is up
	"os"  // Stdin/stdout for the interactive loop

	"github.com/iliyamo/train-seat-reservation/internal/audit"      // Booking trail writer
	"github.com/iliyamo/train-seat-reservation/internal/booking"    // Reservation engine
	"github.com/iliyamo/train-seat-reservation/internal/cli"        // Interactive menu
	"github.com/iliyamo/train-seat-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/train-seat-reservation/internal/logger"     // Zap logger constructor
	"github.com/iliyamo/train-seat-reservation/internal/repository" // File-backed repositories
)

func main() {
	cfg := config.Load() // Load environment config

	zl, err := logger.New(cfg.Env) // Build the structured logger
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zl.Sync() //nolint:errcheck // stderr sync failure is harmless at exit

	users, err := repository.NewUserRepo(cfg.UsersFile, zl) // Open the user store
	if err != nil {
		// Structurally inaccessible store path: the one fatal startup case
		log.Fatalf("open user store: %v", err)
	}
	trains, err := repository.NewTrainRepo(cfg.TrainsFile, zl) // Open the train store
	if err != nil {
		log.Fatalf("open train store: %v", err)
	}

	trail := audit.NewWriter(cfg.AuditDir)                // Booking confirmations log
	engine := booking.NewEngine(users, trains, trail, zl) // Wire the reservation engine

	app := cli.NewApp(cfg, users, trains, engine, zl, os.Stdin, os.Stdout)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
