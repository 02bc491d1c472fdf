package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/export"
	"github.com/claude/liftlog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	outDir := flag.String("out", "export", "output directory for session JSON files")
	userID := flag.Int("user", 1, "user ID to export")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-export", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// State database under the home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := export.OpenStateDB(filepath.Join(homeDir, ".liftlog-export"))
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	exporter := export.New(db, state, *outDir, log)
	stats, err := exporter.Run(ctx, *userID)
	if err != nil {
		log.Error("export failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("export complete")
}

func printStats(stats *export.Stats) {
	fmt.Println()
	fmt.Println("=== Export Summary ===")
	fmt.Printf("  Sessions total:    %d\n", stats.SessionsTotal)
	fmt.Printf("  Sessions exported: %d\n", stats.SessionsExported)
	fmt.Printf("  Sessions skipped:  %d (already exported)\n", stats.SessionsSkipped)
	fmt.Printf("  Sessions errored:  %d\n", stats.SessionsErrored)
	fmt.Println()
}
