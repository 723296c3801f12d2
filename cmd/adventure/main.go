// Package main provides the single-player terminal adventure.
// It wires together configuration, logging, world content and the interpreter.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/content"
	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/display"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and ADVENTURE_* environment variables")
	worldPath := flag.String("world", "", "path to a world YAML file; overrides world.path")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *worldPath != "" {
		cfg.World.Path = *worldPath
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Load world
	worldStart := time.Now()
	w, err := loadWorld(cfg.World)
	if err != nil {
		logger.Fatal("loading world", zap.Error(err))
	}
	logger.Info("world loaded",
		zap.String("source", worldSource(cfg.World)),
		zap.Int("rooms", len(w.Rooms)),
		zap.Int("items", len(w.Items)),
		zap.Duration("elapsed", time.Since(worldStart)),
	)

	game, err := engine.New(w, engine.WithLogger(logger))
	if err != nil {
		logger.Fatal("starting game", zap.Error(err))
	}
	logger.Info("game initialized", zap.Duration("startup", time.Since(start)))

	tw := display.Typewriter{Out: os.Stdout, Delay: cfg.Display.TypeDelay}
	if err := tw.Intro(cfg.Display.BannerWidth); err != nil {
		logger.Fatal("writing intro", zap.Error(err))
	}

	if err := play(os.Stdin, os.Stdout, game, cfg.Display.Width); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
	logger.Info("game ended",
		zap.Bool("won", game.Won()),
		zap.Strings("visited", game.VisitedRooms()),
	)
}

// loadWorld reads the configured world file, or the built-in house when none is set.
func loadWorld(cfg config.WorldConfig) (*world.World, error) {
	if cfg.Path == "" {
		return content.House()
	}
	return world.LoadFromFile(cfg.Path)
}

func worldSource(cfg config.WorldConfig) string {
	if cfg.Path == "" {
		return "built-in"
	}
	return cfg.Path
}
