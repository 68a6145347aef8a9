package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"concentration/internal/config"
	"concentration/internal/console"
	"concentration/internal/game"
	"concentration/internal/names"
	"concentration/internal/seed"
	"concentration/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	pool, err := names.Load(cfg.NamesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load name pool")
	}

	results := openStore(cfg)
	defer results.Close()

	boardSeed := seed.Pick(cfg.Seed, cfg.SeedDaily, cfg.SeedSalt, time.Now())
	board := game.NewBoard(cfg.Cols, cfg.Rows, rand.New(rand.NewSource(boardSeed)))

	session := console.New(board, pool, results, os.Stdin, os.Stdout)
	if err := session.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("game setup failed")
	}
	// Exit code 0 on every termination path: quit or decline-replay.
}

// openStore picks SQLite when RESULTS_DB is set, memory otherwise.
func openStore(cfg config.Config) store.Store {
	if cfg.ResultsDB == "" {
		return store.NewMemoryStore()
	}
	s, err := store.OpenSQLite(cfg.ResultsDB)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ResultsDB).Msg("failed to open results database")
	}
	log.Info().Str("path", cfg.ResultsDB).Msg("recording results to sqlite")
	return s
}
