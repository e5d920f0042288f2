package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the game configuration, read from the environment (optionally
// seeded from a .env file). Everything has a sane default; the zero seed
// means "seed from the clock".
type Config struct {
	Ships   int    // hidden ships on the grid
	Shots   int    // circuit evaluations per ping/scan
	Seed    uint64 // 0 = time-based
	LogFile string // mission log path
}

func loadConfig() Config {
	godotenv.Load()

	cfg := Config{
		Ships:   4,
		Shots:   1,
		LogFile: "warroom.log",
	}

	if v := os.Getenv("WARROOM_SHIPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= gridSize*gridSize {
			cfg.Ships = n
		}
	}
	if v := os.Getenv("WARROOM_SHOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Shots = n
		}
	}
	if v := os.Getenv("WARROOM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("WARROOM_LOG"); v != "" {
		cfg.LogFile = v
	}

	return cfg
}
