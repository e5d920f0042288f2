package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	cfg := loadConfig()

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open mission log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := zerolog.New(f).With().Timestamp().Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().
		Uint64("seed", seed).
		Int("ships", cfg.Ships).
		Int("shots", cfg.Shots).
		Msg("war room starting")

	m := initialModel(cfg, seed, logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
