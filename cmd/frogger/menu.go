package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chuashinherh/Frogger/internal/game"
	"github.com/chuashinherh/Frogger/internal/platform/tui"
	"github.com/chuashinherh/Frogger/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start the game in menu mode. After a game ends you return to the
title screen to play again or browse the session's scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  frogger menu
  frogger menu --fps 30
  frogger menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		choice, updatedCfg, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = updatedCfg

		switch choice {
		case tui.MenuChoicePlay:
			// Fresh seed per round unless one was pinned on the CLI.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				if store != nil {
					store.Close()
				}
				return
			}

		default:
			if store != nil {
				store.Close()
			}
			return
		}
	}

	if store != nil {
		store.Close()
	}
}
