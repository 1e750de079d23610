package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/spectate"
)

var (
	flagLogFile  string
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Space/R      - Restart (after game over)
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --log-file snake.log --log-level debug
  snake play --spectate :8090`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8090)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, source := loadConfig(cmd)
	if flagSpectate != "" {
		cfg.Spectate.Address = flagSpectate
	}

	// The game owns the terminal, so logs only go to a file
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "snake")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = newLogger(f, "snake")
	} else {
		logger = newLogger(io.Discard, "snake")
	}
	logger.Debug("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:     cfg.Runtime(width, height),
		CellAspect: cfg.Layout.CellAspect,
		Logger:     logger,
	}

	store, err := openJournal(cfg)
	switch {
	case errors.Is(err, errJournalDisabled):
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
	default:
		defer store.Close()
		opts.Journal = store
	}

	if cfg.Spectate.Address != "" {
		hub := spectate.NewHub(logger)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.Spectate.Address); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		logger.Info("spectator feed", "address", cfg.Spectate.Address)
		opts.Feed = hub
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
