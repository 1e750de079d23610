// snake is a terminal snake game with resize-aware play, an SSH front end
// and a websocket spectator feed.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake runs               - Browse the run journal
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--tick <duration> - Time between simulation steps (default: 150ms)
//	--seed <value>    - Set RNG seed for reproducible target placement
//	--db <path>       - Run journal path (default: ~/.snake/runs.db)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake is a grid game for the terminal. The board follows the window:
resizing keeps the current run when the snake still fits and starts a fresh
snake (keeping the score) when it does not.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  runs     - Browse the run journal
  config   - Print the effective configuration

Examples:
  snake play
  snake play --tick 100ms --spectate :8090
  snake serve --ssh :2222
  snake runs --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time between simulation steps (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies global flag overrides.
// It exits on invalid configuration.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.TickInterval = flagTick
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Journal.Path = flagDBPath
		cfg.Journal.Enabled = flagDBPath != ""
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, source
}

// newLogger builds a charm logger honoring --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
