// Package config loads the YAML configuration for the snake binary.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig is the complete configuration file.
type SnakeConfig struct {
	TickInterval time.Duration  `yaml:"tick_interval"`
	Seed         int64          `yaml:"seed"`
	Layout       LayoutConfig   `yaml:"layout"`
	Journal      JournalConfig  `yaml:"journal"`
	SSH          SSHConfig      `yaml:"ssh"`
	Spectate     SpectateConfig `yaml:"spectate"`
}

// LayoutConfig mirrors core.LayoutParams plus the terminal cell aspect.
type LayoutConfig struct {
	Border     int `yaml:"border"`
	MinCell    int `yaml:"min_cell"`
	MaxCell    int `yaml:"max_cell"`
	MinGrid    int `yaml:"min_grid"`
	CellAspect int `yaml:"cell_aspect"` // terminal columns per grid column
}

// JournalConfig controls the run journal database.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SSHConfig configures `snake serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// SpectateConfig configures the websocket spectator feed. An empty address
// disables it.
type SpectateConfig struct {
	Address string `yaml:"address"`
}

// Validate checks that every numeric setting is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if err := c.LayoutParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Layout.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("layout.cell_aspect must be positive, got %d", c.Layout.CellAspect))
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		errs = append(errs, errors.New("journal.path is required when the journal is enabled"))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// LayoutParams converts the layout section for core.DeriveLayout.
func (c SnakeConfig) LayoutParams() core.LayoutParams {
	return core.LayoutParams{
		Border:  c.Layout.Border,
		MinCell: c.Layout.MinCell,
		MaxCell: c.Layout.MaxCell,
		MinGrid: c.Layout.MinGrid,
	}
}

// Runtime builds the per-session runtime config for a screen of w×h
// characters.
func (c SnakeConfig) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      w,
		ScreenH:      h,
		TickInterval: c.TickInterval,
		Seed:         c.Seed,
		Layout:       c.LayoutParams(),
	}
}
