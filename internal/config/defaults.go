package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// DefaultSnakeConfig returns the hardcoded defaults. It matches the
// embedded YAML and backs fields a partial file leaves unset.
func DefaultSnakeConfig() SnakeConfig {
	term := core.TerminalLayoutParams()
	return SnakeConfig{
		TickInterval: core.DefaultTickInterval,
		Layout: LayoutConfig{
			Border:     term.Border,
			MinCell:    term.MinCell,
			MaxCell:    term.MaxCell,
			MinGrid:    term.MinGrid,
			CellAspect: 2,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "~/.snake/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKey:     ".ssh/snake_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
