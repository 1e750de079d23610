package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestOpenJournalDisabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		path    string
	}{
		{"disabled with path", false, "runs.db"},
		{"empty path from flag", false, ""},
		{"enabled without path", true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.DefaultSnakeConfig()
			cfg.Journal.Enabled = tc.enabled
			cfg.Journal.Path = ""
			if tc.path != "" {
				cfg.Journal.Path = filepath.Join(dir, tc.path)
			}

			store, err := openJournal(cfg)
			if !errors.Is(err, errJournalDisabled) {
				t.Fatalf("openJournal() error = %v, expected errJournalDisabled", err)
			}
			if store != nil {
				t.Error("disabled journal should not return a store")
			}
			if tc.path != "" {
				if _, statErr := os.Stat(cfg.Journal.Path); !os.IsNotExist(statErr) {
					t.Errorf("disabled journal created %s", cfg.Journal.Path)
				}
			}
		})
	}
}

func TestOpenJournalEnabled(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "runs.db")

	store, err := openJournal(cfg)
	if err != nil {
		t.Fatalf("openJournal() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecentRuns(5); err != nil {
		t.Errorf("RecentRuns() on a fresh journal failed: %v", err)
	}
}
