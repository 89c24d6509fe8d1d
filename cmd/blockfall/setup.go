package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Flags shared by play and window
var (
	flagDifficulty string
	flagCols       int
	flagRows       int
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (0 = derive from window size)")
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (0 = derive from window size)")
}

// loadConfig loads the config file and applies command-line overrides.
// An invalid configuration is fatal.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagCols > 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagRows > 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the application logger. With toFile set, output goes to
// --log-file because the terminal frontend owns stdout.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if toFile {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeLog, nil
}

// openStore opens the run history. Failure is not fatal for playing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database, runs will not be saved", "error", err)
		return nil
	}
	return store
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
