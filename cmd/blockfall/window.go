package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/window"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. The window is cols*cell_size by
rows*cell_size pixels. Controls are the same as in the terminal; closing
the window quits.

Examples:
  blockfall window
  blockfall window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := tetris.New(gameCfg.Resolve())
	cfg := core.RuntimeConfig{
		ScreenW:  gameCfg.Cols() * gameCfg.Window.CellSize,
		ScreenH:  gameCfg.Rows() * gameCfg.Window.CellSize,
		TickRate: gameCfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	return window.Run(game, cfg, window.Options{
		Store:         store,
		Logger:        logger,
		Palette:       gameCfg.Palette,
		Outline:       gameCfg.Outline,
		CellSize:      gameCfg.Window.CellSize,
		MaxFrameDelta: gameCfg.MaxFrameDelta(),
	})
}
