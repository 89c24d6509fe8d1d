package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Down/J/S     - Move down
  Up/K/W/X     - Rotate clockwise
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Difficulty options (constant fall speed, no progression):
  easy   - one row every 800ms
  normal - one row every 500ms
  hard   - one row every 250ms
  fixed  - keep the config's fall_interval_ms

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --cols 10 --rows 20
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if gameCfg.Timing.TickRate > 0 {
		cfg.TickRate = gameCfg.Timing.TickRate
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := tetris.New(gameCfg.Resolve())
	err = tui.Run(game, cfg, tui.Options{
		Store:         store,
		Logger:        logger,
		Theme:         tui.NewTheme(gameCfg.Palette, gameCfg.Outline),
		MaxFrameDelta: gameCfg.MaxFrameDelta(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
