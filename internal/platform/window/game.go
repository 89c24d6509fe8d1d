// Package window runs blockfall in a desktop window using Ebiten.
// Every grid cell is a filled square with a thin outline.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// FrontendName identifies this frontend in the run history.
const FrontendName = "window"

// Options carries the collaborators of the window frontend.
type Options struct {
	Store         *storage.Store // May be nil: play without history
	Logger        *log.Logger
	Palette       []string
	Outline       string
	CellSize      int
	MaxFrameDelta time.Duration // Zero disables clamping
}

// Game adapts a tetris.Game to ebiten.Game.
type Game struct {
	game     *tetris.Game
	opts     Options
	colors   []color.RGBA
	outline  color.RGBA
	input    core.InputFrame
	keys     []ebiten.Key
	last     time.Time
	state    core.GameState
	runSaved bool
}

// NewGame prepares the window frontend and starts a game.
func NewGame(game *tetris.Game, cfg core.RuntimeConfig, opts Options) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 20
	}

	colors := make([]color.RGBA, len(opts.Palette))
	for i, hex := range opts.Palette {
		colors[i] = config.RGBA(hex)
	}

	game.Reset(cfg)
	opts.Logger.Info("game started", "seed", cfg.Seed, "cols", game.Config().Cols, "rows", game.Config().Rows)

	return &Game{
		game:    game,
		opts:    opts,
		colors:  colors,
		outline: config.RGBA(opts.Outline),
		input:   core.NewInputFrame(),
		state:   game.State(),
	}
}

// Update collects input and advances the game by the real time since the last call.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.input.Push(MapKey(k))
	}
	if ebiten.IsWindowBeingClosed() {
		g.input.Push(core.ActionQuit)
	}

	if g.state.GameOver && g.input.Has(core.ActionQuit) {
		g.opts.Logger.Info("player quit", "lines", g.state.Lines, "pieces", g.state.Pieces)
		return ebiten.Termination
	}

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	if g.opts.MaxFrameDelta > 0 && dt > g.opts.MaxFrameDelta {
		dt = g.opts.MaxFrameDelta
	}

	result := g.game.Step(dt, g.input)
	g.state = result.State
	g.input.Clear()

	if result.Locked {
		g.opts.Logger.Debug("piece locked", "pieces", result.State.Pieces)
	}
	if result.Cleared > 0 {
		g.opts.Logger.Debug("rows cleared", "count", result.Cleared, "total", result.State.Lines)
	}

	if result.Restarted {
		g.runSaved = false
		g.opts.Logger.Info("game restarted", "seed", g.game.Seed())
	}

	switch {
	case g.state.GameOver:
		g.recordRun(storage.EndGameOver)
	case g.state.Quit:
		if g.state.Pieces > 0 {
			g.recordRun(storage.EndQuit)
		}
		g.opts.Logger.Info("player quit", "lines", g.state.Lines, "pieces", g.state.Pieces)
		return ebiten.Termination
	}
	return nil
}

func (g *Game) recordRun(reason string) {
	if g.runSaved {
		return
	}
	g.runSaved = true
	g.opts.Logger.Info("game ended", "reason", reason, "lines", g.state.Lines, "pieces", g.state.Pieces, "elapsed", g.game.Elapsed())

	if g.opts.Store == nil {
		return
	}
	_, err := g.opts.Store.SaveRun(storage.Run{
		Frontend:  FrontendName,
		Seed:      g.game.Seed(),
		Lines:     g.state.Lines,
		Pieces:    g.state.Pieces,
		Duration:  g.game.Elapsed(),
		EndReason: reason,
	})
	if err != nil {
		g.opts.Logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the grid, then the active piece, then the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.color(core.ColorEmpty))

	grid := g.game.Grid()
	for y := range grid.Rows() {
		for x := range grid.Cols() {
			g.drawCell(screen, x, y, grid.At(x, y))
		}
	}

	if g.game.Phase() != tetris.StateQuit {
		piece := g.game.Piece()
		for _, b := range piece.Blocks() {
			if b.Y >= 0 {
				g.drawCell(screen, b.X, b.Y, piece.Color)
			}
		}
	}

	if g.state.GameOver {
		w, h := g.size()
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2-24)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", g.state.Lines), w/2-27, h/2-8)
		ebitenutil.DebugPrintAt(screen, "R restart  Q quit", w/2-51, h/2+8)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, c core.Color) {
	size := float32(g.opts.CellSize)
	px, py := float32(x)*size, float32(y)*size
	vector.DrawFilledRect(screen, px, py, size, size, g.color(c), false)
	vector.StrokeRect(screen, px, py, size, size, 1, g.outline, false)
}

func (g *Game) color(c core.Color) color.RGBA {
	if int(c) < len(g.colors) {
		return g.colors[c]
	}
	return color.RGBA{A: 0xff}
}

func (g *Game) size() (int, int) {
	cfg := g.game.Config()
	return cfg.Cols * g.opts.CellSize, cfg.Rows * g.opts.CellSize
}

// Layout keeps the logical canvas at exactly one cell per grid square.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.size()
}

// State returns the last observed game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *tetris.Game, cfg core.RuntimeConfig, opts Options) error {
	g := NewGame(game, cfg, opts)
	w, h := g.size()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
