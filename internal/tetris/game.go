// Package tetris implements the falling-block puzzle: the grid, the pieces,
// collision and locking, and the per-frame state machine. It knows nothing
// about terminals or windows; frontends feed it elapsed time and input.
package tetris

import (
	"math"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ID is the identifier used for logs and run history.
const ID = "blockfall"

// State is the game loop state.
type State int

const (
	StateRunning State = iota
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithRandFactory replaces the default math/rand source.
func WithRandFactory(f RandFactory) Option {
	return func(g *Game) {
		g.newRand = f
	}
}

// WithRand makes every reset use r, regardless of seed.
func WithRand(r Rand) Option {
	return WithRandFactory(func(int64) Rand { return r })
}

// Game is the falling-block game.
type Game struct {
	cfg     Config
	catalog []Shape
	newRand RandFactory
	rng     Rand
	seed    int64

	grid      *Grid
	piece     Piece
	fallTimer time.Duration
	state     State

	frame   uint64
	elapsed time.Duration
	lines   int
	pieces  int

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game. Call Reset before the first Step.
func New(cfg Config, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		catalog: Catalog(),
		newRand: SeededRand,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Reset starts a new game: empty grid, fresh piece, running state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.seed = rt.Seed
	g.rng = g.newRand(rt.Seed)
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.grid = NewGrid(g.cfg.Cols, g.cfg.Rows)
	g.fallTimer = 0
	g.frame = 0
	g.elapsed = 0
	g.lines = 0
	g.pieces = 0
	g.state = StateRunning

	g.spawn()
}

// Resize records new screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// spawn replaces the active piece and ends the game if it cannot be placed.
func (g *Game) spawn() {
	g.piece = Spawn(g.catalog, g.cfg.Cols, g.cfg.PaletteSize, g.rng)
	if g.grid.Collides(g.piece, 0, 0) {
		g.state = StateGameOver
	}
}

// Step advances the game by one frame that lasted dt. Input is drained in
// arrival order before gravity is applied.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.state != StateRunning {
		if g.state == StateGameOver && in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.elapsed += dt
	g.fallTimer += dt

	for _, action := range in.Actions() {
		g.apply(action)
		if g.state == StateQuit {
			return core.StepResult{State: g.State()}
		}
	}

	var result core.StepResult
	// Deltas summing exactly to the interval descend on that frame
	if g.fallTimer >= g.cfg.FallInterval {
		result.Locked, result.Cleared = g.gravity()
		g.fallTimer = 0
	}

	result.State = g.State()
	return result
}

// restart begins a new game with a seed drawn from the current source.
func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		Seed:    int64(g.rng.Intn(math.MaxInt32)),
		ScreenW: g.screenW,
		ScreenH: g.screenH,
	})
}

// apply handles one player action.
func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		g.tryMove(-1, 0)
	case core.ActionRight:
		g.tryMove(1, 0)
	case core.ActionDown:
		g.tryMove(0, 1)
	case core.ActionRotate:
		g.tryRotate()
	case core.ActionQuit:
		g.state = StateQuit
	}
}

func (g *Game) tryMove(dx, dy int) bool {
	if g.grid.Collides(g.piece, dx, dy) {
		return false
	}
	g.piece = g.piece.Moved(dx, dy)
	return true
}

// tryRotate commits the rotated piece only if it fits where it is.
// No kicks: a blocked rotation leaves the piece untouched.
func (g *Game) tryRotate() bool {
	candidate := g.piece.Rotated()
	if g.grid.Collides(candidate, 0, 0) {
		return false
	}
	g.piece = candidate
	return true
}

// gravity moves the piece down one row or, if it rests on something,
// locks it, clears rows, and spawns the next piece.
func (g *Game) gravity() (locked bool, cleared int) {
	if g.tryMove(0, 1) {
		return false, 0
	}

	g.grid.Lock(g.piece)
	g.pieces++
	g.grid, cleared = g.grid.ClearFullRows()
	g.lines += cleared
	g.spawn()
	return true, cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:    g.lines,
		Pieces:   g.pieces,
		GameOver: g.state == StateGameOver,
		Quit:     g.state == StateQuit,
	}
}

// Phase returns the loop state.
func (g *Game) Phase() State {
	return g.state
}

// Grid returns the playfield. Frontends must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Piece returns the active piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// Elapsed returns the total frame time of the current game.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}
