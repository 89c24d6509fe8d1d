package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T, cfg Config, opts ...Option) *Game {
	t.Helper()
	g := New(cfg, opts...)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 30})
	require.Equal(t, StateRunning, g.Phase())
	return g
}

func TestResetStartsWithEmptyGridAndSpawnedPiece(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), WithRand(script(0, 0)))

	assert.Equal(t, NewGrid(16, 26).Lines(), g.Grid().Lines())
	assert.Equal(t, "I", g.Piece().Shape.Name())
	assert.Equal(t, 16/2-4/2, g.Piece().X)
	assert.Equal(t, 0, g.Piece().Y)
	assert.Equal(t, core.Color(1), g.Piece().Color)
}

func TestHorizontalMoves(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), WithRand(script(1))) // O at x=7

	g.Step(frame, core.FrameOf(core.ActionLeft, core.ActionLeft, core.ActionRight))
	assert.Equal(t, 6, g.Piece().X)

	// Walk into the left wall; extra presses are rejected
	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		in.Push(core.ActionLeft)
	}
	g.Step(frame, in)
	assert.Equal(t, 0, g.Piece().X)

	in.Clear()
	for i := 0; i < 20; i++ {
		in.Push(core.ActionRight)
	}
	g.Step(frame, in)
	assert.Equal(t, 16-2, g.Piece().X)
}

func TestInputAppliedInArrivalOrder(t *testing.T) {
	// A vertical I in column 13 can only turn flat after stepping left
	tests := []struct {
		name      string
		in        core.InputFrame
		wantShape string
		wantX     int
	}{
		{"rotate then left", core.FrameOf(core.ActionRotate, core.ActionLeft), ShapeI.Rotate().String(), 12},
		{"left then rotate", core.FrameOf(core.ActionLeft, core.ActionRotate), ShapeI.String(), 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, DefaultConfig())
			g.piece = Piece{Shape: ShapeI.Rotate(), Color: 1, X: 13, Y: 0}

			g.Step(frame, tc.in)

			assert.Equal(t, tc.wantShape, g.Piece().Shape.String())
			assert.Equal(t, tc.wantX, g.Piece().X)
		})
	}
}

func TestMovesBlockedByLockedCells(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), WithRand(script(1)))
	g.grid.Lock(Piece{Shape: NewShape("dot", []int{1}), Color: 3, X: 6, Y: 1})

	g.Step(frame, core.FrameOf(core.ActionLeft))
	assert.Equal(t, 7, g.Piece().X, "cell at (6,1) blocks the O")
}

func TestSoftDropIsSingleStep(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), WithRand(script(1)))

	g.Step(frame, core.FrameOf(core.ActionDown, core.ActionDown))
	assert.Equal(t, 2, g.Piece().Y)

	// At the floor a manual drop does nothing, not even lock
	g.piece.Y = 26 - 2
	res := g.Step(frame, core.FrameOf(core.ActionDown))
	assert.Equal(t, 24, g.Piece().Y)
	assert.False(t, res.Locked)
	assert.Equal(t, 0, g.State().Pieces)
}

func TestRotateCommitsWhenItFits(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), WithRand(script(0))) // I, horizontal

	g.Step(frame, core.FrameOf(core.ActionRotate))
	assert.Equal(t, 1, g.Piece().Shape.Width())
	assert.Equal(t, 4, g.Piece().Shape.Height())
	assert.Equal(t, 6, g.Piece().X)
	assert.Equal(t, 0, g.Piece().Y)
}

func TestRotateRollsBackOnCollision(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		setup func(*Grid)
	}{
		{
			name:  "vertical I against right wall",
			piece: Piece{Shape: ShapeI.Rotate(), Color: 2, X: 15, Y: 5},
		},
		{
			name:  "horizontal I on the floor",
			piece: Piece{Shape: ShapeI, Color: 2, X: 3, Y: 25},
		},
		{
			name:  "T next to locked cells",
			piece: Piece{Shape: ShapeT, Color: 4, X: 5, Y: 10},
			setup: func(g *Grid) {
				g.Lock(Piece{Shape: NewShape("dot", []int{1}), Color: 1, X: 5, Y: 12})
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, DefaultConfig())
			g.piece = tc.piece
			if tc.setup != nil {
				tc.setup(g.grid)
			}
			require.True(t, g.grid.Collides(tc.piece.Rotated(), 0, 0), "test setup must block rotation")

			g.Step(frame, core.FrameOf(core.ActionRotate))

			assert.Equal(t, tc.piece.Shape.String(), g.Piece().Shape.String())
			assert.Equal(t, tc.piece.X, g.Piece().X)
			assert.Equal(t, tc.piece.Y, g.Piece().Y)
		})
	}
}

func TestGravityFiresWhenIntervalReached(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	// 31 frames of 16ms = 496ms, then 4ms reaches exactly 500ms
	for i := 0; i < 31; i++ {
		g.Step(frame, core.NewInputFrame())
		require.Equal(t, 0, g.Piece().Y, "piece moved early at frame %d", i+1)
	}
	g.Step(4*time.Millisecond, core.NewInputFrame())
	assert.Equal(t, 1, g.Piece().Y)
	assert.Equal(t, int64(0), g.Snapshot().FallTimer, "timer resets after a gravity step")

	// Next step needs another full interval
	g.Step(499*time.Millisecond, core.NewInputFrame())
	assert.Equal(t, 1, g.Piece().Y)
	g.Step(time.Millisecond, core.NewInputFrame())
	assert.Equal(t, 2, g.Piece().Y)
}

func TestGravityLocksClearsAndSpawns(t *testing.T) {
	cfg := Config{Cols: 4, Rows: 3, FallInterval: 100 * time.Millisecond, PaletteSize: 8}
	// Every spawn is an I (index 0) with colour 1 + 2
	g := newTestGame(t, cfg, WithRand(script(0, 2)))

	// A horizontal I resting on the floor of a 4-wide grid completes the row
	g.piece = Piece{Shape: ShapeI, Color: 3, X: 0, Y: 2}

	res := g.Step(100*time.Millisecond, core.NewInputFrame())

	assert.True(t, res.Locked)
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 1, g.State().Lines)
	assert.Equal(t, 1, g.State().Pieces)
	assert.Equal(t, []string{"....", "....", "...."}, g.Grid().Lines())
	assert.Equal(t, 0, g.Piece().Y, "a new piece spawned at the top")
	assert.Equal(t, StateRunning, g.Phase())
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	cfg := Config{Cols: 4, Rows: 2, FallInterval: 100 * time.Millisecond, PaletteSize: 2}
	// Always an O at x=1, filling both rows of the middle columns
	g := newTestGame(t, cfg, WithRand(script(1)))

	res := g.Step(100*time.Millisecond, core.NewInputFrame())

	assert.True(t, res.Locked)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Quit)
	assert.Equal(t, StateGameOver, g.Phase())

	// Terminal: input and time are ignored
	before := g.Snapshot()
	g.Step(time.Second, core.FrameOf(core.ActionLeft, core.ActionDown, core.ActionRotate))
	assert.Equal(t, before, g.Snapshot())
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := Config{Cols: 4, Rows: 2, FallInterval: 100 * time.Millisecond, PaletteSize: 2}
	g := newTestGame(t, cfg, WithRand(script(1)))
	g.Step(100*time.Millisecond, core.NewInputFrame())
	require.Equal(t, StateGameOver, g.Phase())

	res := g.Step(frame, core.FrameOf(core.ActionRestart))

	assert.True(t, res.Restarted)
	assert.Equal(t, StateRunning, g.Phase())
	assert.Equal(t, 0, g.State().Pieces)
	assert.Equal(t, []string{"....", "...."}, g.Grid().Lines())
}

func TestRestartIntoImmediateGameOver(t *testing.T) {
	// The I is wider than a 3-column grid, so every spawn collides
	g := New(Config{Cols: 3, Rows: 4, FallInterval: 100 * time.Millisecond, PaletteSize: 2}, WithRand(script(0)))
	g.Reset(core.RuntimeConfig{Seed: 1})
	require.Equal(t, StateGameOver, g.Phase())

	res := g.Step(frame, core.FrameOf(core.ActionRestart))
	assert.True(t, res.Restarted)
	assert.True(t, res.State.GameOver)

	res = g.Step(frame, core.NewInputFrame())
	assert.False(t, res.Restarted)
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Step(frame, core.FrameOf(core.ActionDown))

	g.Step(frame, core.FrameOf(core.ActionRestart))
	assert.Equal(t, 1, g.Piece().Y)
	assert.Equal(t, uint64(2), g.Snapshot().Frame)
}

func TestQuitIsCleanExitNotGameOver(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	x := g.Piece().X

	res := g.Step(time.Second, core.FrameOf(core.ActionQuit, core.ActionLeft))

	assert.True(t, res.State.Quit)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, StateQuit, g.Phase())
	assert.Equal(t, x, g.Piece().X, "actions after quit are dropped")
	assert.Equal(t, 0, g.Piece().Y, "no gravity after quit")

	// Restart only applies to game over
	g.Step(frame, core.FrameOf(core.ActionRestart))
	assert.Equal(t, StateQuit, g.Phase())
}

func TestGameEventuallyEndsWithoutInput(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	for i := 0; i < 5000; i++ {
		if g.State().GameOver {
			break
		}
		g.Step(500*time.Millisecond, core.NewInputFrame())
	}

	require.True(t, g.State().GameOver)
	assert.Positive(t, g.State().Pieces)
	assert.Equal(t, 0, g.State().Lines, "centre stacking never fills a row")
}

func TestDeterminism(t *testing.T) {
	rt := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 30}
	g1 := New(DefaultConfig())
	g1.Reset(rt)
	g2 := New(DefaultConfig())
	g2.Reset(rt)

	moves := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionDown}
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Push(moves[(i/7)%len(moves)])
		}
		dt := time.Duration(10+i%13) * time.Millisecond

		r1 := g1.Step(dt, in)
		r2 := g2.Step(dt, in)
		require.Equal(t, r1, r2, "step %d", i)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Step(frame, core.FrameOf(core.ActionDown))
	before := g.Snapshot()

	g.Resize(120, 40)
	assert.Equal(t, before, g.Snapshot())
}
