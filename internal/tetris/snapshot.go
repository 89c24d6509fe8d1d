package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64
	State     State
	Shape     string
	Color     int
	PieceX    int
	PieceY    int
	FallTimer int64 // Milliseconds accumulated toward the next gravity step
	Lines     int
	Pieces    int
	Board     []string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:     g.frame,
		State:     g.state,
		Shape:     g.piece.Shape.String(),
		Color:     int(g.piece.Color),
		PieceX:    g.piece.X,
		PieceY:    g.piece.Y,
		FallTimer: g.fallTimer.Milliseconds(),
		Lines:     g.lines,
		Pieces:    g.pieces,
		Board:     g.grid.Lines(),
	}
}
