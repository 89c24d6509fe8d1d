package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend knows at start: the drawable area,
// the frame rate and the seed. Seed 0 asks the frontend to pick one.
type RuntimeConfig struct {
	ScreenW  int // Terminal columns, or window pixels for the window frontend
	ScreenH  int
	TickRate int // Frames per second
	Seed     int64
}

func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// FrameInterval is the pause between frames at TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of the game a frontend reacts to.
type GameState struct {
	Lines    int  // Rows cleared so far
	Pieces   int  // Pieces locked so far
	GameOver bool // A spawned piece collided with the grid
	Quit     bool // The player asked to leave
}

// Ended reports whether the game reached either terminal state.
func (s GameState) Ended() bool {
	return s.GameOver || s.Quit
}

// StepResult describes one frame.
type StepResult struct {
	State     GameState
	Cleared   int  // Rows cleared during this frame
	Locked    bool // A piece was locked during this frame
	Restarted bool // A new game began this frame, possibly already over
}
