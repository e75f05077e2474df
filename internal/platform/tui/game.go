package tui

import "github.com/vovakirdan/echoes/internal/core"

// Game is what the platform drives. Games contain pure logic with no Bubble
// Tea dependency; the platform handles input mapping, timing and display.
type Game interface {
	// ID returns the game identifier used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the platform-facing summary of the session.
	State() core.GameState
}

// Factory creates a fresh game. The SSH server calls it once per session.
type Factory func() Game

// Sounds plays audio cues for game events.
type Sounds interface {
	Play(kind core.EventKind)
}
