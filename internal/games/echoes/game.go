// Package echoes adapts the Echoes of Humanity simulation to the platform's
// game loop: it owns one session, steps it with platform input and draws it
// into a cell buffer.
package echoes

import (
	"math/rand"

	"github.com/vovakirdan/echoes/internal/core"
	"github.com/vovakirdan/echoes/internal/games/echoes/world"
)

const (
	// ID is the game identifier used in logs and session records.
	ID = "echoes"
	// Title is the human-readable game name.
	Title = "Echoes of Humanity"
)

// Game implements the platform game contract around a world.State.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	state  world.State
	layers *LayerCache
}

// New creates a game. layers may be nil, in which case static zone layers are
// rasterised on every frame.
func New(layers *LayerCache) *Game {
	g := &Game{layers: layers}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a fresh session from the intro screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = world.NewState()
}

// Step advances the session by one tick. Restart wipes the whole session,
// including the choice and every NPC's fate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.cfg)
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Kind: core.EventRestart}},
		}
	}

	events := g.state.Update(in, g.rng)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the platform-facing summary of the session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Gems:     g.state.Player.Gems,
		Zone:     g.state.Zone.String(),
		Finished: g.state.Zone == world.ZoneVictory,
	}
}
