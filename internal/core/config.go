package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Gems     int    // Gems the player is carrying
	Zone     string // Name of the current zone
	Finished bool   // Whether the victory screen is showing
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventZoneEntered EventKind = iota
	EventGemCollected
	EventChoiceOffered
	EventChoiceMade
	EventWrongExit
	EventGemGiven
	EventNPCHelped
	EventNPCRevived
	EventHelpRejected
	EventEnlightenment
	EventVictoryBlocked
	EventVictory
	EventRestart
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventZoneEntered:
		return "zone_entered"
	case EventGemCollected:
		return "gem_collected"
	case EventChoiceOffered:
		return "choice_offered"
	case EventChoiceMade:
		return "choice_made"
	case EventWrongExit:
		return "wrong_exit"
	case EventGemGiven:
		return "gem_given"
	case EventNPCHelped:
		return "npc_helped"
	case EventNPCRevived:
		return "npc_revived"
	case EventHelpRejected:
		return "help_rejected"
	case EventEnlightenment:
		return "enlightenment"
	case EventVictoryBlocked:
		return "victory_blocked"
	case EventVictory:
		return "victory"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by a game tick so the platform can log it or play a sound.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
