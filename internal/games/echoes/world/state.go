package world

import (
	"github.com/vovakirdan/echoes/internal/core"
)

// Choice is the decision made when zone 1's gems run out. It is set once.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceElder
	ChoiceChild
	ChoiceBoth
	ChoiceNeither
)

// String returns the choice name.
func (c Choice) String() string {
	switch c {
	case ChoiceNone:
		return "none"
	case ChoiceElder:
		return "elder"
	case ChoiceChild:
		return "child"
	case ChoiceBoth:
		return "both"
	case ChoiceNeither:
		return "neither"
	default:
		return "unknown"
	}
}

// State is everything one play-through knows. It is passed explicitly through
// every transition; nothing lives in package globals.
type State struct {
	Zone   Zone
	Player Player
	NPCs   []NPC // Indexed by NPCKind
	Gems   []Gem
	Layout Layout

	Choice       Choice
	ChoiceActive bool // The choice overlay is up and movement is paused
	RevivedNPC   bool

	// Enlightenment is the victory trigger. Empty until every living NPC is helped.
	Enlightenment core.RectF

	Messages MessageQueue
	Tick     uint64

	onTrigger bool // The player stood on the enlightenment trigger last tick
	events    []core.Event
}

// NewState returns the state a session starts in: the intro screen with the
// player centred and no NPCs yet.
func NewState() State {
	spawn := MazeSpawn()
	return State{
		Zone:   ZoneIntro,
		Player: NewPlayer(spawn.X, spawn.Y),
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.NPCs = append([]NPC(nil), s.NPCs...)
	out.Gems = append([]Gem(nil), s.Gems...)
	out.Layout = s.Layout.clone()
	out.Messages = s.Messages.clone()
	out.events = append([]core.Event(nil), s.events...)
	return out
}

// NPC returns the NPC with the given identity, if present.
func (s *State) NPC(kind NPCKind) (*NPC, bool) {
	i := int(kind)
	if i < 0 || i >= len(s.NPCs) {
		return nil, false
	}
	return &s.NPCs[i], true
}

// HasEnlightenment reports whether the victory trigger has appeared.
func (s State) HasEnlightenment() bool {
	return !s.Enlightenment.Empty()
}

// AllLivingHelped reports whether every NPC that is still alive has been helped.
func (s State) AllLivingHelped() bool {
	for _, n := range s.NPCs {
		if !n.Dead && !n.Helped {
			return false
		}
	}
	return true
}

// BothAlive reports whether no NPC is dead.
func (s State) BothAlive() bool {
	for _, n := range s.NPCs {
		if n.Dead {
			return false
		}
	}
	return true
}

// say queues a message.
func (s *State) say(text string, ticks int) bool {
	return s.Messages.Push(text, ticks)
}

// emit records an event for the current tick.
func (s *State) emit(kind core.EventKind, detail string) {
	s.events = append(s.events, core.Event{Kind: kind, Detail: detail})
}

// drainEvents returns and clears the events recorded so far.
func (s *State) drainEvents() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}
