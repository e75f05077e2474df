package world

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/echoes/internal/core"
)

// IntroDuration is how long the intro screen stays up without a key press.
const IntroDuration = 3 * time.Second

// pushBack is how far a wrong exit throws the player back into the maze.
const pushBack = 10

// offscreen is where NPCs wait while the player is in the maze.
const offscreen = -100

// Zone 1 spawns the player at the left edge, halfway down.
const (
	edgeSpawnX = 50
	edgeSpawnY = ScreenHeight / 2
)

// SetupZone returns prev moved into target. Per-zone entities (walls, gems,
// exits, the enlightenment trigger) are rebuilt from scratch; the player, the
// NPCs and the message queue carry over. prev is not modified.
func SetupZone(prev State, target Zone, rng *rand.Rand) State {
	next := prev.Clone()
	next.Zone = target
	next.Layout = LayoutFor(target)
	next.Gems = nil
	next.Enlightenment = core.RectF{}
	next.ChoiceActive = false
	next.onTrigger = false

	switch target {
	case ZoneIntro:
		intro := NewState()
		intro.events = next.events
		return intro

	case ZoneScarcity:
		next.Gems = ScarcityGems(next.Layout.Walls, rng)
		if len(next.NPCs) == 0 {
			next.NPCs = ScarcityNPCs(next.Layout.Walls, rng)
		}
		start := EdgeSpawn()
		next.placePlayer(start, start.X, start.Y, rng)
		next.say("Welcome to Zone 1: Scarcity. Collect magic gems and help the NPCs.", MessageLong)

	case ZoneMaze:
		for i := range next.NPCs {
			next.NPCs[i].X, next.NPCs[i].Y = offscreen, offscreen
		}
		next.placePlayer(MazeSpawn(), ScreenWidth/2, ScreenHeight/2, rng)
		next.say("Find the correct exit to proceed to the next zone!", MessageZone)

	case ZoneRiverbank:
		if len(next.NPCs) != 2 {
			next.NPCs = defaultNPCs()
		}
		for i := range next.NPCs {
			n := &next.NPCs[i]
			n.X = riverbankNPCX
			n.Y = riverbankElderY
			if n.Kind == NPCChild {
				n.Y = riverbankChildY
			}
			n.NeedsHelp = !n.Helped && !n.Dead
		}
		next.Gems = RiverbankGems(next.Layout.Walls, rng)
		start := RiverbankSpawn()
		next.placePlayer(start, start.X, start.Y, rng)
		next.say("Welcome to the Riverbank! Cross the river to reach safety.", MessageZone)

	case ZoneVictory:
		// Terminal; nothing to build.

	default:
		return prev.Clone()
	}

	next.emit(core.EventZoneEntered, target.String())
	return next
}

// EdgeSpawn is the preferred player position in zone 1.
func EdgeSpawn() core.RectF {
	return core.NewRectF(edgeSpawnX, edgeSpawnY, PlayerSize, PlayerSize)
}

// placePlayer moves the player to start, or to the nearest free spot around
// (ox, oy) when start overlaps a wall.
func (s *State) placePlayer(start core.RectF, ox, oy float64, rng *rand.Rand) {
	s.Player.X, s.Player.Y = spawnPlayer(start, ox, oy, s.Layout.Walls, rng)
}

// enter transitions the state in place.
func (s *State) enter(target Zone, rng *rand.Rand) {
	*s = SetupZone(*s, target, rng)
}

// Update advances the session by one tick and returns what happened.
// Within a tick, key presses are handled before movement, movement before
// pickups and interaction, and those before zone transitions.
func (s *State) Update(in core.InputFrame, rng *rand.Rand) []core.Event {
	s.Tick++

	switch s.Zone {
	case ZoneIntro:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionInteract) || in.Elapsed >= IntroDuration {
			s.enter(ZoneScarcity, rng)
		}

	case ZoneScarcity:
		if s.ChoiceActive {
			if c := choiceFromInput(in); c != ChoiceNone && s.ResolveChoice(c) {
				s.say("You feel a strange force pulling you into a mysterious maze...", MessageZone)
				s.enter(ZoneMaze, rng)
			}
			break
		}
		s.move(in)
		s.collectGem()

	case ZoneMaze:
		s.move(in)
		s.checkExits(rng)

	case ZoneRiverbank:
		s.move(in)
		s.collectGem()
		if in.Has(core.ActionInteract) {
			if kind, ok := s.NearbyNPC(); ok {
				s.HelpNPC(kind)
			}
		}
		s.ensureEnlightenment()
		s.checkVictory(rng)

	case ZoneVictory:
		// Waiting for restart or quit.
	}

	s.Messages.Tick()
	return s.drainEvents()
}

// choiceFromInput maps the number keys to a choice.
func choiceFromInput(in core.InputFrame) Choice {
	switch {
	case in.Has(core.ActionChoice1):
		return ChoiceElder
	case in.Has(core.ActionChoice2):
		return ChoiceChild
	case in.Has(core.ActionChoice3):
		return ChoiceBoth
	case in.Has(core.ActionChoice4):
		return ChoiceNeither
	default:
		return ChoiceNone
	}
}

// move applies held movement keys to the player.
func (s *State) move(in core.InputFrame) {
	dx, dy := in.Axis()
	s.Player.Move(dx, dy, s.Layout.Walls, Bounds)
}

// checkExits handles the player touching a maze exit.
func (s *State) checkExits(rng *rand.Rand) {
	hitbox := s.Player.Rect()
	for i, exit := range s.Layout.Exits {
		if !hitbox.Intersects(exit) {
			continue
		}
		if i == s.Layout.CorrectExit {
			s.say("You found the path to the riverbank!", MessageZone)
			s.enter(ZoneRiverbank, rng)
			return
		}
		s.repel(i, exit)
		s.say("This isn't the right way. Try another exit!", MessageLong)
		s.emit(core.EventWrongExit, ExitName(i))
		return
	}
}

// repel throws the player back from a wrong exit, away from the screen edge.
func (s *State) repel(dir int, exit core.RectF) {
	r := s.Player.Rect()
	axis, delta := core.AxisY, -1.0
	switch dir {
	case ExitNorth:
		r.Y = exit.Bottom() + pushBack
		delta = 1
	case ExitEast:
		r.X = exit.X - r.W - pushBack
		axis = core.AxisX
	case ExitSouth:
		r.Y = exit.Y - r.H - pushBack
	case ExitWest:
		r.X = exit.Right() + pushBack
		axis, delta = core.AxisX, 1
	}
	r.X = core.ClampF(r.X, Bounds.X, Bounds.Right()-r.W)
	r.Y = core.ClampF(r.Y, Bounds.Y, Bounds.Bottom()-r.H)

	// Landing on a wall piece pulls the player back toward the exit instead.
	r = core.ResolveAxis(r, s.Layout.Walls, axis, delta)
	s.Player.X, s.Player.Y = r.X, r.Y
}

// checkVictory ends the game when the player reaches enlightenment with both
// NPCs alive and helped. A dead NPC earns one rebuke per step onto the trigger.
func (s *State) checkVictory(rng *rand.Rand) {
	inside := s.HasEnlightenment() && s.Player.Rect().Intersects(s.Enlightenment)
	entered := inside && !s.onTrigger
	s.onTrigger = inside
	if !inside {
		return
	}
	switch {
	case s.AllLivingHelped() && s.BothAlive():
		s.enter(ZoneVictory, rng)
		s.emit(core.EventVictory, s.Choice.String())
	case !s.BothAlive() && entered:
		s.say("You must revive both NPCs to achieve enlightenment!", MessageLong)
		s.emit(core.EventVictoryBlocked, "")
	}
}
