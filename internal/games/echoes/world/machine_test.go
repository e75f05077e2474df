package world

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/echoes/internal/core"
)

// press builds an input frame with the given actions held.
func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// hasEvent reports whether events contains one of the given kind.
func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewStateStartsInIntro(t *testing.T) {
	s := NewState()
	assert.Equal(t, ZoneIntro, s.Zone)
	assert.Empty(t, s.NPCs)
	assert.Equal(t, ChoiceNone, s.Choice)
}

func TestIntroTransitions(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputFrame
		expected Zone
	}{
		{"waits", press(), ZoneIntro},
		{"confirm skips", press(core.ActionConfirm), ZoneScarcity},
		{"interact skips", press(core.ActionInteract), ZoneScarcity},
		{"movement does not skip", press(core.ActionLeft), ZoneIntro},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Update(tc.in, rand.New(rand.NewSource(1)))
			assert.Equal(t, tc.expected, s.Zone)
		})
	}
}

func TestIntroTimesOut(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewState()

	in := press()
	in.Elapsed = IntroDuration - time.Millisecond
	s.Update(in, rng)
	assert.Equal(t, ZoneIntro, s.Zone)

	in.Elapsed = IntroDuration
	events := s.Update(in, rng)
	assert.Equal(t, ZoneScarcity, s.Zone)
	assert.True(t, hasEvent(events, core.EventZoneEntered))
}

func TestEnterScarcity(t *testing.T) {
	s := SetupZone(NewState(), ZoneScarcity, rand.New(rand.NewSource(1)))

	assert.Equal(t, ZoneScarcity, s.Zone)
	assert.Len(t, s.Gems, 3)
	require.Len(t, s.NPCs, 2)
	assert.Equal(t, 50.0, s.Player.X)
	assert.Equal(t, 300.0, s.Player.Y)
	assert.Equal(t, "Welcome to Zone 1: Scarcity. Collect magic gems and help the NPCs.", lastMessage(s))
}

// collectAllScarcityGems walks the player onto each zone 1 gem in turn.
func collectAllScarcityGems(t *testing.T, s *State, rng *rand.Rand) []core.Event {
	t.Helper()
	var events []core.Event
	for i := range s.Gems {
		// Overlap the gem without touching any wall
		s.Player.X, s.Player.Y = s.Gems[i].X-8, s.Gems[i].Y-4
		require.False(t, s.Player.Rect().IntersectsAny(s.Layout.Walls))
		events = append(events, s.Update(press(), rng)...)
		require.True(t, s.Gems[i].Collected, "gem %d should be collected", i)
	}
	return events
}

func TestChoiceOfferedAtQuota(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := SetupZone(NewState(), ZoneScarcity, rng)

	events := collectAllScarcityGems(t, &s, rng)

	assert.Equal(t, 3, s.Player.Gems)
	assert.True(t, s.ChoiceActive)
	assert.True(t, hasEvent(events, core.EventChoiceOffered))

	// Movement is paused while the choice is up
	x, y := s.Player.X, s.Player.Y
	s.Update(press(core.ActionRight, core.ActionDown), rng)
	assert.Equal(t, x, s.Player.X)
	assert.Equal(t, y, s.Player.Y)
	assert.Equal(t, ZoneScarcity, s.Zone)
}

func TestChoiceMovesToMazeSameTick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := SetupZone(NewState(), ZoneScarcity, rng)
	collectAllScarcityGems(t, &s, rng)

	events := s.Update(press(core.ActionChoice1), rng)

	assert.Equal(t, ZoneMaze, s.Zone)
	assert.Equal(t, ChoiceElder, s.Choice)
	assert.Equal(t, 1, s.Player.Gems)
	assert.True(t, hasEvent(events, core.EventChoiceMade))
	assert.True(t, hasEvent(events, core.EventZoneEntered))
	assert.Nil(t, s.Gems, "zone 1 gems are discarded")

	// NPCs keep their identity and state while waiting off screen
	require.Len(t, s.NPCs, 2)
	assert.Equal(t, NPCElder, s.NPCs[NPCElder].Kind)
	assert.True(t, s.NPCs[NPCElder].Helped)
	assert.True(t, s.NPCs[NPCChild].Dead)
	assert.Equal(t, float64(offscreen), s.NPCs[NPCElder].X)

	assert.Equal(t, 421.0, s.Player.X)
	assert.Equal(t, 321.0, s.Player.Y)
}

func TestWrongExitsPushBack(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wantX  float64
		wantY  float64
		detail string
	}{
		{"east", 768, 280, 753, 280, "east"},
		{"west", 0, 280, 15, 280, "west"},
		{"south onto a frame piece", 340, 568, 340, 555, "south"},
		{"south clear", 390, 568, 390, 553, "south"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			s := SetupZone(NewState(), ZoneMaze, rng)
			s.Player.X, s.Player.Y = tc.x, tc.y

			events := s.Update(press(), rng)

			assert.Equal(t, ZoneMaze, s.Zone)
			assert.Equal(t, tc.wantX, s.Player.X)
			assert.Equal(t, tc.wantY, s.Player.Y)
			assert.False(t, s.Player.Rect().IntersectsAny(s.Layout.Walls))
			assert.Equal(t, "This isn't the right way. Try another exit!", lastMessage(s))
			require.True(t, hasEvent(events, core.EventWrongExit))
			for _, e := range events {
				if e.Kind == core.EventWrongExit {
					assert.Equal(t, tc.detail, e.Detail)
				}
			}
		})
	}
}

func TestCorrectExitLeadsToRiverbank(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := SetupZone(NewState(), ZoneMaze, rng)
	s.Player.X, s.Player.Y = 380, 5.2

	s.Update(press(core.ActionUp), rng)

	assert.Equal(t, ZoneRiverbank, s.Zone)
	assert.Empty(t, s.Layout.Exits)
	assert.Len(t, s.Gems, 5)
	assert.Equal(t, 80.0, s.Player.X)
	assert.Equal(t, 300.0, s.Player.Y)
	assert.Contains(t, s.Messages.texts(), "You found the path to the riverbank!")
}

func TestRiverbankSynthesisesMissingNPCs(t *testing.T) {
	s := SetupZone(NewState(), ZoneRiverbank, rand.New(rand.NewSource(1)))

	require.Len(t, s.NPCs, 2)
	assert.Equal(t, NPCElder, s.NPCs[0].Kind)
	assert.Equal(t, NPCChild, s.NPCs[1].Kind)
	assert.Equal(t, 650.0, s.NPCs[0].X)
	assert.Equal(t, 300.0, s.NPCs[0].Y)
	assert.Equal(t, 650.0, s.NPCs[1].X)
	assert.Equal(t, 400.0, s.NPCs[1].Y)
}

func TestSetupZoneLeavesPreviousStateAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prev := SetupZone(NewState(), ZoneScarcity, rng)
	prev.NPCs[NPCElder].markHelped()
	prev.NPCs[NPCChild].markDead()
	npcs := append([]NPC(nil), prev.NPCs...)
	gems := append([]Gem(nil), prev.Gems...)
	messages := prev.Messages.texts()

	next := SetupZone(prev, ZoneRiverbank, rng)

	assert.Equal(t, ZoneScarcity, prev.Zone)
	assert.Equal(t, npcs, prev.NPCs)
	assert.Equal(t, gems, prev.Gems)
	assert.Equal(t, messages, prev.Messages.texts())
	assert.Equal(t, 650.0, next.NPCs[NPCElder].X)
	assert.True(t, next.NPCs[NPCChild].Dead, "NPC state carries over")
	assert.False(t, next.NPCs[NPCChild].NeedsHelp)
}

func TestVictoryBlockedWhileAnNPCIsDead(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := riverbankState(t, 0)
	s.NPCs[NPCElder].markHelped()
	s.NPCs[NPCChild].markDead()

	s.Update(press(), rng)
	require.True(t, s.HasEnlightenment(), "every living NPC is helped")

	s.Player.X, s.Player.Y = 660, 460
	events := s.Update(press(), rng)
	assert.Equal(t, ZoneRiverbank, s.Zone)
	assert.True(t, hasEvent(events, core.EventVictoryBlocked))
	assert.Equal(t, "You must revive both NPCs to achieve enlightenment!", lastMessage(s))

	events = s.Update(press(), rng)
	assert.False(t, hasEvent(events, core.EventVictoryBlocked), "standing still does not repeat the rebuke")

	// Revive the child, then try again
	s.Player.Gems = 5
	s.Player.X, s.Player.Y = 640, 390
	events = s.Update(press(core.ActionInteract), rng)
	require.True(t, hasEvent(events, core.EventNPCRevived))
	assert.True(t, s.RevivedNPC)

	s.Player.X, s.Player.Y = 660, 460
	events = s.Update(press(), rng)
	assert.Equal(t, ZoneVictory, s.Zone)
	assert.True(t, hasEvent(events, core.EventVictory))
}

func TestRebukeOncePerStepOntoTrigger(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := riverbankState(t, 0)
	s.NPCs[NPCElder].markHelped()
	s.NPCs[NPCChild].markDead()
	s.Update(press(), rng)
	require.True(t, s.HasEnlightenment())

	countBlocked := func(ticks int) int {
		n := 0
		for range ticks {
			for _, e := range s.Update(press(), rng) {
				if e.Kind == core.EventVictoryBlocked {
					n++
				}
			}
		}
		return n
	}

	// Long enough for the rebuke to expire from the queue several times over.
	s.Player.X, s.Player.Y = 660, 460
	assert.Equal(t, 1, countBlocked(5*MessageLong))
	assert.Equal(t, ZoneRiverbank, s.Zone)

	s.Player.X, s.Player.Y = 300, 300
	assert.Equal(t, 0, countBlocked(1))

	s.Player.X, s.Player.Y = 660, 460
	assert.Equal(t, 1, countBlocked(1), "stepping back on rebukes again")
}

func TestInteractOutsideRangeDoesNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := riverbankState(t, 3)
	s.Player.X, s.Player.Y = 200, 380

	s.Update(press(core.ActionInteract), rng)

	assert.Equal(t, 3, s.Player.Gems)
	for _, n := range s.NPCs {
		assert.Equal(t, 0, n.GemsGiven)
	}
}

func TestEndToEndScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewState()

	s.Update(press(core.ActionConfirm), rng)
	require.Equal(t, ZoneScarcity, s.Zone)
	require.Equal(t, 0, s.Player.Gems)

	collectAllScarcityGems(t, &s, rng)
	require.Equal(t, 3, s.Player.Gems)
	require.True(t, s.ChoiceActive)

	s.Update(press(core.ActionChoice3), rng)
	require.Equal(t, ZoneMaze, s.Zone)
	assert.Equal(t, ChoiceBoth, s.Choice)
	assert.Equal(t, 0, s.Player.Gems)
	for _, n := range s.NPCs {
		assert.True(t, n.Helped)
	}

	s.Player.X, s.Player.Y = s.Layout.Exits[s.Layout.CorrectExit].X, 5.2
	s.Update(press(core.ActionUp), rng)
	require.Equal(t, ZoneRiverbank, s.Zone)
	for _, n := range s.NPCs {
		assert.False(t, n.Dead)
		assert.True(t, n.Helped)
	}

	s.Update(press(), rng)
	require.True(t, s.HasEnlightenment())

	s.Player.X, s.Player.Y = s.Enlightenment.X+10, s.Enlightenment.Y+10
	events := s.Update(press(), rng)
	assert.Equal(t, ZoneVictory, s.Zone)
	assert.True(t, hasEvent(events, core.EventVictory))

	// Victory is terminal
	s.Update(press(core.ActionLeft, core.ActionInteract), rng)
	assert.Equal(t, ZoneVictory, s.Zone)
}

func TestUpdateIsDeterministic(t *testing.T) {
	run := func() State {
		rng := rand.New(rand.NewSource(2024))
		inputRng := rand.New(rand.NewSource(7))
		actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionInteract}

		s := NewState()
		s.Update(press(core.ActionConfirm), rng)
		for range 2000 {
			s.Update(press(actions[inputRng.Intn(len(actions))], actions[inputRng.Intn(len(actions))]), rng)
		}
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a.Zone, b.Zone)
	assert.Equal(t, a.Player, b.Player)
	assert.Equal(t, a.Gems, b.Gems)
	assert.Equal(t, a.Messages.texts(), b.Messages.texts())
}
