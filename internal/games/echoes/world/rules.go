package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/echoes/internal/core"
)

// Zone 1 quota that triggers the choice.
const ScarcityQuota = 3

// InteractRange is the largest centre distance, per axis, at which the player
// can reach an NPC.
const InteractRange = 50

// collectGem picks up at most one gem and, in zone 1, offers the choice once
// the quota is reached.
func (s *State) collectGem() {
	if _, ok := s.Player.Collect(s.Gems); !ok {
		return
	}
	s.say(fmt.Sprintf("Collected a magic gem! (%d/%d)", s.Player.Gems, ScarcityQuota), MessageShort)
	s.emit(core.EventGemCollected, fmt.Sprintf("%s gems=%d", s.Zone, s.Player.Gems))

	if s.Zone == ZoneScarcity && !s.ChoiceActive && s.Choice == ChoiceNone &&
		CollectedCount(s.Gems) >= ScarcityQuota {
		s.ChoiceActive = true
		s.emit(core.EventChoiceOffered, "")
	}
}

// NearbyNPC returns the first NPC, in identity order, within reach of the player.
func (s State) NearbyNPC() (NPCKind, bool) {
	px, py := s.Player.Rect().Center()
	for i, n := range s.NPCs {
		nx, ny := n.Rect().Center()
		if math.Abs(px-nx) < InteractRange && math.Abs(py-ny) < InteractRange {
			return NPCKind(i), true
		}
	}
	return 0, false
}

// HelpNPC gives the NPC a gem, or revives it if it is dead. It only works in
// the riverbank. A refused attempt queues an explanation and changes nothing.
func (s *State) HelpNPC(kind NPCKind) bool {
	if s.Zone != ZoneRiverbank {
		return false
	}
	npc, ok := s.NPC(kind)
	if !ok {
		return false
	}
	name := npc.Kind.String()

	switch {
	case npc.Dead:
		if s.Player.Gems < GemsToRevive {
			s.reject(kind, fmt.Sprintf("You need %d gems to revive the %s.", GemsToRevive, name))
			return false
		}
		s.Player.Gems -= GemsToRevive
		npc.markHelped()
		npc.GemsGiven = GemsToRevive
		npc.GemsRequired = GemsToRevive
		s.RevivedNPC = true
		s.say(fmt.Sprintf("You've fully revived and restored the %s to full health with %d gems!", name, GemsToRevive), MessageLong)
		s.emit(core.EventNPCRevived, name)

	case npc.Helped:
		s.reject(kind, fmt.Sprintf("The %s has already received enough gems.", name))
		return false

	case s.Player.Gems <= 0:
		s.reject(kind, "You don't have any gems to give!")
		return false

	default:
		s.Player.Gems--
		npc.GemsGiven++
		s.emit(core.EventGemGiven, name)
		if npc.GemsGiven >= npc.GemsRequired {
			npc.markHelped()
			s.say(fmt.Sprintf("The %s has received all %d gems! You have %d gems left.", name, npc.GemsRequired, s.Player.Gems), MessageLong)
			s.emit(core.EventNPCHelped, name)
		} else {
			s.say(fmt.Sprintf("Gave a gem to the %s. %d more needed. You have %d gems left.", name, npc.Remaining(), s.Player.Gems), MessageDefault)
		}
	}

	if s.AllLivingHelped() && !s.HasEnlightenment() {
		s.say("You've helped everyone in need! Find the enlightenment.", MessageZone)
		s.ensureEnlightenment()
	}
	return true
}

// reject queues a refusal message and records it.
func (s *State) reject(kind NPCKind, text string) {
	if s.say(text, MessageDefault) {
		s.emit(core.EventHelpRejected, kind.String()+": "+text)
	}
}

// ensureEnlightenment creates the victory trigger the first time every living
// NPC has been helped. Later calls do nothing.
func (s *State) ensureEnlightenment() {
	if s.HasEnlightenment() || !s.AllLivingHelped() {
		return
	}
	s.Enlightenment = EnlightenmentRect()
	s.say("The path to enlightenment has appeared in the bottom right!", MessageZone)
	s.emit(core.EventEnlightenment, "")
}

// ResolveChoice applies the zone 1 decision. It is accepted once, and only
// while the choice is being offered.
func (s *State) ResolveChoice(c Choice) bool {
	if !s.ChoiceActive || s.Choice != ChoiceNone || len(s.NPCs) < 2 {
		return false
	}

	elder := &s.NPCs[NPCElder]
	child := &s.NPCs[NPCChild]

	switch c {
	case ChoiceElder:
		s.Player.Gems -= 2
		elder.markHelped()
		child.markDead()
		s.say("You gave 2 resources to the elder and kept 1. The child fades away...", MessageShort)
	case ChoiceChild:
		s.Player.Gems -= 2
		child.markHelped()
		elder.markDead()
		s.say("You gave 2 resources to the child and kept 1. The elder fades away...", MessageShort)
	case ChoiceBoth:
		elder.markHelped()
		child.markHelped()
		s.Player.Gems = 0
		s.say("You shared your resources equally. Both NPCs survive with 1.5 resources each, but you have none left...", MessageShort)
	case ChoiceNeither:
		elder.markDead()
		child.markDead()
		s.say(fmt.Sprintf("You kept all %d resources for yourself, but both NPCs fade away...", s.Player.Gems), MessageShort)
	case ChoiceNone:
		return false
	default:
		return false
	}

	s.Choice = c
	s.ChoiceActive = false
	s.emit(core.EventChoiceMade, c.String())
	return true
}
