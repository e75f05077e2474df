// Package world holds the simulation of Echoes of Humanity: the zone state
// machine, the entities that live in it and the rules that let them interact.
// It has no knowledge of terminals or timing beyond the ticks it is handed.
package world

import (
	"math"

	"github.com/vovakirdan/echoes/internal/core"
)

// World dimensions in world units.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TileSize     = 32
)

// Entity sizes.
const (
	PlayerSize = TileSize
	NPCSize    = TileSize
	GemSize    = 24
)

// Movement tuning.
const (
	BaseSpeed   = 0.5
	SpeedPerGem = 0.5
)

// diagonalScale keeps diagonal movement at the same speed as straight movement.
var diagonalScale = 1 / math.Sqrt2

// Bounds is the playable area every entity is clamped to.
var Bounds = core.NewRectF(0, 0, ScreenWidth, ScreenHeight)

// Player is the character controlled by the user.
type Player struct {
	X, Y float64
	Gems int // Gems carried
}

// NewPlayer creates a player with no gems at the given top-left position.
func NewPlayer(x, y float64) Player {
	return Player{X: x, Y: y}
}

// Rect returns the player hitbox.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, PlayerSize, PlayerSize)
}

// Speed returns units moved per tick along one axis. Carrying gems makes the
// player faster.
func (p Player) Speed() float64 {
	return BaseSpeed + SpeedPerGem*float64(p.Gems)
}

// Move applies one tick of movement in the direction (dx, dy), each in [-1, 1].
// The horizontal step is resolved before the vertical one so the player slides
// along walls on diagonal contact.
func (p *Player) Move(dx, dy float64, walls []core.RectF, bounds core.RectF) {
	if dx == 0 && dy == 0 {
		return
	}

	speed := p.Speed()
	dx *= speed
	dy *= speed
	if dx != 0 && dy != 0 {
		dx *= diagonalScale
		dy *= diagonalScale
	}

	r := p.Rect()
	if dx != 0 {
		r.X = core.ClampF(r.X+dx, bounds.X, bounds.Right()-r.W)
		r = core.ResolveAxis(r, walls, core.AxisX, dx)
	}
	if dy != 0 {
		r.Y = core.ClampF(r.Y+dy, bounds.Y, bounds.Bottom()-r.H)
		r = core.ResolveAxis(r, walls, core.AxisY, dy)
	}
	p.X, p.Y = r.X, r.Y
}

// Collect picks up the first uncollected gem the player overlaps.
// At most one gem is collected per call.
func (p *Player) Collect(gems []Gem) (int, bool) {
	hitbox := p.Rect()
	for i := range gems {
		if gems[i].Collected || !hitbox.Intersects(gems[i].Rect()) {
			continue
		}
		gems[i].Collected = true
		p.Gems++
		return i, true
	}
	return -1, false
}

// NPCKind identifies one of the two characters the player can help.
// The kind doubles as the NPC's index in State.NPCs.
type NPCKind int

const (
	NPCElder NPCKind = iota
	NPCChild
)

// String returns the lowercase name used in messages.
func (k NPCKind) String() string {
	switch k {
	case NPCElder:
		return "elder"
	case NPCChild:
		return "child"
	default:
		return "stranger"
	}
}

// Gem requirements.
const (
	GemsToHelp   = 4
	GemsToRevive = 5
)

// NPC is a character that needs gems to survive.
type NPC struct {
	X, Y         float64
	Kind         NPCKind
	NeedsHelp    bool
	Helped       bool
	Dead         bool
	GemsGiven    int
	GemsRequired int
}

// NewNPC creates a living NPC that still needs help.
func NewNPC(kind NPCKind, x, y float64) NPC {
	return NPC{
		X:            x,
		Y:            y,
		Kind:         kind,
		NeedsHelp:    true,
		GemsRequired: GemsToHelp,
	}
}

// Rect returns the NPC hitbox.
func (n NPC) Rect() core.RectF {
	return core.NewRectF(n.X, n.Y, NPCSize, NPCSize)
}

// Remaining returns how many more gems the NPC needs.
func (n NPC) Remaining() int {
	return core.Max(n.GemsRequired-n.GemsGiven, 0)
}

// markHelped sets the NPC to the helped state.
func (n *NPC) markHelped() {
	n.Helped = true
	n.Dead = false
	n.NeedsHelp = false
}

// markDead sets the NPC to the dead state.
func (n *NPC) markDead() {
	n.Dead = true
	n.Helped = false
	n.NeedsHelp = false
}

// Gem is a collectible that makes the player faster and can be given to NPCs.
type Gem struct {
	X, Y      float64
	Collected bool
}

// Rect returns the gem hitbox.
func (g Gem) Rect() core.RectF {
	return core.NewRectF(g.X, g.Y, GemSize, GemSize)
}

// CollectedCount returns how many gems in the slice have been collected.
func CollectedCount(gems []Gem) int {
	n := 0
	for _, g := range gems {
		if g.Collected {
			n++
		}
	}
	return n
}
