package world

import (
	"math/rand"

	"github.com/vovakirdan/echoes/internal/core"
)

// Zone 3 geometry.
const (
	riverbankBankW   = 80
	riverbankGems    = 5
	riverbankNPCX    = ScreenWidth - 150
	riverbankElderY  = 300
	riverbankChildY  = 400
	enlightenmentDim = 100
	enlightenmentPad = 50
)

// riverbankPlatforms are the stepping platforms, stored as top-left corners.
var riverbankPlatforms = [][2]float64{
	{50, 100}, {200, 50}, {400, 100}, {300, 200},
	{150, 300}, {350, 350}, {200, 450}, {400, 500},
}

// RiverbankLayout builds zone 3: a walled bank with a winding river, rocks and
// collidable platforms. The river, rocks and goal are scenery.
func RiverbankLayout() Layout {
	walls := []core.RectF{
		core.NewRectF(0, 0, riverbankBankW, ScreenHeight),
		core.NewRectF(0, 0, ScreenWidth, 50),
		core.NewRectF(ScreenWidth-100, 0, 100, ScreenHeight),
		core.NewRectF(0, ScreenHeight-50, ScreenWidth, 50),
	}

	platforms := make([]core.RectF, 0, len(riverbankPlatforms))
	for _, p := range riverbankPlatforms {
		platforms = append(platforms, core.NewRectF(p[0], p[1], 100, 20))
	}
	walls = append(walls, platforms...)

	return Layout{
		Walls:     walls,
		Platforms: platforms,
		River: []core.RectF{
			core.NewRectF(100, -50, 120, 200),
			core.NewRectF(100, 150, 300, 100),
			core.NewRectF(350, 200, 100, 200),
			core.NewRectF(200, 350, 300, 100),
			core.NewRectF(100, 400, 200, 250),
		},
		Rocks: []core.RectF{
			core.NewRectF(150, 300, 30, 30),
			core.NewRectF(300, 150, 40, 40),
			core.NewRectF(250, 400, 35, 35),
			core.NewRectF(400, 300, 45, 45),
			core.NewRectF(180, 500, 30, 30),
		},
		Goal: core.NewRectF(ScreenWidth/2-25, ScreenHeight-100, 50, 50),
	}
}

// RiverbankSpawn is where the player lands in zone 3: flush against the left
// bank, halfway down.
func RiverbankSpawn() core.RectF {
	return core.NewRectF(riverbankBankW, ScreenHeight/2, PlayerSize, PlayerSize)
}

// RiverbankGems scatters five gems at random wall-free positions.
func RiverbankGems(walls []core.RectF, rng *rand.Rand) []Gem {
	gems := make([]Gem, 0, riverbankGems)
	for range riverbankGems {
		x, y := placeRandom(GemSize, walls, rng)
		gems = append(gems, Gem{X: x, Y: y})
	}
	return gems
}

// EnlightenmentRect is the trigger that appears once every living NPC is helped.
func EnlightenmentRect() core.RectF {
	return core.NewRectF(
		ScreenWidth-enlightenmentDim-enlightenmentPad,
		ScreenHeight-enlightenmentDim-enlightenmentPad,
		enlightenmentDim,
		enlightenmentDim,
	)
}

// defaultNPCs creates the pair used when the riverbank is entered without the
// NPCs from zone 1.
func defaultNPCs() []NPC {
	return []NPC{
		NewNPC(NPCElder, riverbankNPCX, riverbankElderY),
		NewNPC(NPCChild, riverbankNPCX, riverbankChildY),
	}
}
