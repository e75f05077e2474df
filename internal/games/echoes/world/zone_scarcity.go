package world

import (
	"math/rand"

	"github.com/vovakirdan/echoes/internal/core"
)

// Zone 1 geometry.
const (
	scarcityBorder     = 5
	scarcityWallWidth  = 50
	scarcityWallTop    = 75
	scarcityWallLength = ScreenHeight - 150
	scarcityGap        = 150
)

// ScarcityLayout builds zone 1: a bordered room split by three vertical walls,
// the middle one with a gap.
func ScarcityLayout() Layout {
	half := (scarcityWallLength - scarcityGap) / 2
	left := ScreenWidth/4 - scarcityWallWidth/2
	mid := ScreenWidth/2 - scarcityWallWidth/2
	right := 3*ScreenWidth/4 - scarcityWallWidth/2

	walls := borderWalls(scarcityBorder)
	walls = append(walls,
		core.NewRectF(float64(left), scarcityWallTop, scarcityWallWidth, scarcityWallLength),
		core.NewRectF(float64(mid), scarcityWallTop, scarcityWallWidth, float64(half)),
		core.NewRectF(float64(mid), float64(scarcityWallTop+half+scarcityGap), scarcityWallWidth, float64(half)),
		core.NewRectF(float64(right), scarcityWallTop, scarcityWallWidth, scarcityWallLength),
	)
	return Layout{Walls: walls}
}

// borderWalls returns top, bottom, left and right walls of the given thickness.
func borderWalls(thickness float64) []core.RectF {
	return []core.RectF{
		core.NewRectF(0, 0, ScreenWidth, thickness),
		core.NewRectF(0, ScreenHeight-thickness, ScreenWidth, thickness),
		core.NewRectF(0, 0, thickness, ScreenHeight),
		core.NewRectF(ScreenWidth-thickness, 0, thickness, ScreenHeight),
	}
}

// scarcityGemSpots are the preferred gem positions in zone 1.
var scarcityGemSpots = [][2]float64{
	{150, 150},
	{ScreenWidth/2 - 15, ScreenHeight / 2},
	{150, ScreenHeight - 200},
}

// ScarcityGems places the three zone 1 gems.
func ScarcityGems(walls []core.RectF, rng *rand.Rand) []Gem {
	gems := make([]Gem, 0, len(scarcityGemSpots))
	for _, spot := range scarcityGemSpots {
		x, y := placeNear(spot[0], spot[1], GemSize, walls, rng)
		gems = append(gems, Gem{X: x, Y: y})
	}
	return gems
}

// ScarcityNPCs creates the elder left of centre and the child right of centre,
// nudged off any wall they would overlap.
func ScarcityNPCs(walls []core.RectF, rng *rand.Rand) []NPC {
	ex, ey := placeNear(ScreenWidth/4, ScreenHeight/2, NPCSize, walls, rng)
	cx, cy := placeNear(3*ScreenWidth/4, ScreenHeight/2, NPCSize, walls, rng)
	return []NPC{
		NewNPC(NPCElder, ex, ey),
		NewNPC(NPCChild, cx, cy),
	}
}
