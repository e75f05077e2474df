package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/echoes/internal/core"
)

// Placement search tuning.
const (
	placeRadiusStart = 20
	placeRadiusEnd   = 180
	placeRadiusStep  = 20
	placeInset       = 20

	spawnRadiusStart = 10
	spawnRadiusEnd   = 190
	spawnRadiusStep  = 10

	compassStep    = 45
	randomAttempts = 50
	randomMargin   = 50
)

// offset is an integer displacement from a preferred position.
type offset struct {
	dx, dy float64
}

// spiral lists displacements in eight compass directions at increasing radius.
// Components are truncated toward zero so positions stay on whole units.
func spiral(start, end, step int) []offset {
	var out []offset
	for r := start; r <= end; r += step {
		for deg := 0; deg < 360; deg += compassStep {
			rad := float64(deg) * math.Pi / 180
			out = append(out, offset{
				dx: float64(int(float64(r) * math.Cos(rad))),
				dy: float64(int(float64(r) * math.Sin(rad))),
			})
		}
	}
	return out
}

var (
	placeSpiral = spiral(placeRadiusStart, placeRadiusEnd, placeRadiusStep)
	spawnSpiral = spiral(spawnRadiusStart, spawnRadiusEnd, spawnRadiusStep)
)

// isFree reports whether r overlaps none of the walls.
func isFree(r core.RectF, walls []core.RectF) bool {
	return !r.IntersectsAny(walls)
}

// placeNear finds a wall-free spot for a square of the given size, preferring
// (x, y). It searches outward in a spiral, then falls back to random placement.
func placeNear(x, y, size float64, walls []core.RectF, rng *rand.Rand) (float64, float64) {
	if isFree(core.NewRectF(x, y, size, size), walls) {
		return x, y
	}

	for _, o := range placeSpiral {
		nx := core.ClampF(x+o.dx, placeInset, ScreenWidth-placeInset-size)
		ny := core.ClampF(y+o.dy, placeInset, ScreenHeight-placeInset-size)
		if isFree(core.NewRectF(nx, ny, size, size), walls) {
			return nx, ny
		}
	}
	return placeRandom(size, walls, rng)
}

// placeRandom samples positions inside the screen margins until one is free.
// When every attempt collides the last sample is used anyway.
func placeRandom(size float64, walls []core.RectF, rng *rand.Rand) (float64, float64) {
	lo := randomMargin
	hiX := ScreenWidth - randomMargin - int(size)
	hiY := ScreenHeight - randomMargin - int(size)

	var x, y float64
	for range randomAttempts {
		x = float64(lo + rng.Intn(hiX-lo+1))
		y = float64(lo + rng.Intn(hiY-lo+1))
		if isFree(core.NewRectF(x, y, size, size), walls) {
			return x, y
		}
	}
	return x, y
}

// spawnPlayer returns a wall-free top-left position for the player. start is
// tried first; the spiral search is centred on (ox, oy).
func spawnPlayer(start core.RectF, ox, oy float64, walls []core.RectF, rng *rand.Rand) (float64, float64) {
	if isFree(start, walls) {
		return start.X, start.Y
	}

	for _, o := range spawnSpiral {
		nx := core.ClampF(ox+o.dx, 0, ScreenWidth-PlayerSize)
		ny := core.ClampF(oy+o.dy, 0, ScreenHeight-PlayerSize)
		if isFree(core.NewRectF(nx, ny, PlayerSize, PlayerSize), walls) {
			return nx, ny
		}
	}
	return placeRandom(PlayerSize, walls, rng)
}
