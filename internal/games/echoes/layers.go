package echoes

import (
	"fmt"
	"math"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/vovakirdan/echoes/internal/core"
	"github.com/vovakirdan/echoes/internal/games/echoes/world"
)

// Terminal rows reserved around the playfield.
const (
	hudRows     = 1
	messageRows = 2
)

// viewport maps logical world coordinates onto a block of screen cells.
type viewport struct {
	x, y, w, h int
}

// playfield returns the viewport left between the HUD and the message bar.
func playfield(screenW, screenH int) viewport {
	return viewport{x: 0, y: hudRows, w: screenW, h: screenH - hudRows - messageRows}
}

// cellRect converts a world rectangle to the cells it touches. Anything with
// a non-zero size covers at least one cell.
func (v viewport) cellRect(r core.RectF) core.Rect {
	sx := float64(v.w) / world.ScreenWidth
	sy := float64(v.h) / world.ScreenHeight

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.Rect{X: v.x + x0, Y: v.y + y0, W: x1 - x0, H: y1 - y0}
}

// clip trims r to the viewport.
func (v viewport) clip(r core.Rect) core.Rect {
	x0 := core.Max(r.X, v.x)
	y0 := core.Max(r.Y, v.y)
	x1 := core.Min(r.Right(), v.x+v.w)
	y1 := core.Min(r.Bottom(), v.y+v.h)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// LayerCache keeps rasterised static zone layers so a frame only has to draw
// what moves. It is safe for concurrent use by many sessions.
type LayerCache struct {
	cache *ristretto.Cache[string, []core.Cell]
}

// NewLayerCache creates a cache holding at most maxCost cells.
func NewLayerCache(maxCost int64) (*LayerCache, error) {
	cache, err := ristretto.NewCache[string, []core.Cell](&ristretto.Config[string, []core.Cell]{
		NumCounters: 10000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("echoes: cannot create layer cache: %w", err)
	}
	return &LayerCache{cache: cache}, nil
}

// Close releases the cache.
func (c *LayerCache) Close() {
	if c != nil {
		c.cache.Close()
	}
}

// Layer returns the static layer of zone for a screen of w by h cells.
// The returned slice is shared and must not be modified. A nil cache
// rasterises on every call.
func (c *LayerCache) Layer(zone world.Zone, w, h int) []core.Cell {
	if c == nil {
		return rasterize(zone, w, h)
	}

	key := layerKey(zone, w, h)
	if cells, ok := c.cache.Get(key); ok {
		return cells
	}

	cells := rasterize(zone, w, h)
	c.cache.Set(key, cells, int64(len(cells)))
	c.cache.Wait()
	return cells
}

func layerKey(zone world.Zone, w, h int) string {
	return fmt.Sprintf("%s|%dx%d", zone, w, h)
}

// wallColor is the colour of a zone's walls.
func wallColor(zone world.Zone) core.Color {
	switch zone {
	case world.ZoneScarcity:
		return core.ColorGray
	case world.ZoneMaze:
		return core.ColorWhite
	case world.ZoneRiverbank:
		return core.ColorDarkGray
	default:
		return core.ColorDefault
	}
}

// rasterize draws the parts of a zone that never move. Cells left at rune 0
// are transparent.
func rasterize(zone world.Zone, w, h int) []core.Cell {
	layer := make([]core.Cell, w*h)
	layout := world.LayoutFor(zone)
	vp := playfield(w, h)

	fill := func(rects []core.RectF, r rune, c core.Color) {
		cell := core.Cell{Rune: r, Color: c}
		for _, rf := range rects {
			cr := vp.clip(vp.cellRect(rf))
			for y := cr.Y; y < cr.Bottom(); y++ {
				for x := cr.X; x < cr.Right(); x++ {
					layer[y*w+x] = cell
				}
			}
		}
	}

	fill(layout.River, '≈', core.ColorDeepBlue)
	fill(layout.Rocks, 'o', core.ColorGray)
	if !layout.Goal.Empty() {
		fill([]core.RectF{layout.Goal}, '▒', core.ColorBrightGreen)
	}
	fill(layout.Walls, '█', wallColor(zone))
	fill(layout.Platforms, '=', core.ColorBrown)
	// Every exit looks the same; finding the right one is the puzzle.
	fill(layout.Exits, '░', core.ColorWhite)

	return layer
}

// RenderLayout draws only the static layout of zone, with its title in the
// HUD row. Zones without a layout draw just the title. layers may be nil for
// one-off drawing.
func RenderLayout(dst *core.Screen, zone world.Zone, layers *LayerCache) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight), core.ColorGray)
		return
	}
	dst.Blit(layers.Layer(zone, w, h))
	dst.DrawTextColor(1, 0, zone.Title(), core.ColorBrightWhite)
}
