package world

import "github.com/vovakirdan/echoes/internal/core"

// Zone is a stage of the adventure. Zones only ever advance in declaration order.
type Zone int

const (
	ZoneIntro Zone = iota
	ZoneScarcity
	ZoneMaze
	ZoneRiverbank
	ZoneVictory
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneIntro:
		return "Intro"
	case ZoneScarcity:
		return "Scarcity"
	case ZoneMaze:
		return "Maze"
	case ZoneRiverbank:
		return "Riverbank"
	case ZoneVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Title returns the heading shown in the HUD.
func (z Zone) Title() string {
	switch z {
	case ZoneScarcity:
		return "Zone 1: Scarcity"
	case ZoneMaze:
		return "Zone 2: The Maze"
	case ZoneRiverbank:
		return "Zone 3: Riverbank"
	default:
		return z.String()
	}
}

// ParseZone maps a zone name (case-sensitive, as returned by String) to a Zone.
func ParseZone(name string) (Zone, bool) {
	for z := ZoneIntro; z <= ZoneVictory; z++ {
		if z.String() == name {
			return z, true
		}
	}
	return ZoneIntro, false
}

// Exit directions, in the order exits are stored in Layout.Exits.
const (
	ExitNorth = iota
	ExitEast
	ExitSouth
	ExitWest
)

// exitNames is indexed by exit direction.
var exitNames = [...]string{"north", "east", "south", "west"}

// ExitName returns the compass name of an exit index.
func ExitName(i int) string {
	if i < 0 || i >= len(exitNames) {
		return "unknown"
	}
	return exitNames[i]
}

// Layout is the static geometry of a zone. Only Walls collide; everything
// else is scenery or a trigger.
type Layout struct {
	Walls       []core.RectF
	Exits       []core.RectF // Maze only, indexed by exit direction
	CorrectExit int
	River       []core.RectF
	Rocks       []core.RectF
	Platforms   []core.RectF // Also present in Walls
	Goal        core.RectF   // Empty when the zone has no goal
}

// clone returns a deep copy of the layout.
func (l Layout) clone() Layout {
	out := l
	out.Walls = cloneRects(l.Walls)
	out.Exits = cloneRects(l.Exits)
	out.River = cloneRects(l.River)
	out.Rocks = cloneRects(l.Rocks)
	out.Platforms = cloneRects(l.Platforms)
	return out
}

func cloneRects(rs []core.RectF) []core.RectF {
	if rs == nil {
		return nil
	}
	out := make([]core.RectF, len(rs))
	copy(out, rs)
	return out
}

// LayoutFor returns the static layout of a zone. Intro and Victory have none.
func LayoutFor(z Zone) Layout {
	switch z {
	case ZoneScarcity:
		return ScarcityLayout()
	case ZoneMaze:
		return MazeLayout()
	case ZoneRiverbank:
		return RiverbankLayout()
	case ZoneIntro, ZoneVictory:
		return Layout{}
	default:
		return Layout{}
	}
}
