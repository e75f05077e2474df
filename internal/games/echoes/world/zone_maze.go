package world

import "github.com/vovakirdan/echoes/internal/core"

// Zone 2 geometry.
const (
	mazeCells     = 4
	mazeCell      = ScreenHeight / (mazeCells + 1) // 120
	mazeMarginX   = (ScreenWidth - mazeCell*mazeCells) / 2
	mazeMarginY   = (ScreenHeight - mazeCell*mazeCells) / 2
	mazeThickness = 15
	mazeSpan      = mazeCell * mazeCells

	exitSize      = 60
	exitDepth     = 5
	exitClearance = 100
)

// MazeLayout builds zone 2: a 4x4 grid with four exits, only the north one
// leading on. Every exit has a clearance corridor from the screen edge through
// the frame so it can be reached; wall pieces inside a corridor are cut away.
func MazeLayout() Layout {
	const (
		cx = ScreenWidth / 2
		cy = ScreenHeight / 2
	)

	exits := []core.RectF{
		core.NewRectF(cx-exitSize/2, 0, exitSize, exitDepth),
		core.NewRectF(ScreenWidth-exitDepth, cy-exitSize/2, exitDepth, exitSize),
		core.NewRectF(cx-exitSize/2, ScreenHeight-exitDepth, exitSize, exitDepth),
		core.NewRectF(0, cy-exitSize/2, exitDepth, exitSize),
	}

	corridors := []core.RectF{
		core.NewRectF(cx-exitClearance/2, 0, exitClearance, mazeMarginY+mazeThickness+5),
		core.NewRectF(ScreenWidth-mazeMarginX-mazeThickness-5, cy-exitClearance/2, mazeMarginX+mazeThickness+5, exitClearance),
		core.NewRectF(cx-exitClearance/2, ScreenHeight-mazeMarginY-mazeThickness-5, exitClearance, mazeMarginY+mazeThickness+5),
		core.NewRectF(0, cy-exitClearance/2, mazeMarginX+mazeThickness+5, exitClearance),
	}

	grid := []core.RectF{
		// Frame and centre cross
		mazeWall(0, 0, mazeThickness, mazeSpan),
		mazeWall(2*mazeCell, 0, mazeThickness, mazeSpan),
		mazeWall(4*mazeCell, 0, mazeThickness, mazeSpan),
		mazeWall(0, 0, mazeSpan, mazeThickness),
		mazeWall(0, 2*mazeCell, mazeSpan, mazeThickness),
		mazeWall(0, 4*mazeCell, mazeSpan, mazeThickness),

		// Interior segments
		mazeWall(mazeCell, mazeCell, mazeCell, mazeThickness),
		mazeWall(mazeCell, mazeCell, mazeThickness, mazeCell),
		mazeWall(3*mazeCell, mazeCell, mazeThickness, mazeCell),
		mazeWall(mazeCell, 3*mazeCell, mazeCell, mazeThickness),
	}

	walls := grid
	for _, corridor := range corridors {
		var kept []core.RectF
		for _, w := range walls {
			kept = append(kept, w.Subtract(corridor)...)
		}
		walls = kept
	}

	return Layout{
		Walls:       walls,
		Exits:       exits,
		CorrectExit: ExitNorth,
	}
}

// mazeWall returns a wall positioned relative to the maze's top-left corner.
func mazeWall(x, y, w, h float64) core.RectF {
	return core.NewRectF(mazeMarginX+x, mazeMarginY+y, w, h)
}

// MazeSpawn is where the player is placed on entering the maze: centred on screen.
func MazeSpawn() core.RectF {
	return core.NewRectF(ScreenWidth/2-PlayerSize/2, ScreenHeight/2-PlayerSize/2, PlayerSize, PlayerSize)
}
