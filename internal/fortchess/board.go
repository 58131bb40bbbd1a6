package fortchess

import (
	"fmt"
	"math"
)

const (
	XMin = -8
	XMax = 8
	YMin = -2
	YMax = 8

	// Breadth is the half-width of the fort around the origin.
	Breadth = 2

	// Camera view, wider than the logical bounds.
	ViewLeft   = -10.0
	ViewRight  = 10.0
	ViewTop    = 10.0
	ViewBottom = -4.0

	MinNameLength = 3
	MaxNameLength = 15

	MinPlayers = 2
	MaxPlayers = 4

	AttackerCapacity = 8
	DefenderCapacity = 8 * (MaxPlayers - 1)

	MinisterReach = 2*Breadth - 1
)

func quadrant1(x, y int) bool {
	return XMin <= x && x < -Breadth && -Breadth <= y && y <= Breadth
}

func quadrant2(x, y int) bool {
	return -Breadth <= x && x <= Breadth && Breadth < y && y <= YMax
}

func quadrant3(x, y int) bool {
	return Breadth < x && x <= XMax && -Breadth <= y && y <= Breadth
}

// QuadrantOf classifies a cell. Fort and off-arm cells return
// ErrPositionNotInQuadrant, which hit-testing callers treat as a miss.
func QuadrantOf(x, y int) (Quadrant, error) {
	switch {
	case quadrant1(x, y):
		return Q1, nil
	case quadrant2(x, y):
		return Q2, nil
	case quadrant3(x, y):
		return Q3, nil
	}
	return NoQuad, fmt.Errorf("%w: (%d, %d)", ErrPositionNotInQuadrant, x, y)
}

func QuadrantFromIndex(i int) (Quadrant, error) {
	switch i {
	case 0:
		return Q1, nil
	case 1:
		return Q2, nil
	case 2:
		return Q3, nil
	}
	return NoQuad, fmt.Errorf("%w: %d", ErrInvalidQuadrantIndex, i)
}

// Contains reports whether (x, y) lies in the arm q.
func (q Quadrant) Contains(x, y int) bool {
	switch q {
	case Q1:
		return quadrant1(x, y)
	case Q2:
		return quadrant2(x, y)
	case Q3:
		return quadrant3(x, y)
	}
	return false
}

func InBoardBounds(x, y int) bool {
	return quadrant1(x, y) || quadrant2(x, y) || quadrant3(x, y)
}

// InLogicalBounds is the rectangle a piece may be constructed in. It
// includes the fort.
func InLogicalBounds(x, y int) bool {
	return x >= XMin && x <= XMax && y >= YMin && y <= YMax
}

func InFort(x, y int) bool {
	return -Breadth <= x && x <= Breadth && -Breadth <= y && y <= Breadth
}

// ScreenToBoard maps a cursor position in window pixels (origin top-left,
// y down) to the nearest logical cell.
func ScreenToBoard(cursorX, cursorY, height, width float64) (int, int) {
	x := ViewLeft + cursorX/width*(ViewRight-ViewLeft)
	y := ViewTop - cursorY/height*(ViewTop-ViewBottom)
	return int(math.Round(x)), int(math.Round(y))
}

// BoardToScreen returns the pixel position of a cell centre.
func BoardToScreen(x, y int, height, width float64) (float64, float64) {
	cx := (float64(x) - ViewLeft) / (ViewRight - ViewLeft) * width
	cy := (ViewTop - float64(y)) / (ViewTop - ViewBottom) * height
	return cx, cy
}
