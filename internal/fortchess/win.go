package fortchess

import "fortchess/internal/dice"

// WinRollFace is the face that wins the special roll outright.
const WinRollFace = dice.Faces

// innerEdge is the arm row next to the fort that attackers race for.
var innerEdge = map[Quadrant]func(c Coord) bool{
	Q1: func(c Coord) bool { return c.X == -Breadth-1 },
	Q2: func(c Coord) bool { return c.Y == Breadth+1 },
	Q3: func(c Coord) bool { return c.X == Breadth+1 },
}

// OppositeSide reports whether a piece of p standing at c wins the game.
// Attackers must reach the inner edge of their own arm; the defender any
// of the three outer edges.
func OppositeSide(p *Player, c Coord) bool {
	if p.Defender {
		return c.X == XMin || c.X == XMax || c.Y == YMax
	}
	if !p.Quadrant.Contains(c.X, c.Y) {
		return false
	}
	edge, ok := innerEdge[p.Quadrant]
	return ok && edge(c)
}
