package fortchess

import "math"

const (
	knightRadius = 2.0
	knightPoints = 12
)

// knightCandidates are the twelve 30° points on a radius-2 circle, rounded
// to cells, minus the four axis points. That leaves the eight classic
// knight jumps.
func knightCandidates(from Coord) []Coord {
	out := make([]Coord, 0, knightPoints-4)
	for i := 0; i < knightPoints; i++ {
		theta := float64(i) * 2 * math.Pi / knightPoints
		dx := int(math.Round(knightRadius * math.Cos(theta)))
		dy := int(math.Round(knightRadius * math.Sin(theta)))
		if dx == 0 || dy == 0 {
			continue
		}
		out = append(out, Coord{X: from.X + dx, Y: from.Y + dy})
	}
	return out
}

func genKnightMoves(v view, from Coord, out Destinations) {
	q, err := QuadrantOf(from.X, from.Y)
	if err != nil {
		return
	}
	for _, c := range knightCandidates(from) {
		if v.own(c) {
			continue
		}
		if !q.Contains(c.X, c.Y) {
			continue
		}
		out.add(c)
	}
}
