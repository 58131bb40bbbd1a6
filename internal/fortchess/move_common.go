package fortchess

var (
	rookDirs   = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4]Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// trace walks from origin along d for at most limit steps (limit <= 0 means
// unbounded). It stops before an own piece or an off-board cell and
// includes, then stops at, an opposing piece.
func trace(v view, from, d Coord, limit int, out Destinations) {
	c := from.Add(d)
	for step := 1; limit <= 0 || step <= limit; step++ {
		if !InBoardBounds(c.X, c.Y) {
			return
		}
		if v.own(c) {
			return
		}
		out.add(c)
		if v.occupied(c) {
			return
		}
		c = c.Add(d)
	}
}

// Rook: straight lines, any length.
func genRookMoves(v view, from Coord, out Destinations) {
	for _, d := range rookDirs {
		trace(v, from, d, 0, out)
	}
}

// Minister: short diagonal runs that never leave the origin arm.
func genMinisterMoves(v view, from Coord, out Destinations) {
	q, err := QuadrantOf(from.X, from.Y)
	if err != nil {
		return
	}
	raw := make(Destinations)
	for _, d := range bishopDirs {
		trace(v, from, d, MinisterReach, raw)
	}
	for c := range raw {
		if q.Contains(c.X, c.Y) {
			out.add(c)
		}
	}
}

func genQueenMoves(v view, from Coord, out Destinations) {
	genRookMoves(v, from, out)
	genMinisterMoves(v, from, out)
}
