package fortchess

// Attackers march toward the fort, the defender marches away from it.
var (
	attackerForward = map[Quadrant]Coord{Q1: {1, 0}, Q2: {0, -1}, Q3: {-1, 0}}
	defenderForward = map[Quadrant]Coord{Q1: {-1, 0}, Q2: {0, 1}, Q3: {1, 0}}
)

// pawnForward picks the direction from the attacker's home arm, or from
// the arm the defender's pawn currently stands in.
func pawnForward(p *Player, from Coord) (Coord, bool) {
	if !p.Defender {
		d, ok := attackerForward[p.Quadrant]
		return d, ok
	}
	q, err := QuadrantOf(from.X, from.Y)
	if err != nil {
		return Coord{}, false
	}
	d, ok := defenderForward[q]
	return d, ok
}

func genPawnMoves(v view, from Coord, out Destinations) {
	dir, ok := pawnForward(v.mover, from)
	if !ok {
		return
	}

	// one step, never onto a piece
	to := from.Add(dir)
	if InBoardBounds(to.X, to.Y) && !v.occupied(to) {
		out.add(to)
	}

	// diagonal captures need a target
	side := Coord{X: dir.Y, Y: dir.X}
	for _, s := range [2]int{1, -1} {
		c := Coord{X: to.X + s*side.X, Y: to.Y + s*side.Y}
		if v.occupied(c) && !v.own(c) {
			out.add(c)
		}
	}
}
