package fortchess

import "slices"

// Destinations is an unordered set of target cells.
type Destinations map[Coord]struct{}

func (d Destinations) add(c Coord) { d[c] = struct{}{} }

func (d Destinations) Has(c Coord) bool {
	_, ok := d[c]
	return ok
}

func (d Destinations) Len() int { return len(d) }

// Sorted returns the cells in (x, y) order.
func (d Destinations) Sorted() []Coord {
	out := make([]Coord, 0, len(d))
	for c := range d {
		out = append(out, c)
	}
	slices.SortFunc(out, Coord.Compare)
	return out
}

// view is the read-only board seen by one moving player.
type view struct {
	g     *Game
	mover *Player
}

func (v view) occupied(c Coord) bool { return v.g.PieceAt(c.X, c.Y) }
func (v view) own(c Coord) bool      { return v.mover.HasPieceAt(c.X, c.Y) }

func generate(v view, from Coord, pt PieceType) Destinations {
	out := make(Destinations)
	switch pt {
	case PieceRook:
		genRookMoves(v, from, out)
	case PieceMinister:
		genMinisterMoves(v, from, out)
	case PieceQueen:
		genQueenMoves(v, from, out)
	case PieceKnight:
		genKnightMoves(v, from, out)
	case PiecePawn:
		genPawnMoves(v, from, out)
	}
	return out
}

// LegalDestinations lists where a piece of type pt standing at from may go
// for the current player. Cells holding an opposing piece are captures.
// The game is not modified.
func (g *Game) LegalDestinations(from Coord, pt PieceType) Destinations {
	cur := g.Current()
	if cur == nil {
		return make(Destinations)
	}
	return generate(view{g: g, mover: cur}, from, pt)
}

// DestinationsFor is LegalDestinations for an arbitrary player.
func (g *Game) DestinationsFor(p *Player, from Coord, pt PieceType) Destinations {
	return generate(view{g: g, mover: p}, from, pt)
}
