package fortchess

import (
	"fmt"
	"slices"
)

type placement struct {
	X, Y int
	Type PieceType
}

// Layouts are written for Q1 and transformed for the other arms.
var attackerLayout = [AttackerCapacity]placement{
	{-8, -1, PieceKnight},
	{-8, 1, PieceKnight},
	{-8, 0, PiecePawn},
	{-7, -2, PiecePawn},
	{-7, -1, PiecePawn},
	{-7, 0, PiecePawn},
	{-7, 1, PiecePawn},
	{-7, 2, PiecePawn},
}

var defenderBlock = [8]placement{
	{-4, -2, PiecePawn},
	{-4, -1, PiecePawn},
	{-4, 1, PiecePawn},
	{-4, 2, PiecePawn},
	{-3, -2, PieceRook},
	{-3, -1, PieceMinister},
	{-3, 1, PieceQueen},
	{-3, 2, PieceKnight},
}

// fromQ1 rotates a Q1 cell onto the arm q: Q2 is a quarter turn, Q3 the
// mirror image.
func fromQ1(q Quadrant, x, y int) (int, int) {
	switch q {
	case Q2:
		return y, -x
	case Q3:
		return -x, y
	}
	return x, y
}

func layoutPieces(q Quadrant, layout []placement) ([]Piece, error) {
	out := make([]Piece, 0, len(layout))
	for _, pl := range layout {
		x, y := fromQ1(q, pl.X, pl.Y)
		pc, err := NewPiece(x, y, pl.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

// InitialPieces returns the sorted starting set for one player. Attackers
// get the fixed layout of their arm. The defender gets one block per
// attacker, in quadrant order, so 8, 16 or 24 pieces.
func InitialPieces(defender bool, q Quadrant, active int) ([]Piece, error) {
	if active > MaxPlayers {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPlayers, active)
	}
	if active < MinPlayers {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPlayers, active)
	}

	var pieces []Piece
	if defender {
		pieces = make([]Piece, 0, len(defenderBlock)*(active-1))
		for i := 0; i < active-1; i++ {
			bq, err := QuadrantFromIndex(i)
			if err != nil {
				return nil, err
			}
			block, err := layoutPieces(bq, defenderBlock[:])
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, block...)
		}
	} else {
		if q == NoQuad {
			return nil, fmt.Errorf("%w: attacker without quadrant", ErrInvalidQuadrantIndex)
		}
		if _, err := QuadrantFromIndex(int(q)); err != nil {
			return nil, err
		}
		var err error
		pieces, err = layoutPieces(q, attackerLayout[:])
		if err != nil {
			return nil, err
		}
	}
	slices.SortFunc(pieces, Piece.Compare)
	return pieces, nil
}
