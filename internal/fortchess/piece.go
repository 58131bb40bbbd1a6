package fortchess

import "fmt"

type Piece struct {
	Type PieceType `json:"type"`
	Pos  Coord     `json:"pos"`
}

// NewPiece builds a piece inside the logical rectangle. The fort is
// accepted; quadrant membership is checked by move generation.
func NewPiece(x, y int, pt PieceType) (Piece, error) {
	if !InLogicalBounds(x, y) {
		return Piece{}, fmt.Errorf("%w: (%d, %d)", ErrIllegalPosition, x, y)
	}
	return Piece{Type: pt, Pos: Coord{X: x, Y: y}}, nil
}

func (p *Piece) UpdatePosition(x, y int) error {
	if !InLogicalBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrIllegalPosition, x, y)
	}
	p.Pos = Coord{X: x, Y: y}
	return nil
}

func (p Piece) Compare(o Piece) int {
	return p.Pos.Compare(o.Pos)
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Type, p.Pos.X, p.Pos.Y)
}
