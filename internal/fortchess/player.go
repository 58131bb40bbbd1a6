package fortchess

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

type Player struct {
	Name     string
	Pieces   []Piece // sorted by position, unique positions
	Team     Team
	Defender bool
	Winner   bool
	Quadrant Quadrant // home arm; NoQuad for the defender
	Chosen   int      // meaningful only while the game has Picked set
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: %q has %d characters, want %d-%d", ErrInvalidNameLength, name, n, MinNameLength, MaxNameLength)
	}
	return nil
}

func NewPlayer(name string, team Team, defender bool, active int, q Quadrant) (*Player, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if defender {
		q = NoQuad
	}
	pieces, err := InitialPieces(defender, q, active)
	if err != nil {
		return nil, err
	}
	return &Player{
		Name:     name,
		Pieces:   pieces,
		Team:     team,
		Defender: defender,
		Quadrant: q,
	}, nil
}

func (p *Player) capacity() int {
	if p.Defender {
		return DefenderCapacity
	}
	return AttackerCapacity
}

func (p *Player) sortPieces() {
	slices.SortFunc(p.Pieces, Piece.Compare)
}

// PieceIndexAt finds the piece at (x, y) by binary search.
func (p *Player) PieceIndexAt(x, y int) (int, error) {
	i, ok := slices.BinarySearchFunc(p.Pieces, Coord{X: x, Y: y}, func(pc Piece, c Coord) int {
		return pc.Pos.Compare(c)
	})
	if !ok {
		return -1, fmt.Errorf("%w: (%d, %d)", ErrPieceNotFound, x, y)
	}
	return i, nil
}

func (p *Player) HasPieceAt(x, y int) bool {
	_, err := p.PieceIndexAt(x, y)
	return err == nil
}

// CapturePiece removes and returns the piece at index i.
func (p *Player) CapturePiece(i int) (Piece, error) {
	if i < 0 || i >= p.capacity() || i >= len(p.Pieces) {
		return Piece{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, i, len(p.Pieces))
	}
	pc := p.Pieces[i]
	p.Pieces = slices.Delete(p.Pieces, i, i+1)
	p.sortPieces()
	if p.Chosen > i {
		p.Chosen--
	}
	return pc, nil
}

func (p *Player) Choose(i int) error {
	if i < 0 || i >= len(p.Pieces) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, i, len(p.Pieces))
	}
	p.Chosen = i
	return nil
}

func (p *Player) ChosenPiece() (Piece, error) {
	if p.Chosen < 0 || p.Chosen >= len(p.Pieces) {
		return Piece{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, p.Chosen, len(p.Pieces))
	}
	return p.Pieces[p.Chosen], nil
}

// MoveChosenPiece reports false for a null move. After a real move the
// pieces are re-sorted and Chosen follows the moved piece.
func (p *Player) MoveChosenPiece(x, y int) (bool, error) {
	if p.Chosen < 0 || p.Chosen >= len(p.Pieces) {
		return false, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, p.Chosen, len(p.Pieces))
	}
	pc := &p.Pieces[p.Chosen]
	if pc.Pos == (Coord{X: x, Y: y}) {
		return false, nil
	}
	if err := pc.UpdatePosition(x, y); err != nil {
		return false, err
	}
	p.sortPieces()
	if i, err := p.PieceIndexAt(x, y); err == nil {
		p.Chosen = i
	}
	return true, nil
}

func (p *Player) SetWinner() {
	p.Winner = true
}

func (p *Player) String() string {
	role := "attacker"
	if p.Defender {
		role = "defender"
	}
	return fmt.Sprintf("%s (%s %s, %d pieces)", p.Name, p.Team, role, len(p.Pieces))
}
