package fortchess

import (
	"fmt"
	"strings"
)

// GameAction is the set of state transitions the input layer drives.
type GameAction interface {
	Hunt() []*Player
	NextPlayer()
	UpdatePosition(x, y int) error
	PieceAt(x, y int) bool
	RemovePieceAt(x, y int) (*Piece, error)
}

var _ GameAction = (*Game)(nil)

// Game owns the roster and the turn cursor. It is not safe for concurrent
// use; callers serialize access.
type Game struct {
	players []*Player
	turn    int
	exited  bool

	Update bool // render-dirty
	Picked bool // current player has a piece selected
	Play   bool // game still running
}

// NewGame only bounds the roster size. Setup is the full constructor; see
// ValidateRoster for the remaining roster rules.
func NewGame(players []*Player) (*Game, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPlayers, len(players))
	}
	if len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPlayers, len(players))
	}
	return &Game{
		players: players,
		turn:    0,
		Update:  true,
		Picked:  false,
		Play:    true,
	}, nil
}

// Players returns the active roster in turn order.
func (g *Game) Players() []*Player { return g.players }

func (g *Game) Turn() int { return g.turn }

func (g *Game) Current() *Player {
	if g.turn < 0 || g.turn >= len(g.players) {
		return nil
	}
	return g.players[g.turn]
}

func (g *Game) Player(i int) (*Player, error) {
	if i < 0 || i >= len(g.players) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIllegalPlayerIndex, i, len(g.players))
	}
	return g.players[i], nil
}

func (g *Game) NextPlayer() {
	if len(g.players) == 0 {
		g.turn = 0
		return
	}
	g.turn = (g.turn + 1) % len(g.players)
}

// UpdatePosition moves the current player's chosen piece.
func (g *Game) UpdatePosition(x, y int) error {
	cur := g.Current()
	if cur == nil {
		return fmt.Errorf("%w: turn %d", ErrIllegalPlayerIndex, g.turn)
	}
	_, err := cur.MoveChosenPiece(x, y)
	g.Update = true
	return err
}

// PieceAt reports whether any player has a piece at (x, y).
func (g *Game) PieceAt(x, y int) bool {
	for _, p := range g.players {
		if p.HasPieceAt(x, y) {
			return true
		}
	}
	return false
}

func (g *Game) removePieceAt(x, y int) (*Piece, *Player, error) {
	if !InLogicalBounds(x, y) {
		return nil, nil, fmt.Errorf("%w: (%d, %d)", ErrIllegalPosition, x, y)
	}
	for _, p := range g.players {
		i, err := p.PieceIndexAt(x, y)
		if err != nil {
			continue
		}
		pc, err := p.CapturePiece(i)
		if err != nil {
			return nil, nil, err
		}
		return &pc, p, nil
	}
	return nil, nil, nil
}

// RemovePieceAt captures the first piece found at (x, y), scanning players
// in turn order. It returns nil when the cell is empty.
func (g *Game) RemovePieceAt(x, y int) (*Piece, error) {
	pc, _, err := g.removePieceAt(x, y)
	return pc, err
}

// Hunt drops every player with no pieces who has not won. The turn cursor
// keeps pointing at the same player; if that player is removed, the next
// NextPlayer lands on whoever followed it.
func (g *Game) Hunt() []*Player {
	var removed []*Player
	kept := g.players[:0]
	turn := g.turn
	for i, p := range g.players {
		if len(p.Pieces) == 0 && !p.Winner {
			removed = append(removed, p)
			if i <= g.turn {
				turn--
			}
			continue
		}
		kept = append(kept, p)
	}
	clear(g.players[len(kept):])
	g.players = kept
	switch {
	case len(g.players) == 0:
		turn = 0
	case turn < 0:
		turn = len(g.players) - 1
	default:
		turn %= len(g.players)
	}
	g.turn = turn
	if len(removed) > 0 {
		g.Update = true
	}
	return removed
}

func (g *Game) winners() []*Player {
	var out []*Player
	for _, p := range g.players {
		if p.Winner {
			out = append(out, p)
		}
	}
	return out
}

// Result is the outcome of a finished game. Winner is nil on a draw.
type Result struct {
	Winner *Player
	Draw   bool
}

// Exit consumes the game and reports its outcome. More than one winner is a
// broken invariant and is returned as ErrMoreThanOneWinner. A consumed game
// fails with ErrGameOver.
func Exit(g *Game) (Result, error) {
	if g.exited {
		return Result{}, fmt.Errorf("%w: already exited", ErrGameOver)
	}
	winners := g.winners()
	g.exited = true
	g.Play = false
	g.Picked = false
	g.players = nil
	g.turn = 0

	switch len(winners) {
	case 0:
		return Result{Draw: true}, nil
	case 1:
		return Result{Winner: winners[0]}, nil
	}
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	return Result{}, fmt.Errorf("%w: %s", ErrMoreThanOneWinner, strings.Join(names, ", "))
}

func (g *Game) String() string {
	var b strings.Builder
	for y := YMax; y >= YMin; y-- {
		fmt.Fprintf(&b, "%3d ", y)
		for x := XMin; x <= XMax; x++ {
			b.WriteByte(g.cellChar(x, y))
		}
		b.WriteByte('\n')
	}
	b.WriteString("    ")
	for x := XMin; x <= XMax; x++ {
		fmt.Fprintf(&b, "%d", (x+10)%10)
	}
	b.WriteByte('\n')
	return b.String()
}

var pieceLetters = map[PieceType]byte{
	PieceRook:     'r',
	PieceMinister: 'm',
	PieceQueen:    'q',
	PiecePawn:     'p',
	PieceKnight:   'n',
}

// cellChar: defender pieces upper case, attackers lower case.
func (g *Game) cellChar(x, y int) byte {
	for _, p := range g.players {
		i, err := p.PieceIndexAt(x, y)
		if err != nil {
			continue
		}
		ch := pieceLetters[p.Pieces[i].Type]
		if p.Defender {
			ch -= 'a' - 'A'
		}
		return ch
	}
	switch {
	case InFort(x, y):
		return '#'
	case InBoardBounds(x, y):
		return '.'
	}
	return ' '
}
