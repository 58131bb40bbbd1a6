package fortchess

import (
	"slices"
	"testing"

	"fortchess/internal/dice"

	"github.com/stretchr/testify/require"
)

func at(x, y int, pt PieceType) Piece {
	return Piece{Type: pt, Pos: Coord{X: x, Y: y}}
}

func newTestPlayer(name string, team Team, defender bool, q Quadrant, pieces ...Piece) *Player {
	pieces = slices.Clone(pieces)
	slices.SortFunc(pieces, Piece.Compare)
	if defender {
		q = NoQuad
	}
	return &Player{Name: name, Team: team, Defender: defender, Quadrant: q, Pieces: pieces}
}

func newTestGame(t *testing.T, players ...*Player) *Game {
	t.Helper()
	g, err := NewGame(players)
	require.NoError(t, err)
	return g
}

func requireSortedUnique(t *testing.T, p *Player) {
	t.Helper()
	for i := 1; i < len(p.Pieces); i++ {
		require.Negative(t, p.Pieces[i-1].Compare(p.Pieces[i]), "%s pieces out of order at %d: %v", p.Name, i, p.Pieces)
	}
}

func fixedRoll(faces ...int) dice.Roller {
	return dice.Fixed(faces...)
}
