package render

import (
	"strings"
	"testing"

	"fortchess/internal/dice"
	"fortchess/internal/fortchess"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardShowsEveryRow(t *testing.T) {
	g, err := fortchess.Setup([]fortchess.Entrant{{Name: "alice", Team: fortchess.Red}, {Name: "bob", Team: fortchess.Blue}}, dice.Fixed(1, 6))
	require.NoError(t, err)

	out := Board(g, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, fortchess.YMax-fortchess.YMin+1)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "n")
	assert.Contains(t, out, "Q", "defender pieces are upper case")
}

func TestBoardHighlightsDestinations(t *testing.T) {
	g, err := fortchess.Setup([]fortchess.Entrant{{Name: "alice", Team: fortchess.Red}, {Name: "bob", Team: fortchess.Blue}}, dice.Fixed(1, 6))
	require.NoError(t, err)

	d := g.LegalDestinations(fortchess.Coord{X: -7, Y: 0}, fortchess.PiecePawn)
	require.Equal(t, 1, d.Len())
	assert.Equal(t, 1, strings.Count(Board(g, d), "*"))
}

func TestLegendMarksCurrentPlayer(t *testing.T) {
	g, err := fortchess.Setup([]fortchess.Entrant{{Name: "alice", Team: fortchess.Red}, {Name: "bob", Team: fortchess.Blue}}, dice.Fixed(1, 6))
	require.NoError(t, err)

	out := Legend(g)
	assert.True(t, strings.HasPrefix(out, "> "))
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "defender")
}
