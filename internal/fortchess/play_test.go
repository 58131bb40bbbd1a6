package fortchess

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAssignsDefenderByRoll(t *testing.T) {
	g, err := Setup([]Entrant{
		{"alice", Red}, {"bob", Blue}, {"carol", Green}, {"dave", Yellow},
	}, fixedRoll(3, 5, 5, 2))
	require.NoError(t, err)

	players := g.Players()
	require.Len(t, players, 4)
	assert.True(t, players[1].Defender, "highest roll, earliest on ties")
	assert.Len(t, players[1].Pieces, 24)
	assert.Equal(t, []Quadrant{Q1, NoQuad, Q2, Q3},
		[]Quadrant{players[0].Quadrant, players[1].Quadrant, players[2].Quadrant, players[3].Quadrant})
}

func TestSetupValidation(t *testing.T) {
	_, err := Setup([]Entrant{{"alice", Red}}, fixedRoll(1))
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = Setup([]Entrant{{"alice", Red}, {"bob", Red}}, fixedRoll(1))
	assert.ErrorIs(t, err, ErrDuplicateTeam)

	_, err = Setup([]Entrant{{"al", Red}, {"bob", Blue}}, fixedRoll(1))
	assert.ErrorIs(t, err, ErrInvalidNameLength)

	five := []Entrant{{"aaa", Red}, {"bbb", Blue}, {"ccc", Green}, {"ddd", Yellow}, {"eee", Red}}
	_, err = Setup(five, fixedRoll(1))
	assert.ErrorIs(t, err, ErrTooManyPlayers)
}

func TestValidateRoster(t *testing.T) {
	require.NoError(t, ValidateRoster(fourPlayers()))
	require.NoError(t, ValidateRoster(fourPlayers()[2:]))

	tests := []struct {
		name    string
		players []*Player
		want    error
	}{
		{"one player", fourPlayers()[3:], ErrTooFewPlayers},
		{"five players", append(fourPlayers(), newTestPlayer("eve", Red, false, Q1)), ErrTooManyPlayers},
		{"no defender", fourPlayers()[:3], ErrDefenderCount},
		{"two defenders", append(fourPlayers()[1:], newTestPlayer("eve", Red, true, NoQuad)), ErrDefenderCount},
		{"same team", []*Player{newTestPlayer("alice", Red, false, Q1), newTestPlayer("dave", Red, true, NoQuad)}, ErrDuplicateTeam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateRoster(tt.players), tt.want)
		})
	}
}

func TestSelectAndDestinations(t *testing.T) {
	g := newTestGame(t, fourPlayers()...)

	_, err := g.Destinations()
	assert.ErrorIs(t, err, ErrNothingPicked)

	assert.ErrorIs(t, g.Select(-4, 0), ErrPieceNotFound, "another player's piece")
	require.NoError(t, g.Select(-7, 0))
	assert.True(t, g.Picked)

	d, err := g.Destinations()
	require.NoError(t, err)
	assert.Equal(t, coords(Coord{-6, 0}), d.Sorted())

	g.Deselect()
	assert.False(t, g.Picked)
}

func TestMoveRejectsIllegalTarget(t *testing.T) {
	g := newTestGame(t, fourPlayers()...)
	require.NoError(t, g.Select(-7, 0))
	_, err := g.Move(-5, 0)
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, 0, g.Turn())
	assert.True(t, g.Picked)
}

func TestMoveAdvancesTurn(t *testing.T) {
	g := newTestGame(t, fourPlayers()...)
	require.NoError(t, g.Select(-7, 0))
	rep, err := g.Move(-6, 0)
	require.NoError(t, err)
	assert.True(t, rep.Moved)
	assert.Nil(t, rep.Captured)
	assert.Nil(t, rep.Winner)
	assert.False(t, g.Picked)
	assert.True(t, g.Update)
	assert.Equal(t, 1, g.Turn())
}

func TestMoveCapturesAndHunts(t *testing.T) {
	alice := newTestPlayer("alice", Red, false, Q1, at(-6, 0, PieceRook))
	bob := newTestPlayer("bob", Blue, false, Q2, at(0, 7, PiecePawn))
	dave := newTestPlayer("dave", Yellow, true, NoQuad, at(-4, 0, PiecePawn), at(0, 4, PiecePawn))
	g := newTestGame(t, alice, bob, dave)

	require.NoError(t, g.Select(-6, 0))
	rep, err := g.Move(-4, 0)
	require.NoError(t, err)
	require.NotNil(t, rep.Captured)
	assert.Equal(t, at(-4, 0, PiecePawn), *rep.Captured)
	assert.Same(t, dave, rep.CapturedFrom)
	assert.Empty(t, rep.Eliminated)
	assert.Len(t, dave.Pieces, 1)

	// bob moves, dave passes
	require.NoError(t, g.Select(0, 7))
	_, err = g.Move(0, 6)
	require.NoError(t, err)
	require.NoError(t, g.Select(0, 4))
	require.NoError(t, g.Skip())

	// leave bob a single piece in alice's path
	bob.Pieces = []Piece{at(-4, 1, PiecePawn)}
	bob.Quadrant = Q1
	require.NoError(t, g.Select(-4, 0))
	rep, err = g.Move(-4, 1)
	require.NoError(t, err)
	require.Len(t, rep.Eliminated, 1)
	assert.Same(t, bob, rep.Eliminated[0])
	assert.Len(t, g.Players(), 2)
	assert.Equal(t, "dave", g.Current().Name, "turn passes over the eliminated player")
}

func TestAttackerReachingInnerEdgeWins(t *testing.T) {
	alice := newTestPlayer("alice", Red, false, Q1, at(-4, 0, PiecePawn))
	dave := newTestPlayer("dave", Yellow, true, NoQuad, at(4, 0, PiecePawn))
	g := newTestGame(t, alice, dave)

	require.NoError(t, g.Select(-4, 0))
	rep, err := g.Move(-3, 0)
	require.NoError(t, err)
	assert.Same(t, alice, rep.Winner)
	assert.False(t, g.Play)

	_, err = g.Move(-2, 0)
	assert.ErrorIs(t, err, ErrGameOver)

	res, err := Exit(g)
	require.NoError(t, err)
	assert.Same(t, alice, res.Winner)
}

func TestDefenderReachingOuterEdgeWins(t *testing.T) {
	dave := newTestPlayer("dave", Yellow, true, NoQuad, at(0, 7, PiecePawn))
	bob := newTestPlayer("bob", Blue, false, Q1, at(-7, 0, PiecePawn))
	g := newTestGame(t, dave, bob)

	require.NoError(t, g.Select(0, 7))
	rep, err := g.Move(0, 8)
	require.NoError(t, err)
	assert.Same(t, dave, rep.Winner)
}

func TestOppositeSide(t *testing.T) {
	q1 := newTestPlayer("alice", Red, false, Q1)
	q2 := newTestPlayer("bob", Blue, false, Q2)
	q3 := newTestPlayer("carol", Green, false, Q3)
	def := newTestPlayer("dave", Yellow, true, NoQuad)

	assert.True(t, OppositeSide(q1, Coord{-3, 1}))
	assert.False(t, OppositeSide(q1, Coord{-4, 1}))
	assert.False(t, OppositeSide(q1, Coord{-2, 3}), "not in the home arm")
	assert.True(t, OppositeSide(q2, Coord{2, 3}))
	assert.True(t, OppositeSide(q3, Coord{3, -2}))
	assert.False(t, OppositeSide(q3, Coord{8, 0}))

	assert.True(t, OppositeSide(def, Coord{-8, 0}))
	assert.True(t, OppositeSide(def, Coord{8, 2}))
	assert.True(t, OppositeSide(def, Coord{1, 8}))
	assert.False(t, OppositeSide(def, Coord{-5, 2}))
}

func TestLastPlayerStandingWins(t *testing.T) {
	alice := newTestPlayer("alice", Red, false, Q1, at(-6, 0, PieceRook))
	dave := newTestPlayer("dave", Yellow, true, NoQuad, at(-6, 2, PiecePawn))
	g := newTestGame(t, alice, dave)

	require.NoError(t, g.Select(-6, 0))
	rep, err := g.Move(-6, 2)
	require.NoError(t, err)
	assert.Len(t, rep.Eliminated, 1)
	assert.Same(t, alice, rep.Winner)
	assert.False(t, g.Play)
}

func TestWinRoll(t *testing.T) {
	g := newTestGame(t, fourPlayers()...)

	face, err := g.WinRoll(fixedRoll(3))
	require.NoError(t, err)
	assert.Equal(t, 3, face)
	assert.Equal(t, 1, g.Turn())
	assert.True(t, g.Play)

	face, err = g.WinRoll(fixedRoll(WinRollFace))
	require.NoError(t, err)
	assert.Equal(t, WinRollFace, face)
	assert.True(t, g.Players()[1].Winner)
	assert.False(t, g.Play)

	_, err = g.WinRoll(fixedRoll(WinRollFace))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, g.Skip(), ErrGameOver)
}

func TestSkip(t *testing.T) {
	g := newTestGame(t, fourPlayers()...)
	require.NoError(t, g.Select(-7, 0))
	require.NoError(t, g.Skip())
	assert.False(t, g.Picked)
	assert.Equal(t, 1, g.Turn())
}

func TestRandomPlaythroughKeepsInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		g, err := Setup([]Entrant{
			{"alice", Red}, {"bob", Blue}, {"carol", Green}, {"dave", Yellow},
		}, fixedRoll(int(seed%6)+1, 4, 3, 2))
		require.NoError(t, err)

		for ply := 0; ply < 400 && g.Play; ply++ {
			cur := g.Current()
			type option struct{ from, to Coord }
			var opts []option
			for _, pc := range cur.Pieces {
				for _, to := range g.LegalDestinations(pc.Pos, pc.Type).Sorted() {
					opts = append(opts, option{pc.Pos, to})
				}
			}
			if len(opts) == 0 {
				require.NoError(t, g.Skip())
				continue
			}
			o := opts[rng.IntN(len(opts))]
			require.NoError(t, g.Select(o.from.X, o.from.Y))
			_, err := g.Move(o.to.X, o.to.Y)
			require.NoError(t, err, "seed %d ply %d", seed, ply)

			taken := make(map[Coord]bool)
			for _, p := range g.Players() {
				requireSortedUnique(t, p)
				for _, pc := range p.Pieces {
					require.True(t, InBoardBounds(pc.Pos.X, pc.Pos.Y), "%s off board", pc)
					require.False(t, taken[pc.Pos], "shared cell %v", pc.Pos)
					taken[pc.Pos] = true
				}
			}
			if len(g.Players()) > 0 {
				require.Less(t, g.Turn(), len(g.Players()))
			}
		}

		res, err := Exit(g)
		require.NoError(t, err, "seed %d", seed)
		if !res.Draw {
			require.NotNil(t, res.Winner)
		}
	}
}
