package fortchess

import (
	"fmt"

	"fortchess/internal/dice"
)

// TurnReport describes what a completed action changed.
type TurnReport struct {
	Mover        *Player
	From, To     Coord
	Moved        bool
	Captured     *Piece
	CapturedFrom *Player
	Eliminated   []*Player
	Winner       *Player
}

// Select picks the current player's piece at (x, y).
func (g *Game) Select(x, y int) error {
	if !g.Play {
		return ErrGameOver
	}
	cur := g.Current()
	if cur == nil {
		return fmt.Errorf("%w: turn %d", ErrIllegalPlayerIndex, g.turn)
	}
	i, err := cur.PieceIndexAt(x, y)
	if err != nil {
		return err
	}
	if err := cur.Choose(i); err != nil {
		return err
	}
	g.Picked = true
	g.Update = true
	return nil
}

func (g *Game) Deselect() {
	if g.Picked {
		g.Update = true
	}
	g.Picked = false
}

// Destinations lists the legal targets of the picked piece.
func (g *Game) Destinations() (Destinations, error) {
	if !g.Picked {
		return nil, ErrNothingPicked
	}
	cur := g.Current()
	if cur == nil {
		return nil, fmt.Errorf("%w: turn %d", ErrIllegalPlayerIndex, g.turn)
	}
	pc, err := cur.ChosenPiece()
	if err != nil {
		return nil, err
	}
	return g.LegalDestinations(pc.Pos, pc.Type), nil
}

// Move moves the picked piece to (x, y): the opposing piece there is
// captured first, then the piece moves, the win trigger is checked, empty
// players are hunted and the turn passes unless the game ended.
func (g *Game) Move(x, y int) (TurnReport, error) {
	if !g.Play {
		return TurnReport{}, ErrGameOver
	}
	dests, err := g.Destinations()
	if err != nil {
		return TurnReport{}, err
	}
	cur := g.Current()
	pc, _ := cur.ChosenPiece()
	to := Coord{X: x, Y: y}
	if !dests.Has(to) {
		return TurnReport{}, fmt.Errorf("%w: %s to (%d, %d)", ErrIllegalMove, pc, x, y)
	}

	report := TurnReport{Mover: cur, From: pc.Pos, To: to}
	if g.PieceAt(x, y) {
		captured, owner, err := g.removePieceAt(x, y)
		if err != nil {
			return report, err
		}
		report.Captured = captured
		report.CapturedFrom = owner
	}

	moved, err := cur.MoveChosenPiece(x, y)
	if err != nil {
		return report, err
	}
	report.Moved = moved
	g.Update = true
	g.Picked = false

	if OppositeSide(cur, to) {
		cur.SetWinner()
	}

	report.Eliminated = g.Hunt()
	g.settle(&report)
	return report, nil
}

// Skip passes the turn without moving.
func (g *Game) Skip() error {
	if !g.Play {
		return ErrGameOver
	}
	g.Picked = false
	g.Update = true
	g.NextPlayer()
	return nil
}

// WinRoll spends the turn on the special die. WinRollFace makes the current
// player the winner.
func (g *Game) WinRoll(r dice.Roller) (int, error) {
	if !g.Play {
		return 0, ErrGameOver
	}
	cur := g.Current()
	if cur == nil {
		return 0, fmt.Errorf("%w: turn %d", ErrIllegalPlayerIndex, g.turn)
	}
	face := r.Roll()
	g.Picked = false
	g.Update = true
	if face == WinRollFace {
		cur.SetWinner()
		g.Play = false
		return face, nil
	}
	g.NextPlayer()
	return face, nil
}

// settle ends the game on a winner or a last player standing, otherwise
// advances the turn.
func (g *Game) settle(report *TurnReport) {
	if w := g.winners(); len(w) > 0 {
		report.Winner = w[0]
		g.Play = false
		return
	}
	if len(g.players) <= 1 {
		if len(g.players) == 1 {
			g.players[0].SetWinner()
			report.Winner = g.players[0]
		}
		g.Play = false
		return
	}
	g.NextPlayer()
}
