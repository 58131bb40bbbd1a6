// Package render draws a game as team-coloured text for terminals and logs.
package render

import (
	"fmt"
	"strings"

	"fortchess/internal/fortchess"

	"github.com/charmbracelet/lipgloss"
)

var teamColors = map[fortchess.Team]lipgloss.Color{
	fortchess.Red:    lipgloss.Color("#e5484d"),
	fortchess.Blue:   lipgloss.Color("#3e63dd"),
	fortchess.Green:  lipgloss.Color("#30a46c"),
	fortchess.Yellow: lipgloss.Color("#f5d90a"),
}

var (
	fortStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	axisStyle   = lipgloss.NewStyle().Faint(true)
)

var letters = map[fortchess.PieceType]string{
	fortchess.PieceRook:     "r",
	fortchess.PieceMinister: "m",
	fortchess.PieceQueen:    "q",
	fortchess.PiecePawn:     "p",
	fortchess.PieceKnight:   "n",
}

func TeamStyle(t fortchess.Team) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(teamColors[t]).Bold(true)
}

func pieceCell(p *fortchess.Player, pc fortchess.Piece) string {
	s := letters[pc.Type]
	if p.Defender {
		s = strings.ToUpper(s)
	}
	return TeamStyle(p.Team).Render(s)
}

// Board renders every cell of the logical rectangle. Cells in highlight are
// marked with '*' unless a piece stands there.
func Board(g *fortchess.Game, highlight fortchess.Destinations) string {
	occupant := make(map[fortchess.Coord]string)
	for _, p := range g.Players() {
		for _, pc := range p.Pieces {
			occupant[pc.Pos] = pieceCell(p, pc)
		}
	}

	var b strings.Builder
	for y := fortchess.YMax; y >= fortchess.YMin; y-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%3d ", y)))
		for x := fortchess.XMin; x <= fortchess.XMax; x++ {
			c := fortchess.Coord{X: x, Y: y}
			switch {
			case occupant[c] != "":
				b.WriteString(occupant[c])
			case highlight.Has(c):
				b.WriteString(targetStyle.Render("*"))
			case fortchess.InFort(x, y):
				b.WriteString(fortStyle.Render("#"))
			case fortchess.InBoardBounds(x, y):
				b.WriteString(emptyStyle.Render("."))
			default:
				b.WriteByte(' ')
			}
			if x < fortchess.XMax {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend lists players in turn order, marking the current one.
func Legend(g *fortchess.Game) string {
	var b strings.Builder
	cur := g.Current()
	for _, p := range g.Players() {
		marker := "  "
		if p == cur {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(TeamStyle(p.Team).Render(p.String()))
		if p.Winner {
			b.WriteString(" winner")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
