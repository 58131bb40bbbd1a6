package fortchess

import "cmp"

type Quadrant int8

const (
	NoQuad Quadrant = -1 // defender setup only
	Q1     Quadrant = 0  // left arm
	Q2     Quadrant = 1  // top arm
	Q3     Quadrant = 2  // right arm
)

func (q Quadrant) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	default:
		return "NoQuad"
	}
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceRook
	PieceMinister
	PieceQueen
	PiecePawn
	PieceKnight
)

var pieceTypeNames = map[PieceType]string{
	PieceRook:     "rook",
	PieceMinister: "minister",
	PieceQueen:    "queen",
	PiecePawn:     "pawn",
	PieceKnight:   "knight",
}

func (pt PieceType) String() string {
	if s, ok := pieceTypeNames[pt]; ok {
		return s
	}
	return "none"
}

// ParsePieceType is the inverse of PieceType.String.
func ParsePieceType(s string) (PieceType, bool) {
	for pt, name := range pieceTypeNames {
		if name == s {
			return pt, true
		}
	}
	return PieceNone, false
}

type Team int8

const (
	Red Team = iota
	Blue
	Green
	Yellow
)

var teamNames = [...]string{"red", "blue", "green", "yellow"}

func (t Team) String() string {
	if t < 0 || int(t) >= len(teamNames) {
		return "unknown"
	}
	return teamNames[t]
}

func ParseTeam(s string) (Team, bool) {
	for i, name := range teamNames {
		if name == s {
			return Team(i), true
		}
	}
	return 0, false
}

// Coord is a cell in logical board space.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}
