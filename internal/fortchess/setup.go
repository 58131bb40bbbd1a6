package fortchess

import (
	"fmt"

	"fortchess/internal/dice"
)

type Entrant struct {
	Name string
	Team Team
}

// rollDefender rolls once per entrant; the highest face wins, the earliest
// entrant on ties.
func rollDefender(n int, r dice.Roller) (int, []int) {
	rolls := make([]int, n)
	best := 0
	for i := range rolls {
		rolls[i] = r.Roll()
		if rolls[i] > rolls[best] {
			best = i
		}
	}
	return best, rolls
}

// Setup builds a game from the entrants in turn order. One entrant becomes
// the defender by die roll; attackers take Q1, Q2 and Q3 in order.
func Setup(entrants []Entrant, r dice.Roller) (*Game, error) {
	n := len(entrants)
	if n > MaxPlayers {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPlayers, n)
	}
	if n < MinPlayers {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPlayers, n)
	}
	seen := make(map[Team]bool, n)
	for _, e := range entrants {
		if seen[e.Team] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, e.Team)
		}
		seen[e.Team] = true
	}

	defender, _ := rollDefender(n, r)
	players := make([]*Player, 0, n)
	next := 0
	for i, e := range entrants {
		q := NoQuad
		if i != defender {
			var err error
			if q, err = QuadrantFromIndex(next); err != nil {
				return nil, err
			}
			next++
		}
		p, err := NewPlayer(e.Name, e.Team, i == defender, n, q)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := ValidateRoster(players); err != nil {
		return nil, err
	}
	return NewGame(players)
}

// ValidateRoster checks a full roster: 2 to 4 players, exactly one defender
// and no team twice.
func ValidateRoster(players []*Player) error {
	n := len(players)
	if n > MaxPlayers {
		return fmt.Errorf("%w: %d", ErrTooManyPlayers, n)
	}
	if n < MinPlayers {
		return fmt.Errorf("%w: %d", ErrTooFewPlayers, n)
	}
	defenders := 0
	seen := make(map[Team]bool, n)
	for _, p := range players {
		if seen[p.Team] {
			return fmt.Errorf("%w: %s", ErrDuplicateTeam, p.Team)
		}
		seen[p.Team] = true
		if p.Defender {
			defenders++
		}
	}
	if defenders != 1 {
		return fmt.Errorf("%w: got %d", ErrDefenderCount, defenders)
	}
	return nil
}
