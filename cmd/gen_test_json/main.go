package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"fortchess/internal/dice"
	"fortchess/internal/fortchess"
)

type TestCase struct {
	Game         int               `json:"game"`
	Ply          int               `json:"ply"`
	Turn         int               `json:"turn"`
	Pieces       [][]PieceJSON     `json:"pieces"`
	From         fortchess.Coord   `json:"from"`
	Type         string            `json:"type"`
	Destinations []fortchess.Coord `json:"destinations"`
}

type PieceJSON struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func snapshot(g *fortchess.Game) [][]PieceJSON {
	out := make([][]PieceJSON, len(g.Players()))
	for i, p := range g.Players() {
		out[i] = make([]PieceJSON, len(p.Pieces))
		for j, pc := range p.Pieces {
			out[i][j] = PieceJSON{Type: pc.Type.String(), X: pc.Pos.X, Y: pc.Pos.Y}
		}
	}
	return out
}

var roster = []fortchess.Entrant{
	{Name: "alice", Team: fortchess.Red},
	{Name: "bob", Team: fortchess.Blue},
	{Name: "carol", Team: fortchess.Green},
	{Name: "dave", Team: fortchess.Yellow},
}

func main() {
	numGames := flag.Int("games", 10, "random games to play")
	maxPly := flag.Int("max-ply", 300, "ply limit per game")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	roll := dice.RollerFunc(func() int { return rng.IntN(dice.Faces) + 1 })

	var testCases []TestCase
	for n := range *numGames {
		players := 2 + n%3
		g, err := fortchess.Setup(roster[:players], roll)
		if err != nil {
			fmt.Fprintln(os.Stderr, "setup:", err)
			os.Exit(1)
		}

		for ply := 0; ply < *maxPly && g.Play; ply++ {
			cur := g.Current()
			var movable []fortchess.Piece
			for _, pc := range cur.Pieces {
				if g.LegalDestinations(pc.Pos, pc.Type).Len() > 0 {
					movable = append(movable, pc)
				}
			}
			if len(movable) == 0 {
				_ = g.Skip()
				continue
			}

			pc := movable[rng.IntN(len(movable))]
			dests := g.LegalDestinations(pc.Pos, pc.Type).Sorted()
			testCases = append(testCases, TestCase{
				Game:         n,
				Ply:          ply,
				Turn:         g.Turn(),
				Pieces:       snapshot(g),
				From:         pc.Pos,
				Type:         pc.Type.String(),
				Destinations: dests,
			})

			if err := g.Select(pc.Pos.X, pc.Pos.Y); err != nil {
				fmt.Fprintln(os.Stderr, "select:", err)
				os.Exit(1)
			}
			to := dests[rng.IntN(len(dests))]
			if _, err := g.Move(to.X, to.Y); err != nil {
				fmt.Fprintln(os.Stderr, "move:", err)
				os.Exit(1)
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
