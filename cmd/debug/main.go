package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fortchess/internal/dice"
	"fortchess/internal/fortchess"
	"fortchess/internal/render"
)

var roster = []fortchess.Entrant{
	{Name: "alice", Team: fortchess.Red},
	{Name: "bob", Team: fortchess.Blue},
	{Name: "carol", Team: fortchess.Green},
	{Name: "dave", Team: fortchess.Yellow},
}

func parseFaces(s string) ([]int, error) {
	var faces []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		faces = append(faces, n)
	}
	return faces, nil
}

func main() {
	players := flag.Int("players", 4, "number of players (2-4)")
	rolls := flag.String("rolls", "1,1,1,6", "comma separated setup rolls")
	flag.Parse()

	faces, err := parseFaces(*rolls)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -rolls:", err)
		os.Exit(2)
	}
	if *players < 1 || *players > len(roster) {
		fmt.Fprintln(os.Stderr, "bad -players:", *players)
		os.Exit(2)
	}

	g, err := fortchess.Setup(roster[:*players], dice.Fixed(faces...))
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup:", err)
		os.Exit(1)
	}

	fmt.Print(render.Legend(g))
	fmt.Print(render.Board(g, nil))

	cur := g.Current()
	total := 0
	for _, pc := range cur.Pieces {
		d := g.LegalDestinations(pc.Pos, pc.Type)
		total += d.Len()
		fmt.Printf("%-16s %2d %v\n", pc, d.Len(), d.Sorted())
	}
	fmt.Println("Destinations:", total)
}
