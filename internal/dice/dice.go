// Package dice is the only source of randomness in a game: defender
// assignment at setup and the special win roll.
package dice

import (
	"math/rand/v2"
	"sync"
	"time"
)

const Faces = 6

// Roller returns a face in [1, Faces].
type Roller interface {
	Roll() int
}

type RollerFunc func() int

func (f RollerFunc) Roll() int { return f() }

type clockRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Clock returns a roller seeded from the wall clock.
func Clock() Roller {
	now := uint64(time.Now().UnixNano())
	return &clockRoller{rng: rand.New(rand.NewPCG(now, now>>17))}
}

func (c *clockRoller) Roll() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(Faces) + 1
}

// Fixed replays faces in order, wrapping around. Faces outside [1, Faces]
// are clamped.
func Fixed(faces ...int) Roller {
	if len(faces) == 0 {
		faces = []int{1}
	}
	var (
		mu sync.Mutex
		i  int
	)
	return RollerFunc(func() int {
		mu.Lock()
		defer mu.Unlock()
		f := faces[i%len(faces)]
		i++
		return min(max(f, 1), Faces)
	})
}
