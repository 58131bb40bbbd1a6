package game

import (
	"fmt"
	"sync"
	"time"

	"fortchess/internal/fortchess"
)

// Screen is the presentation stage of a session.
type Screen int

const (
	StartScreen Screen = iota
	GameBuild
	BoardScreen
	ResultScreen
)

var screenNames = [...]string{"start", "build", "board", "result"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

var transitions = map[Screen]Screen{
	StartScreen: GameBuild,
	GameBuild:   BoardScreen,
	BoardScreen: ResultScreen,
}

type GameState struct {
	mu sync.Mutex

	ID        string
	Game      *fortchess.Game
	Screen    Screen
	Result    *fortchess.Result
	ExitErr   error // failed Exit, replayed on retry
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *GameState) advance(to Screen) error {
	if next, ok := transitions[s.Screen]; !ok || next != to {
		return fmt.Errorf("%w: %s to %s", ErrWrongScreen, s.Screen, to)
	}
	s.Screen = to
	s.UpdatedAt = time.Now()
	return nil
}

// Play runs fn against the live game. It fails with ErrWrongScreen unless the
// session is on the board.
func (s *GameState) Play(fn func(g *fortchess.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Screen != BoardScreen {
		return fmt.Errorf("%w: %s", ErrWrongScreen, s.Screen)
	}
	err := fn(s.Game)
	s.UpdatedAt = time.Now()
	return err
}

// View runs fn with the session locked and must not retain s.
func (s *GameState) View(fn func(s *GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}
