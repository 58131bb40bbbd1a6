package game

import (
	"fmt"
	"sync"
	"time"

	"fortchess/internal/dice"
	"fortchess/internal/fortchess"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	dice  dice.Roller
}

// NewManager uses r for defender selection and win rolls; nil means the
// wall-clock die.
func NewManager(r dice.Roller) *Manager {
	if r == nil {
		r = dice.Clock()
	}
	return &Manager{games: make(map[string]*GameState), dice: r}
}

func (m *Manager) Dice() dice.Roller {
	return m.dice
}

// NewGame sets up a game for the entrants and stores it on the board screen.
func (m *Manager) NewGame(entrants []fortchess.Entrant) (*GameState, error) {
	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		Screen:    StartScreen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.advance(GameBuild); err != nil {
		return nil, err
	}
	g, err := fortchess.Setup(entrants, m.dice)
	if err != nil {
		log.WithError(err).WithField("game", s.ID).Warn("setup rejected")
		return nil, err
	}
	s.Game = g
	if err := s.advance(BoardScreen); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()

	fields := log.Fields{"game": s.ID, "players": len(entrants)}
	if cur := g.Current(); cur != nil {
		fields["player"] = cur.Name
		fields["team"] = cur.Team.String()
	}
	log.WithFields(fields).Info("game created")
	return s, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

// Exit consumes the session's game and moves it to the result screen. An
// inconsistent outcome keeps the session on the board and every later Exit
// returns the same error.
func (m *Manager) Exit(id string) (fortchess.Result, error) {
	s, err := m.Get(id)
	if err != nil {
		return fortchess.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Screen != BoardScreen {
		return fortchess.Result{}, fmt.Errorf("%w: %s", ErrWrongScreen, s.Screen)
	}
	if s.ExitErr != nil {
		return fortchess.Result{}, s.ExitErr
	}
	res, err := fortchess.Exit(s.Game)
	if err != nil {
		s.ExitErr = err
		s.UpdatedAt = time.Now()
		log.WithError(err).WithField("game", id).Error("exit failed")
		return res, err
	}
	s.Result = &res
	if err := s.advance(ResultScreen); err != nil {
		return res, err
	}

	entry := log.WithField("game", id)
	if res.Winner != nil {
		entry = entry.WithFields(log.Fields{"player": res.Winner.Name, "team": res.Winner.Team.String()})
	}
	entry.WithField("draw", res.Draw).Info("game finished")
	return res, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	log.WithField("game", id).Debug("game deleted")
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
