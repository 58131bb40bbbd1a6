package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fortchess/internal/fortchess"
	"fortchess/internal/server/game"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

var (
	errRouteNotFound = errors.New("route not found")
	errBadJSON       = errors.New("bad json")
	errBadTeam       = errors.New("unknown team")
	errBadWindow     = errors.New("window size must be positive")
)

func errUnknownTeam(name string) error {
	return fmt.Errorf("%w: %q", errBadTeam, name)
}

// Handler serves one JSON endpoint per game action.
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	return &Handler{games: m}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, errRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrWrongScreen), errors.Is(err, fortchess.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, fortchess.ErrMoreThanOneWinner):
		return http.StatusInternalServerError
	case errors.Is(err, errBadJSON),
		errors.Is(err, errBadTeam),
		errors.Is(err, errBadWindow),
		errors.Is(err, fortchess.ErrTooFewPlayers),
		errors.Is(err, fortchess.ErrTooManyPlayers),
		errors.Is(err, fortchess.ErrDuplicateTeam),
		errors.Is(err, fortchess.ErrInvalidNameLength),
		errors.Is(err, fortchess.ErrIllegalPosition),
		errors.Is(err, fortchess.ErrPieceNotFound),
		errors.Is(err, fortchess.ErrNothingPicked),
		errors.Is(err, fortchess.ErrIllegalMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writeJSON failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	entry := log.WithError(err).WithFields(log.Fields{"method": r.Method, "path": r.URL.Path, "status": status})
	if id := way.Param(r.Context(), "id"); id != "" {
		entry = entry.WithField("game", id)
	}
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, statusOf(err), err)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}

func (h *Handler) session(r *http.Request) (*game.GameState, error) {
	return h.games.Get(way.Param(r.Context(), "id"))
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	entrants, err := entrantsFromDTO(req.Players)
	if err != nil {
		fail(w, r, err)
		return
	}
	s, err := h.games.NewGame(entrants)
	if err != nil {
		fail(w, r, err)
		return
	}

	var resp StateResponse
	s.View(func(s *game.GameState) { resp = stateToDTO(s) })
	writeJSON(w, http.StatusCreated, resp)
}

// handleState doubles as the render pass: it clears the dirty flag.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var resp StateResponse
	s.View(func(s *game.GameState) {
		resp = stateToDTO(s)
		if s.Game != nil {
			s.Game.Update = false
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(way.Param(r.Context(), "id")); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCursor(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req CursorRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		fail(w, r, fmt.Errorf("%w: %gx%g", errBadWindow, req.Width, req.Height))
		return
	}

	x, y := fortchess.ScreenToBoard(req.X, req.Y, req.Height, req.Width)
	resp := CursorResponse{Cell: fortchess.Coord{X: x, Y: y}, Quadrant: fortchess.NoQuad.String()}
	if q, err := fortchess.QuadrantOf(x, y); err == nil {
		resp.Quadrant = q.String()
		resp.InBoard = true
	}
	err = s.Play(func(g *fortchess.Game) error {
		resp.Occupied = fortchess.InLogicalBounds(x, y) && g.PieceAt(x, y)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req CellRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}

	var resp SelectResponse
	err = s.Play(func(g *fortchess.Game) error {
		if err := g.Select(req.X, req.Y); err != nil {
			return err
		}
		pc, err := g.Current().ChosenPiece()
		if err != nil {
			return err
		}
		dests, err := g.Destinations()
		if err != nil {
			return err
		}
		resp.Piece = pieceToDTO(pc)
		resp.Destinations = dests.Sorted()
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDeselect(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(g *fortchess.Game) error {
		g.Deselect()
		return nil
	})
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req CellRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, err)
		return
	}

	var resp MoveResponse
	err = s.Play(func(g *fortchess.Game) error {
		rep, err := g.Move(req.X, req.Y)
		if err != nil {
			return err
		}
		resp.From, resp.To = rep.From, rep.To
		if rep.Captured != nil {
			c := pieceToDTO(*rep.Captured)
			resp.Captured = &c
		}
		for _, p := range rep.Eliminated {
			resp.Eliminated = append(resp.Eliminated, p.Name)
		}
		entry := log.WithFields(log.Fields{"game": s.ID, "player": rep.Mover.Name, "team": rep.Mover.Team.String()})
		if rep.Winner != nil {
			resp.Winner = rep.Winner.Name
			entry = entry.WithField("winner", rep.Winner.Name)
		}
		entry.Debugf("move %v -> %v", rep.From, rep.To)
		resp.State = stateToDTO(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSkip(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(g *fortchess.Game) error { return g.Skip() })
}

func (h *Handler) handleRoll(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var resp RollResponse
	err = s.Play(func(g *fortchess.Game) error {
		face, err := g.WinRoll(h.games.Dice())
		if err != nil {
			return err
		}
		resp.Face = face
		resp.Won = face == fortchess.WinRollFace
		resp.State = stateToDTO(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleExit(w http.ResponseWriter, r *http.Request) {
	res, err := h.games.Exit(way.Param(r.Context(), "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultToDTO(res))
}

// act runs fn on the session and answers with the new state.
func (h *Handler) act(w http.ResponseWriter, r *http.Request, fn func(g *fortchess.Game) error) {
	s, err := h.session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var resp StateResponse
	err = s.Play(func(g *fortchess.Game) error {
		if err := fn(g); err != nil {
			return err
		}
		resp = stateToDTO(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
