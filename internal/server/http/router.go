package httpserver

import (
	"net/http"

	"fortchess/internal/server/game"

	"github.com/matryer/way"
)

// Server routes the local JSON API onto a session manager.
type Server struct {
	router *way.Router
	h      *Handler
}

func NewServer(m *game.Manager) *Server {
	s := &Server{h: NewHandler(m)}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", "/api/games", s.h.handleNewGame)
	s.router.HandleFunc("GET", "/api/games/:id", s.h.handleState)
	s.router.HandleFunc("DELETE", "/api/games/:id", s.h.handleDelete)
	s.router.HandleFunc("POST", "/api/games/:id/cursor", s.h.handleCursor)
	s.router.HandleFunc("POST", "/api/games/:id/select", s.h.handleSelect)
	s.router.HandleFunc("POST", "/api/games/:id/deselect", s.h.handleDeselect)
	s.router.HandleFunc("POST", "/api/games/:id/move", s.h.handleMove)
	s.router.HandleFunc("POST", "/api/games/:id/skip", s.h.handleSkip)
	s.router.HandleFunc("POST", "/api/games/:id/roll", s.h.handleRoll)
	s.router.HandleFunc("POST", "/api/games/:id/exit", s.h.handleExit)
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, errRouteNotFound)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
