package httpserver

import (
	"fortchess/internal/fortchess"
	"fortchess/internal/server/game"
)

type EntrantDTO struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// NewGameRequest lists entrants in turn order.
type NewGameRequest struct {
	Players []EntrantDTO `json:"players"`
}

type PieceDTO struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type PlayerDTO struct {
	Name     string     `json:"name"`
	Team     string     `json:"team"`
	Defender bool       `json:"defender"`
	Winner   bool       `json:"winner"`
	Quadrant string     `json:"quadrant"`
	Pieces   []PieceDTO `json:"pieces"`
}

type ResultDTO struct {
	Winner string `json:"winner,omitempty"`
	Team   string `json:"team,omitempty"`
	Draw   bool   `json:"draw"`
}

// StateResponse is the whole session as a client redraws it.
type StateResponse struct {
	GameID  string      `json:"game_id"`
	Screen  string      `json:"screen"`
	Current int         `json:"current"`
	Update  bool        `json:"update"`
	Picked  bool        `json:"picked"`
	Play    bool        `json:"play"`
	Players []PlayerDTO `json:"players"`
	Board   string      `json:"board,omitempty"`
	Result  *ResultDTO  `json:"result,omitempty"`
}

// CursorRequest carries a window position in pixels, origin top-left.
type CursorRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CursorResponse struct {
	Cell     fortchess.Coord `json:"cell"`
	Quadrant string          `json:"quadrant"`
	InBoard  bool            `json:"in_board"`
	Occupied bool            `json:"occupied"`
}

type CellRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type SelectResponse struct {
	Piece        PieceDTO          `json:"piece"`
	Destinations []fortchess.Coord `json:"destinations"`
}

type MoveResponse struct {
	From       fortchess.Coord `json:"from"`
	To         fortchess.Coord `json:"to"`
	Captured   *PieceDTO       `json:"captured,omitempty"`
	Eliminated []string        `json:"eliminated,omitempty"`
	Winner     string          `json:"winner,omitempty"`
	State      StateResponse   `json:"state"`
}

type RollResponse struct {
	Face  int           `json:"face"`
	Won   bool          `json:"won"`
	State StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func entrantsFromDTO(in []EntrantDTO) ([]fortchess.Entrant, error) {
	out := make([]fortchess.Entrant, len(in))
	for i, e := range in {
		team, ok := fortchess.ParseTeam(e.Team)
		if !ok {
			return nil, errUnknownTeam(e.Team)
		}
		out[i] = fortchess.Entrant{Name: e.Name, Team: team}
	}
	return out, nil
}

func pieceToDTO(p fortchess.Piece) PieceDTO {
	return PieceDTO{Type: p.Type.String(), X: p.Pos.X, Y: p.Pos.Y}
}

func playerToDTO(p *fortchess.Player) PlayerDTO {
	pieces := make([]PieceDTO, len(p.Pieces))
	for i, pc := range p.Pieces {
		pieces[i] = pieceToDTO(pc)
	}
	return PlayerDTO{
		Name:     p.Name,
		Team:     p.Team.String(),
		Defender: p.Defender,
		Winner:   p.Winner,
		Quadrant: p.Quadrant.String(),
		Pieces:   pieces,
	}
}

func resultToDTO(r fortchess.Result) ResultDTO {
	out := ResultDTO{Draw: r.Draw}
	if r.Winner != nil {
		out.Winner = r.Winner.Name
		out.Team = r.Winner.Team.String()
	}
	return out
}

// stateToDTO must be called with the session locked.
func stateToDTO(s *game.GameState) StateResponse {
	resp := StateResponse{
		GameID: s.ID,
		Screen: s.Screen.String(),
	}
	if g := s.Game; g != nil {
		resp.Current = g.Turn()
		resp.Update = g.Update
		resp.Picked = g.Picked
		resp.Play = g.Play
		resp.Players = make([]PlayerDTO, 0, len(g.Players()))
		for _, p := range g.Players() {
			resp.Players = append(resp.Players, playerToDTO(p))
		}
		if len(g.Players()) > 0 {
			resp.Board = g.String()
		}
	}
	if s.Result != nil {
		r := resultToDTO(*s.Result)
		resp.Result = &r
	}
	return resp
}
