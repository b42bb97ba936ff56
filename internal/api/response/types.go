package response

import (
	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/stats"
)

// PlayerResponse is the API shape of a player
type PlayerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Wins  int    `json:"wins"`
}

// PlayerFromModel converts a model player to its API shape
func PlayerFromModel(p model.Player) PlayerResponse {
	return PlayerResponse{
		ID:    string(p.ID),
		Name:  p.Name,
		Emoji: p.Emoji,
		Color: p.Color,
		Wins:  p.Wins,
	}
}

// PlayersFromModel converts a player collection
func PlayersFromModel(players []model.Player) []PlayerResponse {
	out := make([]PlayerResponse, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// GameResponse is the API shape of a game
type GameResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	Duration   int      `json:"duration"`
	Vibes      []string `json:"vibes"`
	Weight     string   `json:"weight"`
	Notes      string   `json:"notes"`
}

// GameFromModel converts a model game to its API shape
func GameFromModel(g model.Game) GameResponse {
	vibes := make([]string, len(g.Vibes))
	for i, v := range g.Vibes {
		vibes[i] = string(v)
	}
	return GameResponse{
		ID:         string(g.ID),
		Title:      g.Title,
		MinPlayers: g.MinPlayers,
		MaxPlayers: g.MaxPlayers,
		Duration:   g.Duration,
		Vibes:      vibes,
		Weight:     string(g.Weight),
		Notes:      g.Notes,
	}
}

// GamesFromModel converts a game collection
func GamesFromModel(games []model.Game) []GameResponse {
	out := make([]GameResponse, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// SessionResponse is the API shape of a session
type SessionResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
	Vibe      string   `json:"vibe"`
	PlayerIDs []string `json:"player_ids"`
	GameID    string   `json:"game_id"`
	Status    string   `json:"status"`
	WinnerIDs []string `json:"winner_ids,omitempty"`
}

// SessionFromModel converts a model session to its API shape
func SessionFromModel(s model.Session) SessionResponse {
	playerIDs := make([]string, len(s.PlayerIDs))
	for i, pid := range s.PlayerIDs {
		playerIDs[i] = string(pid)
	}
	resp := SessionResponse{
		ID:        string(s.ID),
		Date:      s.Date,
		Time:      s.Time,
		Location:  s.Location,
		Vibe:      string(s.Vibe),
		PlayerIDs: playerIDs,
		GameID:    string(s.GameID),
		Status:    string(s.Status),
	}
	if s.Results != nil {
		winnerIDs := make([]string, len(s.Results.WinnerIDs))
		for i, wid := range s.Results.WinnerIDs {
			winnerIDs[i] = string(wid)
		}
		resp.WinnerIDs = winnerIDs
	}
	return resp
}

// SessionsFromModel converts a session collection
func SessionsFromModel(sessions []model.Session) []SessionResponse {
	out := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = SessionFromModel(s)
	}
	return out
}

// VibeCountResponse is one bucket of the vibe popularity histogram
type VibeCountResponse struct {
	Vibe       string `json:"vibe"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// VibePopularityFromModel flattens the histogram into display order
func VibePopularityFromModel(counts map[model.Vibe]stats.VibeCount) []VibeCountResponse {
	vibes := model.Vibes()
	out := make([]VibeCountResponse, len(vibes))
	for i, v := range vibes {
		out[i] = VibeCountResponse{
			Vibe:       string(v),
			Count:      counts[v].Count,
			Percentage: counts[v].Percentage,
		}
	}
	return out
}

// GamePlaysResponse pairs a game with its session count
type GamePlaysResponse struct {
	Game  GameResponse `json:"game"`
	Count int          `json:"count"`
}

// TopGamesFromModel converts the top-games ranking
func TopGamesFromModel(ranked []stats.GamePlays) []GamePlaysResponse {
	out := make([]GamePlaysResponse, len(ranked))
	for i, gp := range ranked {
		out[i] = GamePlaysResponse{Game: GameFromModel(gp.Game), Count: gp.Count}
	}
	return out
}
