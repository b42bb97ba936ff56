package request

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// RenamePlayerRequest is the request body for renaming a player
type RenamePlayerRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for adding a game to the library
type CreateGameRequest struct {
	Title      string   `json:"title"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	Duration   int      `json:"duration,omitempty"`
	Vibes      []string `json:"vibes,omitempty"`
	Weight     string   `json:"weight"`
	Notes      string   `json:"notes,omitempty"`
}

// RenameGameRequest is the request body for retitling a game
type RenameGameRequest struct {
	Title string `json:"title"`
}

// CreateSessionRequest is the request body for scheduling a session
type CreateSessionRequest struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location,omitempty"`
	Vibe      string   `json:"vibe,omitempty"`
	GameID    string   `json:"game_id"`
	PlayerIDs []string `json:"player_ids"`
}

// RecordResultsRequest is the request body for completing a session
type RecordResultsRequest struct {
	WinnerIDs []string `json:"winner_ids"`
}
