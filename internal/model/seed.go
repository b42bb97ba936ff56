package model

// Snapshot is the full state across all three collections, in the shape used
// for persistence export.
type Snapshot struct {
	Players  []Player  `json:"players"`
	Games    []Game    `json:"games"`
	Sessions []Session `json:"sessions"`
}

// Seed builds the demonstration data installed on first run: a starter game
// library and three example players, with no session history. nextID supplies
// fresh identifiers.
func Seed(nextID func() string) Snapshot {
	games := []Game{
		{ID: GameID(nextID()), Title: "Codenames", MinPlayers: 4, MaxPlayers: 8, Duration: 30,
			Vibes: []Vibe{VibeParty, VibeSocial, VibeCreative}, Weight: WeightLight},
		{ID: GameID(nextID()), Title: "Azul", MinPlayers: 2, MaxPlayers: 4, Duration: 40,
			Vibes: []Vibe{VibeChill, VibeStrategic}, Weight: WeightLight},
		{ID: GameID(nextID()), Title: "Ticket to Ride", MinPlayers: 2, MaxPlayers: 5, Duration: 60,
			Vibes: []Vibe{VibeChill, VibeStrategic}, Weight: WeightMedium},
		{ID: GameID(nextID()), Title: "Just One", MinPlayers: 3, MaxPlayers: 7, Duration: 25,
			Vibes: []Vibe{VibeParty, VibeCooperative, VibeSocial}, Weight: WeightLight},
		{ID: GameID(nextID()), Title: "The Resistance: Avalon", MinPlayers: 5, MaxPlayers: 10, Duration: 45,
			Vibes: []Vibe{VibeChaotic, VibeParty, VibeCompetitive}, Weight: WeightMedium},
		{ID: GameID(nextID()), Title: "Splendor", MinPlayers: 2, MaxPlayers: 4, Duration: 30,
			Vibes: []Vibe{VibeStrategic, VibeChill}, Weight: WeightLight},
	}

	players := []Player{
		{ID: PlayerID(nextID()), Name: "Alex", Emoji: "🎲", Color: ColorFromName("Alex")},
		{ID: PlayerID(nextID()), Name: "Sam", Emoji: "🔥", Color: ColorFromName("Sam")},
		{ID: PlayerID(nextID()), Name: "Jamie", Emoji: "✨", Color: ColorFromName("Jamie")},
	}

	return Snapshot{
		Players:  players,
		Games:    games,
		Sessions: []Session{},
	}
}
