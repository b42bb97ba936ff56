package model

// GameID uniquely identifies a game in the library
type GameID string

// Weight is a game's complexity tier
type Weight string

const (
	WeightLight  Weight = "Light"
	WeightMedium Weight = "Medium"
	WeightHeavy  Weight = "Heavy"
)

// ValidWeight reports whether w is one of the defined tiers
func ValidWeight(w Weight) bool {
	switch w {
	case WeightLight, WeightMedium, WeightHeavy:
		return true
	}
	return false
}

// Game is a library entry. Duration is in minutes, zero meaning unset.
type Game struct {
	ID         GameID `json:"id"`
	Title      string `json:"title"`
	MinPlayers int    `json:"minPlayers"`
	MaxPlayers int    `json:"maxPlayers"`
	Duration   int    `json:"duration"`
	Vibes      []Vibe `json:"vibes"`
	Weight     Weight `json:"weight"`
	Notes      string `json:"notes"`
}

// HasVibe reports whether the game carries the given vibe tag
func (g *Game) HasVibe(v Vibe) bool {
	for _, gv := range g.Vibes {
		if gv == v {
			return true
		}
	}
	return false
}

// FitsPlayerCount reports whether count is within the game's player range
func (g *Game) FitsPlayerCount(count int) bool {
	return count >= g.MinPlayers && count <= g.MaxPlayers
}
