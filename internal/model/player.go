package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultEmoji is the placeholder glyph for players without one
const DefaultEmoji = "🙂"

// Player represents a game-night regular.
//
// Wins is a cached count derived from completed sessions; session history is
// the source of truth. The store recomputes it after every session mutation.
type Player struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
	Color string   `json:"color"`
	Wins  int      `json:"wins"`
}
