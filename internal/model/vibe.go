package model

// Vibe is one tag from the fixed list describing a session's desired mood.
// Games may carry several, a session carries at most one.
type Vibe string

const (
	VibeChill       Vibe = "Chill"
	VibeStrategic   Vibe = "Strategic"
	VibeParty       Vibe = "Party"
	VibeCompetitive Vibe = "Competitive"
	VibeCooperative Vibe = "Cooperative"
	VibeChaotic     Vibe = "Chaotic"
	VibeSocial      Vibe = "Social"
	VibeCreative    Vibe = "Creative"
)

// Vibes returns the fixed vibe list in display order
func Vibes() []Vibe {
	return []Vibe{
		VibeChill,
		VibeStrategic,
		VibeParty,
		VibeCompetitive,
		VibeCooperative,
		VibeChaotic,
		VibeSocial,
		VibeCreative,
	}
}

// ValidVibe reports whether v is one of the enumerated vibes
func ValidVibe(v Vibe) bool {
	for _, known := range Vibes() {
		if v == known {
			return true
		}
	}
	return false
}
