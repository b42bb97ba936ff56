package model

import "fmt"

// ColorFromName derives a stable HSL color from a player name. The hue comes
// from a 32-bit string hash so the same name always gets the same color;
// saturation and lightness are fixed to keep the palette readable.
func ColorFromName(name string) string {
	if name == "" {
		name = "X"
	}
	var hash int32
	for _, r := range name {
		hash = int32(r) + (hash << 5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	return fmt.Sprintf("hsl(%d, 65%%, 55%%)", hash%360)
}
