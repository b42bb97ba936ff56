package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case Session:
		o.printSession(v)
	case []Session:
		o.printSessions(v)
	case []VibeStat:
		o.printVibeStats(v)
	case []GamePlays:
		o.printGamePlays(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Wins  int    `json:"wins"`
}

// Game response type
type Game struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	Duration   int      `json:"duration"`
	Vibes      []string `json:"vibes"`
	Weight     string   `json:"weight"`
	Notes      string   `json:"notes,omitempty"`
}

// Session response type
type Session struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location,omitempty"`
	Vibe      string   `json:"vibe"`
	GameID    string   `json:"game_id"`
	PlayerIDs []string `json:"player_ids"`
	Status    string   `json:"status"`
	WinnerIDs []string `json:"winner_ids,omitempty"`
}

// VibeStat response type
type VibeStat struct {
	Vibe       string `json:"vibe"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// GamePlays response type
type GamePlays struct {
	Game  Game `json:"game"`
	Count int  `json:"count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.Emoji, p.Name, p.ID)
	fmt.Printf("Color: %s\n", p.Color)
	fmt.Printf("Wins: %d\n", p.Wins)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		winsStr := ""
		if p.Wins > 0 {
			winsStr = fmt.Sprintf(" - %d wins", p.Wins)
		}
		fmt.Printf("  %s %s (%s)%s\n", p.Emoji, p.Name, p.ID, winsStr)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Title, g.ID)
	fmt.Printf("Players: %d-%d\n", g.MinPlayers, g.MaxPlayers)
	fmt.Printf("Duration: %d min\n", g.Duration)
	fmt.Printf("Weight: %s\n", g.Weight)
	fmt.Printf("Vibes: %s\n", strings.Join(g.Vibes, ", "))
	if g.Notes != "" {
		fmt.Printf("Notes: %s\n", g.Notes)
	}
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s (%s) - %d-%d players, %d min, %s\n",
			g.Title, g.ID, g.MinPlayers, g.MaxPlayers, g.Duration, g.Weight)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("When: %s %s\n", s.Date, s.Time)
	if s.Location != "" {
		fmt.Printf("Where: %s\n", s.Location)
	}
	fmt.Printf("Vibe: %s\n", s.Vibe)
	fmt.Printf("Game: %s\n", s.GameID)
	fmt.Printf("Players: %s\n", strings.Join(s.PlayerIDs, ", "))
	fmt.Printf("Status: %s\n", s.Status)
	if len(s.WinnerIDs) > 0 {
		fmt.Printf("Winners: %s\n", strings.Join(s.WinnerIDs, ", "))
	}
}

func (o *Output) printSessions(sessions []Session) {
	fmt.Printf("Sessions (%d):\n", len(sessions))
	for _, s := range sessions {
		winners := ""
		if len(s.WinnerIDs) > 0 {
			winners = fmt.Sprintf(" - winners: %s", strings.Join(s.WinnerIDs, ", "))
		}
		fmt.Printf("  %s %s (%s) - %s, %d players [%s]%s\n",
			s.Date, s.Time, s.ID, s.Vibe, len(s.PlayerIDs), s.Status, winners)
	}
}

func (o *Output) printVibeStats(stats []VibeStat) {
	fmt.Println("Vibe popularity:")
	for _, v := range stats {
		fmt.Printf("  %s: %d (%d%%)\n", v.Vibe, v.Count, v.Percentage)
	}
}

func (o *Output) printGamePlays(plays []GamePlays) {
	fmt.Println("Most played:")
	for i, p := range plays {
		fmt.Printf("  %d. %s - %d plays\n", i+1, p.Game.Title, p.Count)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
