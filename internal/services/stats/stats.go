// Package stats derives read-only aggregate views from the entity
// collections. Every view is recomputed from scratch on each call; the
// collections are small and full recomputation keeps the derived data
// trivially consistent with the session history.
package stats

import (
	"math"
	"sort"

	"github.com/mcoot/boardnight/internal/model"
)

// DefaultTopGames is the number of entries TopGames returns by default
const DefaultTopGames = 6

// RecalcWins zeroes every player's win count and re-sums it from completed
// sessions, in place. Winner ids that no longer resolve to a player are
// skipped. The function is idempotent over unchanged session data.
func RecalcWins(players []model.Player, sessions []model.Session) {
	byID := make(map[model.PlayerID]int, len(players))
	for i := range players {
		players[i].Wins = 0
		byID[players[i].ID] = i
	}

	for i := range sessions {
		s := &sessions[i]
		if s.Status != model.SessionCompleted || s.Results == nil {
			continue
		}
		for _, wid := range s.Results.WinnerIDs {
			if idx, ok := byID[wid]; ok {
				players[idx].Wins++
			}
		}
	}
}

// Leaderboard orders players by wins descending, ties broken by name
// ascending. The input is not modified.
func Leaderboard(players []model.Player) []model.Player {
	ranked := make([]model.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// VibeCount is one histogram bucket of the vibe popularity view
type VibeCount struct {
	Count      int
	Percentage int
}

// VibePopularity counts sessions per enumerated vibe. Sessions with no vibe
// or an unrecognized one fall in no bucket. Percentages are of the counted
// total and round to the nearest integer; with no counted sessions every
// bucket reports zero.
func VibePopularity(sessions []model.Session, vibes []model.Vibe) map[model.Vibe]VibeCount {
	counts := make(map[model.Vibe]int, len(vibes))
	for _, v := range vibes {
		counts[v] = 0
	}

	total := 0
	for i := range sessions {
		if _, ok := counts[sessions[i].Vibe]; ok {
			counts[sessions[i].Vibe]++
			total++
		}
	}

	result := make(map[model.Vibe]VibeCount, len(vibes))
	for _, v := range vibes {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[v]) / float64(total) * 100))
		}
		result[v] = VibeCount{Count: counts[v], Percentage: pct}
	}
	return result
}

// GamePlays pairs a game with how many sessions feature it
type GamePlays struct {
	Game  model.Game
	Count int
}

// TopGames ranks games by session appearances, most played first, returning
// at most limit entries. Sessions whose game id no longer resolves are
// excluded; games never played are too. Ties keep library order. A limit
// below 1 falls back to DefaultTopGames.
func TopGames(sessions []model.Session, games []model.Game, limit int) []GamePlays {
	if limit < 1 {
		limit = DefaultTopGames
	}

	counts := make(map[model.GameID]int)
	for i := range sessions {
		if sessions[i].GameID != "" {
			counts[sessions[i].GameID]++
		}
	}

	var ranked []GamePlays
	for _, g := range games {
		if counts[g.ID] > 0 {
			ranked = append(ranked, GamePlays{Game: g, Count: counts[g.ID]})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// History orders sessions most recent first by their combined date and time.
// The input is not modified.
func History(sessions []model.Session) []model.Session {
	ordered := make([]model.Session, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartsAt().After(ordered[j].StartsAt())
	})
	return ordered
}
