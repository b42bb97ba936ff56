// Package suggest ranks candidate games for a prospective session. It is
// pure over its inputs: nothing here reads or mutates the store, so it is
// safe to call on every selection change.
package suggest

import (
	"sort"

	"github.com/mcoot/boardnight/internal/model"
)

// DefaultLimit is the number of suggestions returned when the caller does
// not ask for a specific count
const DefaultLimit = 6

// Scoring weights. A vibe match dominates, a player-count fit helps, and
// out-of-range counts are penalized by how far off they are (capped).
const (
	vibeMatchScore     = 5
	countFitScore      = 3
	maxDistancePenalty = 3
	lightGameBonus     = 1
	largeGroupSize     = 5
)

// ScoreGame scores a single game against the desired vibe and player count.
// A zero vibe or count means "unspecified" and contributes nothing.
func ScoreGame(game model.Game, vibe model.Vibe, count int) int {
	score := 0

	if vibe != "" && game.HasVibe(vibe) {
		score += vibeMatchScore
	}

	if count > 0 {
		if game.FitsPlayerCount(count) {
			score += countFitScore
		} else {
			dist := 0
			if count < game.MinPlayers {
				dist = game.MinPlayers - count
			}
			if count > game.MaxPlayers {
				dist = count - game.MaxPlayers
			}
			if dist > maxDistancePenalty {
				dist = maxDistancePenalty
			}
			score -= dist
		}

		// Larger groups lean toward lighter games
		if count >= largeGroupSize && game.Weight != model.WeightHeavy {
			score += lightGameBonus
		}
	}

	return score
}

// Suggest scores every game and returns at most limit of them, best first.
// Equal scores keep the relative order of the input. A limit below 1 falls
// back to DefaultLimit.
func Suggest(games []model.Game, vibe model.Vibe, count, limit int) []model.Game {
	if limit < 1 {
		limit = DefaultLimit
	}

	ranked := make([]model.Game, len(games))
	copy(ranked, games)

	scores := make(map[model.GameID]int, len(games))
	for _, g := range games {
		scores[g.ID] = ScoreGame(g, vibe, count)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
