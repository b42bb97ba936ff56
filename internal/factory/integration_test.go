package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/stats"
	"github.com/mcoot/boardnight/internal/services/store"
	"github.com/mcoot/boardnight/internal/services/suggest"
	"github.com/mcoot/boardnight/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.Store.Initialize(s.ctx)
}

// Test: planning a game night end to end, from scheduling to the leaderboard
func (s *IntegrationSuite) TestGameNightFlow() {
	players := s.app.Store.Players()
	s.Require().Len(players, 3)

	// Step 1: a new player joins the group
	morgan, err := s.app.Store.AddPlayer(s.ctx, "Morgan", "🦊")
	s.Require().NoError(err)

	// Step 2: pick a game for a party night of four
	ranked := suggest.Suggest(s.app.Store.Games(), model.VibeParty, 4, 0)
	s.Require().NotEmpty(ranked)
	pick := ranked[0]
	s.True(pick.HasVibe(model.VibeParty))

	// Step 3: schedule the session
	session, err := s.app.Store.AddSession(s.ctx, store.SessionParams{
		Date:      "2024-03-15",
		Time:      "19:00",
		Location:  "Alex's place",
		Vibe:      model.VibeParty,
		GameID:    pick.ID,
		PlayerIDs: []model.PlayerID{players[0].ID, players[1].ID, players[2].ID, morgan.ID},
	})
	s.Require().NoError(err)
	s.Equal(model.SessionScheduled, session.Status)

	// Step 4: the night happens, Morgan wins
	completed, err := s.app.Store.RecordResults(s.ctx, session.ID, []model.PlayerID{morgan.ID})
	s.Require().NoError(err)
	s.Equal(model.SessionCompleted, completed.Status)

	// Step 5: the leaderboard puts Morgan on top
	board := stats.Leaderboard(s.app.Store.Players())
	s.Equal("Morgan", board[0].Name)
	s.Equal(1, board[0].Wins)

	// Step 6: the stats views agree with the history
	pop := stats.VibePopularity(s.app.Store.Sessions(), model.Vibes())
	s.Equal(1, pop[model.VibeParty].Count)
	s.Equal(100, pop[model.VibeParty].Percentage)

	top := stats.TopGames(s.app.Store.Sessions(), s.app.Store.Games(), 0)
	s.Require().Len(top, 1)
	s.Equal(pick.ID, top[0].Game.ID)
}

// Test: the same state is visible after a restart over the same storage
func (s *IntegrationSuite) TestStateSurvivesRestart() {
	players := s.app.Store.Players()
	session, err := s.app.Store.AddSession(s.ctx, store.SessionParams{
		Date:      "2024-03-15",
		Time:      "19:00",
		Vibe:      model.VibeChill,
		GameID:    s.app.Store.Games()[0].ID,
		PlayerIDs: []model.PlayerID{players[0].ID, players[1].ID},
	})
	s.Require().NoError(err)
	_, err = s.app.Store.RecordResults(s.ctx, session.ID, []model.PlayerID{players[0].ID})
	s.Require().NoError(err)

	restarted := newWithDependencies(s.app.Storage, s.app.MockClock, s.app.MockRandom, testutil.NopLogger())
	restarted.Store.Initialize(s.ctx)

	s.Len(restarted.Store.Sessions(), 1)
	reloaded, err := restarted.Store.Player(players[0].ID)
	s.Require().NoError(err)
	s.Equal(1, reloaded.Wins)
}

// Test: queued mock ids are used for generated identifiers
func (s *IntegrationSuite) TestQueuedIdentifiers() {
	s.app.MockRandom.QueueString("MORGAN000001")

	morgan, err := s.app.Store.AddPlayer(s.ctx, "Morgan", "")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("MORGAN000001"), morgan.ID)
}

// Test: resetting the library keeps history but reinstalls the seed entities
func (s *IntegrationSuite) TestLibraryResetFlow() {
	players := s.app.Store.Players()
	_, err := s.app.Store.AddSession(s.ctx, store.SessionParams{
		Date:      "2024-03-15",
		Time:      "19:00",
		Vibe:      model.VibeChill,
		GameID:    s.app.Store.Games()[0].ID,
		PlayerIDs: []model.PlayerID{players[0].ID, players[1].ID},
	})
	s.Require().NoError(err)

	_, err = s.app.Store.AddGame(s.ctx, store.GameParams{
		Title: "Root", MinPlayers: 2, MaxPlayers: 4, Weight: model.WeightHeavy,
	})
	s.Require().NoError(err)

	s.app.Store.ResetLibrary(s.ctx)

	s.Len(s.app.Store.Games(), 6)
	s.Len(s.app.Store.Players(), 3)
	s.Len(s.app.Store.Sessions(), 1)
}
