package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestLoadPlayersNoData() {
	_, err := s.storage.LoadPlayers(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
}

func (s *StorageSuite) TestSaveAndLoadPlayers() {
	players := []model.Player{
		{ID: "player-1", Name: "Alex", Emoji: "🎲", Color: "hsl(10, 65%, 55%)", Wins: 2},
		{ID: "player-2", Name: "Sam", Emoji: "🔥", Color: "hsl(20, 65%, 55%)"},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	retrieved, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(players, retrieved)
}

func (s *StorageSuite) TestSaveEmptyPlayersIsNotNoData() {
	err := s.storage.SavePlayers(s.ctx, []model.Player{})
	s.Require().NoError(err)

	retrieved, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(retrieved)
}

func (s *StorageSuite) TestLoadPlayersReturnsCopy() {
	players := []model.Player{{ID: "player-1", Name: "Alex"}}
	_ = s.storage.SavePlayers(s.ctx, players)

	retrieved, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	retrieved[0].Name = "Changed"

	again, err := s.storage.LoadPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal("Alex", again[0].Name)
}

// Game tests

func (s *StorageSuite) TestLoadGamesNoData() {
	_, err := s.storage.LoadGames(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
}

func (s *StorageSuite) TestSaveAndLoadGames() {
	games := []model.Game{
		{
			ID:         "game-1",
			Title:      "Codenames",
			MinPlayers: 4,
			MaxPlayers: 8,
			Duration:   20,
			Vibes:      []model.Vibe{model.VibeParty, model.VibeSocial},
			Weight:     model.WeightLight,
		},
	}

	err := s.storage.SaveGames(s.ctx, games)
	s.Require().NoError(err)

	retrieved, err := s.storage.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(games, retrieved)
}

func (s *StorageSuite) TestLoadGamesCopiesVibes() {
	games := []model.Game{
		{ID: "game-1", Title: "Azul", Vibes: []model.Vibe{model.VibeStrategic}},
	}
	_ = s.storage.SaveGames(s.ctx, games)

	retrieved, err := s.storage.LoadGames(s.ctx)
	s.Require().NoError(err)
	retrieved[0].Vibes[0] = model.VibeChaotic

	again, err := s.storage.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.VibeStrategic, again[0].Vibes[0])
}

// Session tests

func (s *StorageSuite) TestLoadSessionsNoData() {
	_, err := s.storage.LoadSessions(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
}

func (s *StorageSuite) TestSaveAndLoadSessions() {
	sessions := []model.Session{
		{
			ID:        "session-1",
			Date:      "2024-03-15",
			Time:      "19:00",
			Location:  "Alex's place",
			Vibe:      model.VibeChill,
			GameID:    "game-1",
			PlayerIDs: []model.PlayerID{"player-1", "player-2"},
			Status:    model.SessionScheduled,
		},
	}

	err := s.storage.SaveSessions(s.ctx, sessions)
	s.Require().NoError(err)

	retrieved, err := s.storage.LoadSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(sessions, retrieved)
}

func (s *StorageSuite) TestLoadSessionsCopiesResults() {
	sessions := []model.Session{
		{
			ID:        "session-1",
			Date:      "2024-03-15",
			Time:      "19:00",
			Vibe:      model.VibeChill,
			GameID:    "game-1",
			PlayerIDs: []model.PlayerID{"player-1", "player-2"},
			Status:    model.SessionCompleted,
			Results:   &model.SessionResults{WinnerIDs: []model.PlayerID{"player-1"}},
		},
	}
	_ = s.storage.SaveSessions(s.ctx, sessions)

	retrieved, err := s.storage.LoadSessions(s.ctx)
	s.Require().NoError(err)
	retrieved[0].Results.WinnerIDs[0] = "player-2"

	again, err := s.storage.LoadSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), again[0].Results.WinnerIDs[0])
}

// Reset tests

func (s *StorageSuite) TestReset() {
	_ = s.storage.SavePlayers(s.ctx, []model.Player{{ID: "player-1", Name: "Alex"}})
	_ = s.storage.SaveGames(s.ctx, []model.Game{{ID: "game-1", Title: "Azul"}})
	_ = s.storage.SaveSessions(s.ctx, []model.Session{{ID: "session-1"}})

	err := s.storage.Reset(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.LoadPlayers(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
	_, err = s.storage.LoadGames(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
	_, err = s.storage.LoadSessions(s.ctx)
	s.ErrorIs(err, storage.ErrNoData)
}
