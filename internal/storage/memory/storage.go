package memory

import (
	"context"
	"sync"

	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Collections are copied on the way in and out so callers never share
// backing arrays with the stored state.
type Storage struct {
	mu sync.RWMutex

	players  []model.Player
	games    []model.Game
	sessions []model.Session

	hasPlayers  bool
	hasGames    bool
	hasSessions bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasPlayers {
		return nil, storage.ErrNoData
	}
	return append([]model.Player(nil), s.players...), nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append([]model.Player(nil), players...)
	s.hasPlayers = true
	return nil
}

func (s *Storage) LoadGames(ctx context.Context) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasGames {
		return nil, storage.ErrNoData
	}
	games := make([]model.Game, len(s.games))
	for i, g := range s.games {
		games[i] = g
		games[i].Vibes = append([]model.Vibe(nil), g.Vibes...)
	}
	return games, nil
}

func (s *Storage) SaveGames(ctx context.Context, games []model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.Game, len(games))
	for i, g := range games {
		stored[i] = g
		stored[i].Vibes = append([]model.Vibe(nil), g.Vibes...)
	}
	s.games = stored
	s.hasGames = true
	return nil
}

func (s *Storage) LoadSessions(ctx context.Context) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSessions {
		return nil, storage.ErrNoData
	}
	sessions := make([]model.Session, len(s.sessions))
	for i := range s.sessions {
		sessions[i] = s.sessions[i].Clone()
	}
	return sessions, nil
}

func (s *Storage) SaveSessions(ctx context.Context, sessions []model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.Session, len(sessions))
	for i := range sessions {
		stored[i] = sessions[i].Clone()
	}
	s.sessions = stored
	s.hasSessions = true
	return nil
}

func (s *Storage) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.games = nil
	s.sessions = nil
	s.hasPlayers = false
	s.hasGames = false
	s.hasSessions = false
	return nil
}

func (s *Storage) Close() error {
	return nil
}
