package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Each
// collection is one JSON value under the boardnight key namespace.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := s.load(ctx, playersKey(), &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return s.save(ctx, playersKey(), players)
}

func (s *Storage) LoadGames(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := s.load(ctx, gamesKey(), &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Storage) SaveGames(ctx context.Context, games []model.Game) error {
	return s.save(ctx, gamesKey(), games)
}

func (s *Storage) LoadSessions(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := s.load(ctx, sessionsKey(), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Storage) SaveSessions(ctx context.Context, sessions []model.Session) error {
	return s.save(ctx, sessionsKey(), sessions)
}

// Reset deletes every key in the boardnight namespace
func (s *Storage) Reset(ctx context.Context) error {
	return s.client.Del(ctx, namespaceKeys()...).Err()
}

func (s *Storage) load(ctx context.Context, key string, target any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return storage.ErrNoData
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Storage) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	// No TTL: planner data is kept until explicitly reset
	return s.client.Set(ctx, key, data, 0).Err()
}
