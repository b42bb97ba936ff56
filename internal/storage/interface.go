package storage

import (
	"context"
	"errors"

	"github.com/mcoot/boardnight/internal/model"
)

// ErrNoData indicates the backing medium has nothing stored under the
// requested key. Callers treat it as "use the fallback", not as a failure.
var ErrNoData = errors.New("no stored data")

// Storage defines the interface for durable persistence of the three entity
// collections. Each collection is an independent entry; there is no cross-key
// transaction, so a failed write to one collection does not roll back another.
type Storage interface {
	LoadPlayers(ctx context.Context) ([]model.Player, error)
	SavePlayers(ctx context.Context, players []model.Player) error

	LoadGames(ctx context.Context) ([]model.Game, error)
	SaveGames(ctx context.Context, games []model.Game) error

	LoadSessions(ctx context.Context) ([]model.Session, error)
	SaveSessions(ctx context.Context, sessions []model.Session) error

	// Reset removes every entry in the storage namespace
	Reset(ctx context.Context) error

	Close() error
}
