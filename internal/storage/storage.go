package storage

import (
	"context"
	"errors"

	"github.com/ryoumen0412/RollForge/internal/dnd"
)

// ErrNotFound indicates a requested character is missing.
var ErrNotFound = errors.New("character not found")

// Store persists character records keyed by id. Implementations are
// expected to serialize access to their backing file themselves; callers
// treat every method as synchronous.
type Store interface {
	Put(ctx context.Context, c *dnd.Character) error
	// PutAll stores a batch in one write (one transaction for SQLite,
	// one file rewrite for the JSON store). Used by import.
	PutAll(ctx context.Context, cs []*dnd.Character) error
	Get(ctx context.Context, id string) (*dnd.Character, error)
	// List returns every readable character sorted by name. Malformed
	// records are skipped with a warning, not fatal for the whole load.
	List(ctx context.Context) ([]*dnd.Character, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Close() error
}
