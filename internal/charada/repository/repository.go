package repository

import (
	"context"
	"errors"

	"github.com/charadas/charadas-api/internal/charada"
)

var (
	ErrNotFound = errors.New("charada not found")
	// ErrDuplicate is returned by Insert when the key is already taken.
	ErrDuplicate = errors.New("charada key already exists")
)

// Repository is the document store contract for riddles and the ID counter.
type Repository interface {
	// List returns every stored riddle.
	List(ctx context.Context) ([]*charada.Charada, error)
	Get(ctx context.Context, key string) (*charada.Charada, error)
	// Insert stores a new riddle. An existing document under the same key is
	// never replaced.
	Insert(ctx context.Context, c *charada.Charada) error
	// Update replaces pergunta and resposta of an existing riddle.
	Update(ctx context.Context, key, pergunta, resposta string) error
	Delete(ctx context.Context, key string) error

	// NextID atomically increments the counter and returns the new value.
	// A missing counter starts at zero.
	NextID(ctx context.Context) (int64, error)
	// CurrentID returns the counter value, or zero when it was never seeded.
	CurrentID(ctx context.Context) (int64, error)
	// RaiseCounter sets the counter to max(current, id) and returns the result.
	// The counter never moves backwards.
	RaiseCounter(ctx context.Context, id int64) (int64, error)

	Ping(ctx context.Context) error
}
