package store

import (
	"context"
	"errors"

	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrUnknownField  = errors.New("store: unknown preference field")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if this ever outgrows a single file) implement this. It exposes
// sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Preferences() Preferences
	Games() Games

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes like signup, which must not
	// leave a user row without its preference row.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername resolves the unique username. Returns ErrNotFound
	// for unknown usernames.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on a username collision.
	CreateUser(ctx context.Context, u domain.User) error
}

type Preferences interface {
	// GetByUserID returns the preference profile for a user.
	GetByUserID(ctx context.Context, userID string) (domain.PreferenceProfile, error)

	// Create inserts the preference row. Exactly one row per user id; the
	// caller runs this in the same transaction as CreateUser.
	Create(ctx context.Context, p domain.PreferenceProfile) error

	// UpdateFields applies a partial set of column/value pairs. Column names
	// are checked against an explicit whitelist; unknown names return
	// ErrUnknownField before any SQL is built. The update is whole-or-nothing
	// across all supplied fields.
	UpdateFields(ctx context.Context, userID string, updates map[string]any) error
}

type Games interface {
	// ListGames returns the full catalog in id order.
	ListGames(ctx context.Context) ([]domain.Game, error)
}
