package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. The jsonfile driver implements
// it over two flat files; the sub-repository split keeps services decoupled
// from the storage layout so a database driver could slot in later.
type Store interface {
	Users() Users
	Content() Content

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// List returns every user record, in stored order.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID returns a user by id.
	GetByID(ctx context.Context, id int) (domain.User, error)

	// GetByEmail matches case-insensitively; emails are unique up to case.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user, assigning id = max(existing ids)+1 and
	// rejecting duplicate emails with ErrAlreadyExists. Returns the
	// record with its assigned id.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Update replaces the record with the same id.
	Update(ctx context.Context, u domain.User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id int) error

	// TouchLastLogin stamps the user's lastLogin and persists.
	TouchLastLogin(ctx context.Context, id int, at time.Time) error
}

type Content interface {
	// All returns the whole content document.
	All(ctx context.Context) (domain.Document, error)

	// Section returns one top-level section value, or ErrNotFound.
	Section(ctx context.Context, name string) (json.RawMessage, error)

	// ReplaceAll overwrites the whole document.
	ReplaceAll(ctx context.Context, doc domain.Document) error

	// ReplaceSection overwrites one top-level key, preserving the rest.
	ReplaceSection(ctx context.Context, name string, value json.RawMessage) error
}
