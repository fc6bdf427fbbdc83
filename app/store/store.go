package store

import (
	"context"

	"github.com/gorlea-ink/gorlea/pkg/sqlstore"
	"github.com/gorlea-ink/gorlea/pkg/types"
)

// EntryStore persists journal entries. Entries never change after creation,
// so there is no update path.
type EntryStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Entry) error
	Get(ctx context.Context, userID, id string) (*types.Entry, error)
	// ListByOwner returns the owner's entries newest first regardless of
	// what order the backend hands them back in.
	ListByOwner(ctx context.Context, userID string, page, pageSize uint64) ([]types.Entry, error)
	Total(ctx context.Context, userID string) (int64, error)
	// Delete removes a single entry, scoped to its owner.
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) error
}

// MemoryStore keeps at most one memory profile per user.
type MemoryStore interface {
	sqlstore.SqlCommons
	// Load returns nil without error when the user has no profile yet.
	Load(ctx context.Context, userID string) (*types.MemoryProfile, error)
	// Save overwrites the whole profile document.
	Save(ctx context.Context, data types.MemoryProfile) error
	Delete(ctx context.Context, userID string) error
}

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, id, name, email string) error
	UpdateUserPassword(ctx context.Context, id, salt, password string) error
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error)
	GetAccessTokenByID(ctx context.Context, userID string, id int64) (*types.AccessToken, error)
	ListAccessTokens(ctx context.Context, userID string, page, pageSize uint64) ([]types.AccessToken, error)
	Delete(ctx context.Context, userID string, id int64) error
	ClearUserTokens(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before int64) (int64, error)
}

// Store is the provider surface the logic layer depends on. Tests swap in
// in-memory fakes behind it.
type Store interface {
	Transaction(ctx context.Context, next func(ctx context.Context) error) error

	EntryStore() EntryStore
	MemoryStore() MemoryStore
	UserStore() UserStore
	AccessTokenStore() AccessTokenStore
}
