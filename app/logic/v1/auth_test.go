package v1

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gorlea-ink/gorlea/app/store"
	"github.com/gorlea-ink/gorlea/pkg/auth"
	"github.com/gorlea-ink/gorlea/pkg/security"
	"github.com/gorlea-ink/gorlea/pkg/types"
)

type fakeUserStore struct {
	users map[string]types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]types.User)}
}

func (f *fakeUserStore) GetTable(key ...interface{}) string { return "user" }

func (f *fakeUserStore) Create(ctx context.Context, data types.User) error {
	f.users[data.ID] = data
	return nil
}

func (f *fakeUserStore) GetUser(ctx context.Context, id string) (*types.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) UpdateUserProfile(ctx context.Context, id, name, email string) error {
	u := f.users[id]
	u.Name = name
	u.Email = email
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) UpdateUserPassword(ctx context.Context, id, salt, password string) error {
	u := f.users[id]
	u.Salt = salt
	u.Password = password
	f.users[id] = u
	return nil
}

type fakeAccessTokenStore struct {
	tokens map[int64]types.AccessToken
}

func newFakeAccessTokenStore() *fakeAccessTokenStore {
	return &fakeAccessTokenStore{tokens: make(map[int64]types.AccessToken)}
}

func (f *fakeAccessTokenStore) GetTable(key ...interface{}) string { return "access_token" }

func (f *fakeAccessTokenStore) Create(ctx context.Context, data types.AccessToken) error {
	f.tokens[data.ID] = data
	return nil
}

func (f *fakeAccessTokenStore) GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error) {
	for _, t := range f.tokens {
		if t.Token == token {
			return &t, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAccessTokenStore) GetAccessTokenByID(ctx context.Context, userID string, id int64) (*types.AccessToken, error) {
	t, ok := f.tokens[id]
	if !ok || t.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (f *fakeAccessTokenStore) ListAccessTokens(ctx context.Context, userID string, page, pageSize uint64) ([]types.AccessToken, error) {
	var list []types.AccessToken
	for _, t := range f.tokens {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeAccessTokenStore) Delete(ctx context.Context, userID string, id int64) error {
	t, ok := f.tokens[id]
	if ok && t.UserID == userID {
		delete(f.tokens, id)
	}
	return nil
}

func (f *fakeAccessTokenStore) ClearUserTokens(ctx context.Context, userID string) error {
	for id, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, id)
		}
	}
	return nil
}

func (f *fakeAccessTokenStore) DeleteExpired(ctx context.Context, before int64) (int64, error) {
	var affected int64
	for id, t := range f.tokens {
		if t.ExpiresAt < before {
			delete(f.tokens, id)
			affected++
		}
	}
	return affected, nil
}

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Del(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newTestAuthedUserLogic(st store.Store, cache types.Cache, userID string) *AuthedUserLogic {
	claims := security.NewTokenClaims("gorlea", userID, 0)
	return &AuthedUserLogic{
		ctx:      context.Background(),
		UserInfo: &_userInfo{u: &claims},
		store:    st,
		cache:    cache,
	}
}

func seedToken(t *testing.T, st *fakeStore, cache types.Cache, id int64, userID, token string) {
	t.Helper()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour).Unix()
	assert.NoError(t, st.token.Create(ctx, types.AccessToken{
		ID:        id,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}))
	assert.NoError(t, auth.CacheToken(ctx, token, types.UserTokenMeta{
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, cache))
}

func TestDelAccessTokenDropsCachedCopy(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	cache := newFakeCache()
	seedToken(t, st, cache, 1, "u1", "tok-1")

	// sanity: the cached copy authenticates before revocation
	meta, err := auth.ValidateTokenFromCache(ctx, "tok-1", cache)
	assert.NoError(t, err)
	assert.Equal(t, "u1", meta.UserID)

	l := newTestAuthedUserLogic(st, cache, "u1")
	assert.NoError(t, l.DelAccessToken(1))

	// gone from the store and from the cache
	_, err = st.token.GetAccessToken(ctx, "tok-1")
	assert.Equal(t, sql.ErrNoRows, err)
	_, err = auth.ValidateTokenFromCache(ctx, "tok-1", cache)
	assert.Error(t, err)
}

func TestDelAccessTokenScopedToOwner(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	cache := newFakeCache()
	seedToken(t, st, cache, 1, "owner", "tok-owner")

	intruder := newTestAuthedUserLogic(st, cache, "intruder")
	assert.NoError(t, intruder.DelAccessToken(1))

	// someone else's token survives, cached copy included
	_, err := st.token.GetAccessToken(ctx, "tok-owner")
	assert.NoError(t, err)
	_, err = auth.ValidateTokenFromCache(ctx, "tok-owner", cache)
	assert.NoError(t, err)
}

func TestLogoutRevokesEveryToken(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	cache := newFakeCache()
	seedToken(t, st, cache, 1, "u1", "tok-1")
	seedToken(t, st, cache, 2, "u1", "tok-2")
	seedToken(t, st, cache, 3, "other", "tok-other")

	l := newTestAuthedUserLogic(st, cache, "u1")
	assert.NoError(t, l.Logout())

	for _, token := range []string{"tok-1", "tok-2"} {
		_, err := st.token.GetAccessToken(ctx, token)
		assert.Equal(t, sql.ErrNoRows, err)
		_, err = auth.ValidateTokenFromCache(ctx, token, cache)
		assert.Error(t, err)
	}

	// other users keep theirs
	_, err := auth.ValidateTokenFromCache(ctx, "tok-other", cache)
	assert.NoError(t, err)
}

func TestGetUserIncludesEntryTotal(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	assert.NoError(t, st.user.Create(ctx, types.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}))
	assert.NoError(t, st.entry.Create(ctx, types.Entry{ID: "e1", UserID: "u1", Content: "one"}))
	assert.NoError(t, st.entry.Create(ctx, types.Entry{ID: "e2", UserID: "u1", Content: "two"}))

	l := newTestAuthedUserLogic(st, newFakeCache(), "u1")
	info, err := l.GetUser()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), info.EntryTotal)
}
