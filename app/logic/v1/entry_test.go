package v1

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorlea-ink/gorlea/app/store"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/journal"
	"github.com/gorlea-ink/gorlea/pkg/security"
	"github.com/gorlea-ink/gorlea/pkg/types"
)

type fakeEntryStore struct {
	entries map[string]types.Entry
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: make(map[string]types.Entry)}
}

func (f *fakeEntryStore) GetTable(key ...interface{}) string { return "entry" }

func (f *fakeEntryStore) Create(ctx context.Context, data types.Entry) error {
	f.entries[data.ID] = data
	return nil
}

func (f *fakeEntryStore) Get(ctx context.Context, userID, id string) (*types.Entry, error) {
	e, ok := f.entries[id]
	if !ok || e.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (f *fakeEntryStore) ListByOwner(ctx context.Context, userID string, page, pageSize uint64) ([]types.Entry, error) {
	var list []types.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	return list, nil
}

func (f *fakeEntryStore) Total(ctx context.Context, userID string) (int64, error) {
	list, _ := f.ListByOwner(ctx, userID, 0, 0)
	return int64(len(list)), nil
}

func (f *fakeEntryStore) Delete(ctx context.Context, userID, id string) error {
	e, ok := f.entries[id]
	if ok && e.UserID == userID {
		delete(f.entries, id)
	}
	return nil
}

func (f *fakeEntryStore) DeleteAll(ctx context.Context, userID string) error {
	for id, e := range f.entries {
		if e.UserID == userID {
			delete(f.entries, id)
		}
	}
	return nil
}

type fakeMemoryStore struct {
	profiles map[string]types.MemoryProfile
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{profiles: make(map[string]types.MemoryProfile)}
}

func (f *fakeMemoryStore) GetTable(key ...interface{}) string { return "memory" }

func (f *fakeMemoryStore) Load(ctx context.Context, userID string) (*types.MemoryProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeMemoryStore) Save(ctx context.Context, data types.MemoryProfile) error {
	f.profiles[data.UserID] = data
	return nil
}

func (f *fakeMemoryStore) Delete(ctx context.Context, userID string) error {
	delete(f.profiles, userID)
	return nil
}

type fakeStore struct {
	entry  *fakeEntryStore
	memory *fakeMemoryStore
	user   *fakeUserStore
	token  *fakeAccessTokenStore
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entry:  newFakeEntryStore(),
		memory: newFakeMemoryStore(),
		user:   newFakeUserStore(),
		token:  newFakeAccessTokenStore(),
	}
}

func (f *fakeStore) Transaction(ctx context.Context, next func(ctx context.Context) error) error {
	return next(ctx)
}

func (f *fakeStore) EntryStore() store.EntryStore             { return f.entry }
func (f *fakeStore) MemoryStore() store.MemoryStore           { return f.memory }
func (f *fakeStore) UserStore() store.UserStore               { return f.user }
func (f *fakeStore) AccessTokenStore() store.AccessTokenStore { return f.token }

type fakePoet struct {
	poem string
	err  error

	gotSystemPrompt string
}

func (f *fakePoet) GeneratePoem(ctx context.Context, req ai.GeneratePoemRequest) (*ai.GeneratePoemResult, error) {
	f.gotSystemPrompt = req.SystemPrompt
	if f.err != nil {
		return nil, f.err
	}
	return &ai.GeneratePoemResult{Poem: f.poem, Model: "test"}, nil
}

func newTestEntryLogic(st store.Store, poet ai.PoetAI, userID string) *EntryLogic {
	claims := security.NewTokenClaims("gorlea", userID, 0)
	return &EntryLogic{
		ctx:        context.Background(),
		UserInfo:   &_userInfo{u: &claims},
		store:      st,
		poet:       poet,
		entryCache: journal.NewCache(),
		poetPrompt: ai.GORLEA_SYSTEM_PROMPT,
	}
}

func TestCreateEntryPersistsWithPoem(t *testing.T) {
	st := newFakeStore()
	poet := &fakePoet{poem: "a quiet morning - held in light"}
	l := newTestEntryLogic(st, poet, "u1")

	entry, err := l.CreateEntry("slept in, read by the window")
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "a quiet morning  held in light", entry.Poem)

	stored, err := st.entry.Get(context.Background(), "u1", entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, entry.Poem, stored.Poem)
}

func TestCreateEntrySurvivesGenerationFailure(t *testing.T) {
	st := newFakeStore()
	poet := &fakePoet{err: fmt.Errorf("upstream down")}
	l := newTestEntryLogic(st, poet, "u1")

	entry, err := l.CreateEntry("a day the model was down")
	assert.NoError(t, err)
	assert.Empty(t, entry.Poem)

	// the entry made it to the store regardless
	stored, err := st.entry.Get(context.Background(), "u1", entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a day the model was down", stored.Content)
}

func TestCreateEntryIncludesMemories(t *testing.T) {
	st := newFakeStore()
	st.memory.Save(context.Background(), types.MemoryProfile{
		UserID:           "u1",
		FreeformMemories: types.FreeformMemories{"loves the sea"},
	})
	poet := &fakePoet{poem: "waves again"}
	l := newTestEntryLogic(st, poet, "u1")

	_, err := l.CreateEntry("walked the shore")
	assert.NoError(t, err)
	assert.Contains(t, poet.gotSystemPrompt, "USER MEMORIES")
	assert.Contains(t, poet.gotSystemPrompt, "loves the sea")
}

func TestCreateEntryRejectsEmpty(t *testing.T) {
	l := newTestEntryLogic(newFakeStore(), &fakePoet{}, "u1")

	_, err := l.CreateEntry("   \n ")
	assert.Error(t, err)
}

func TestDeleteEntryScopedToOwner(t *testing.T) {
	st := newFakeStore()
	st.entry.Create(context.Background(), types.Entry{ID: "e1", UserID: "owner", Content: "mine"})

	other := newTestEntryLogic(st, &fakePoet{}, "intruder")
	err := other.DeleteEntry("e1")
	assert.Error(t, err)

	// still there
	_, err = st.entry.Get(context.Background(), "owner", "e1")
	assert.NoError(t, err)

	owner := newTestEntryLogic(st, &fakePoet{}, "owner")
	assert.NoError(t, owner.DeleteEntry("e1"))

	_, err = st.entry.Get(context.Background(), "owner", "e1")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestListEntriesUsesCacheAfterCreate(t *testing.T) {
	st := newFakeStore()
	poet := &fakePoet{poem: "p"}
	l := newTestEntryLogic(st, poet, "u1")

	_, err := l.CreateEntry("first")
	assert.NoError(t, err)
	_, err = l.CreateEntry("second")
	assert.NoError(t, err)

	list, err := l.ListEntries()
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	// cache reflects deletes too
	assert.NoError(t, l.DeleteEntry(list[0].ID))
	list, err = l.ListEntries()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClearEntriesEmptiesJournal(t *testing.T) {
	st := newFakeStore()
	l := newTestEntryLogic(st, &fakePoet{poem: "p"}, "u1")
	other := newTestEntryLogic(st, &fakePoet{poem: "p"}, "u2")

	_, err := l.CreateEntry("first")
	assert.NoError(t, err)
	_, err = l.CreateEntry("second")
	assert.NoError(t, err)
	kept, err := other.CreateEntry("not mine to clear")
	assert.NoError(t, err)

	assert.NoError(t, l.ClearEntries())

	list, err := l.ListEntries()
	assert.NoError(t, err)
	assert.Empty(t, list)

	// the other user's journal is untouched
	_, err = st.entry.Get(context.Background(), "u2", kept.ID)
	assert.NoError(t, err)
}

func TestSearchEntriesDistinguishesInactive(t *testing.T) {
	st := newFakeStore()
	l := newTestEntryLogic(st, &fakePoet{poem: "light on water"}, "u1")

	_, err := l.CreateEntry("rowed across the lake")
	assert.NoError(t, err)

	res, err := l.SearchEntries("  ")
	assert.NoError(t, err)
	assert.False(t, res.Active)

	res, err = l.SearchEntries("LAKE")
	assert.NoError(t, err)
	assert.True(t, res.Active)
	assert.Len(t, res.Entries, 1)

	res, err = l.SearchEntries("mountain")
	assert.NoError(t, err)
	assert.True(t, res.Active)
	assert.Empty(t, res.Entries)
}
