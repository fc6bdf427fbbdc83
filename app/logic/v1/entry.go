package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/app/store"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/journal"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

// EntryLogic owns the journal entry lifecycle. Dependencies sit in struct
// fields so tests can wire in fakes.
type EntryLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo

	store      store.Store
	poet       ai.PoetAI
	entryCache *journal.Cache
	poetPrompt string
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:        ctx,
		core:       core,
		UserInfo:   SetupUserInfo(ctx, core),
		store:      core.Store(),
		poet:       core.Srv().AI().Poet(),
		entryCache: core.EntryCache(),
		poetPrompt: core.PoetPrompt(),
	}
}

// CreateEntry persists the entry regardless of how generation went. An
// empty Poem on the returned entry means the model call failed and the
// caller should surface a warning.
func (l *EntryLogic) CreateEntry(content string) (*types.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("EntryLogic.CreateEntry.content.empty", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	userID := l.GetUserInfo().User

	poem := ""
	if !ai.EntryIsOverLimit(content) {
		memories := ""
		profile, err := l.store.MemoryStore().Load(l.ctx, userID)
		if err != nil {
			slog.Warn("failed to load memory profile, generating without it",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		} else {
			memories = ai.FormatMemoriesForPrompt(profile)
		}

		result, err := l.poet.GeneratePoem(l.ctx, ai.GeneratePoemRequest{
			SystemPrompt: ai.ComposeSystemPrompt(l.poetPrompt, memories, content),
			Entry:        content,
		})
		if err != nil {
			slog.Warn("poem generation failed, saving entry without poem",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		} else {
			poem = ai.SanitizePoem(result.Poem)
		}
	}

	entry := types.Entry{
		ID:        utils.GenUniqIDStr(),
		UserID:    userID,
		Content:   content,
		Poem:      poem,
		CreatedAt: time.Now().Unix(),
	}

	if err := l.store.EntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("EntryLogic.CreateEntry.EntryStore.Create", i18n.ERROR_INTERNAL, err)
	}

	l.refreshCache(userID)

	return &entry, nil
}

// ListEntries serves history from the per-user cache, falling back to the
// store on a cold start.
func (l *EntryLogic) ListEntries() ([]types.Entry, error) {
	userID := l.GetUserInfo().User

	if list, ok := l.entryCache.Get(userID); ok {
		return list, nil
	}

	list, err := l.store.EntryStore().ListByOwner(l.ctx, userID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.ListEntries.EntryStore.ListByOwner", i18n.ERROR_INTERNAL, err)
	}

	l.entryCache.Set(userID, list)
	return list, nil
}

func (l *EntryLogic) GetEntry(id string) (*types.Entry, error) {
	entry, err := l.store.EntryStore().Get(l.ctx, l.GetUserInfo().User, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("EntryLogic.GetEntry.EntryStore.Get.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		return nil, errors.New("EntryLogic.GetEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return entry, nil
}

// DeleteEntry removes one entry. The store call is owner scoped, so a
// request naming someone else's entry id deletes nothing.
func (l *EntryLogic) DeleteEntry(id string) error {
	userID := l.GetUserInfo().User

	if _, err := l.store.EntryStore().Get(l.ctx, userID, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.New("EntryLogic.DeleteEntry.EntryStore.Get.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		return errors.New("EntryLogic.DeleteEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if err := l.store.EntryStore().Delete(l.ctx, userID, id); err != nil {
		return errors.New("EntryLogic.DeleteEntry.EntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}

	l.refreshCache(userID)
	return nil
}

// ClearEntries wipes the user's whole journal.
func (l *EntryLogic) ClearEntries() error {
	userID := l.GetUserInfo().User

	if err := l.store.EntryStore().DeleteAll(l.ctx, userID); err != nil {
		return errors.New("EntryLogic.ClearEntries.EntryStore.DeleteAll", i18n.ERROR_INTERNAL, err)
	}

	l.entryCache.Invalidate(userID)
	return nil
}

// FilterEntries applies the named date filter over the cached listing.
func (l *EntryLogic) FilterEntries(filter string) ([]types.Entry, error) {
	list, err := l.ListEntries()
	if err != nil {
		return nil, err
	}

	f, ok := journal.ParseDateFilter(filter)
	if !ok {
		return nil, errors.New("EntryLogic.FilterEntries.filter.unknown", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	return journal.FilterByDate(list, f, time.Now()), nil
}

// SearchEntries runs the case-insensitive substring search over the cached
// listing.
func (l *EntryLogic) SearchEntries(query string) (journal.SearchResult, error) {
	list, err := l.ListEntries()
	if err != nil {
		return journal.SearchResult{}, err
	}

	return journal.Search(list, query), nil
}

func (l *EntryLogic) refreshCache(userID string) {
	list, err := l.store.EntryStore().ListByOwner(l.ctx, userID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil {
		// Stale data beats wrong data, drop the cached copy.
		l.entryCache.Invalidate(userID)
		slog.Warn("failed to refresh entry cache", slog.String("user_id", userID), slog.String("error", err.Error()))
		return
	}
	l.entryCache.Set(userID, list)
}
