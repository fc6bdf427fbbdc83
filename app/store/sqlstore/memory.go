package sqlstore

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/gorlea-ink/gorlea/pkg/register"
	"github.com/gorlea-ink/gorlea/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.MemoryStore = NewMemoryStore(provider)
	})
}

type MemoryStore struct {
	CommonFields
}

func NewMemoryStore(provider SqlProviderAchieve) *MemoryStore {
	repo := &MemoryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_MEMORY)
	repo.SetAllColumns("user_id", "name_preference", "personal_details", "important_connections", "freeform_memories", "updated_at", "created_at")
	return repo
}

// Load returns nil when the user has never saved a profile. Absence is a
// normal state, not an error.
func (s *MemoryStore) Load(ctx context.Context, userID string) (*types.MemoryProfile, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.MemoryProfile
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// Save replaces the whole document. There is no field-level merge.
func (s *MemoryStore) Save(ctx context.Context, data types.MemoryProfile) error {
	now := time.Now().Unix()
	if data.CreatedAt == 0 {
		data.CreatedAt = now
	}
	data.UpdatedAt = now

	query := sq.Insert(s.GetTable()).
		Columns("user_id", "name_preference", "personal_details", "important_connections", "freeform_memories", "updated_at", "created_at").
		Values(data.UserID, data.NamePreference, data.PersonalDetails, data.ImportantConnections, data.FreeformMemories, data.UpdatedAt, data.CreatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			name_preference = EXCLUDED.name_preference,
			personal_details = EXCLUDED.personal_details,
			important_connections = EXCLUDED.important_connections,
			freeform_memories = EXCLUDED.freeform_memories,
			updated_at = EXCLUDED.updated_at`)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
