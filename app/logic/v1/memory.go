package v1

import (
	"context"
	"time"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/app/store"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/types"
)

type MemoryLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo

	store store.Store
}

func NewMemoryLogic(ctx context.Context, core *core.Core) *MemoryLogic {
	return &MemoryLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
		store:    core.Store(),
	}
}

// GetProfile returns an empty profile rather than an error when the user
// has never saved one.
func (l *MemoryLogic) GetProfile() (*types.MemoryProfile, error) {
	profile, err := l.store.MemoryStore().Load(l.ctx, l.GetUserInfo().User)
	if err != nil {
		return nil, errors.New("MemoryLogic.GetProfile.MemoryStore.Load", i18n.ERROR_INTERNAL, err)
	}
	if profile == nil {
		return &types.MemoryProfile{UserID: l.GetUserInfo().User}, nil
	}
	return profile, nil
}

// SaveProfile overwrites whatever is stored. Partial updates are a client
// concern.
func (l *MemoryLogic) SaveProfile(profile types.MemoryProfile) error {
	profile.UserID = l.GetUserInfo().User
	profile.UpdatedAt = time.Now().Unix()

	if err := l.store.MemoryStore().Save(l.ctx, profile); err != nil {
		return errors.New("MemoryLogic.SaveProfile.MemoryStore.Save", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *MemoryLogic) DeleteProfile() error {
	if err := l.store.MemoryStore().Delete(l.ctx, l.GetUserInfo().User); err != nil {
		return errors.New("MemoryLogic.DeleteProfile.MemoryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// FormattedMemories is what the poem prompt receives for this user.
func (l *MemoryLogic) FormattedMemories() (string, error) {
	profile, err := l.store.MemoryStore().Load(l.ctx, l.GetUserInfo().User)
	if err != nil {
		return "", errors.New("MemoryLogic.FormattedMemories.MemoryStore.Load", i18n.ERROR_INTERNAL, err)
	}
	return ai.FormatMemoriesForPrompt(profile), nil
}
