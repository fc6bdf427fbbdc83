package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/app/store"
	"github.com/gorlea-ink/gorlea/pkg/auth"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

// logic for unlogin
type UserLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	l := &UserLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *UserLogic) Register(name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("UserLogic.Register.UserStore.exist", i18n.ERROR_EMAIL_REGISTERED, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	userID := utils.GenUniqIDStr()

	err = l.core.Store().UserStore().Create(l.ctx, types.User{
		ID:        userID,
		Name:      name,
		Email:     email,
		Salt:      salt,
		Source:    "platform",
		Password:  utils.GenUserPassword(salt, password),
		UpdatedAt: time.Now().Unix(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return userID, nil
}

// Login verifies credentials and issues an opaque access token. The token
// meta also lands in the cache so the auth middleware avoids a db hit per
// request.
func (l *UserLogic) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return "", errors.New("UserLogic.Login.Password.check", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusBadRequest)
	}

	ttl := l.core.Cfg().Security.TokenTTLHours
	if ttl <= 0 {
		ttl = 24 * 30
	}
	expiresAt := time.Now().Add(time.Hour * time.Duration(ttl)).Unix()

	accessToken := utils.MD5(user.ID + utils.GenRandomID())
	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		ID:        utils.GenUniqID(),
		UserID:    user.ID,
		Token:     accessToken,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Info:      "login",
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("UserLogic.Login.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	if err = auth.CacheToken(l.ctx, accessToken, types.UserTokenMeta{
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}, l.core.Cache()); err != nil {
		return "", err
	}

	return accessToken, nil
}

type UserBaseInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email"`
	EntryTotal int64  `json:"entry_total"`
	UpdatedAt  int64  `json:"updated_at"`
	CreatedAt  int64  `json:"created_at"`
}

// AuthedUserLogic serves requests carrying a valid token. Store and cache
// sit in struct fields so tests can wire in fakes.
type AuthedUserLogic struct {
	ctx context.Context
	UserInfo

	store store.Store
	cache types.Cache
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	return &AuthedUserLogic{
		ctx:      ctx,
		UserInfo: SetupUserInfo(ctx, core),
		store:    core.Store(),
		cache:    core.Cache(),
	}
}

func (l *AuthedUserLogic) GetUser() (*UserBaseInfo, error) {
	user, err := l.store.UserStore().GetUser(l.ctx, l.GetUserInfo().User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user == nil {
		return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	total, err := l.store.EntryStore().Total(l.ctx, user.ID)
	if err != nil {
		return nil, errors.New("AuthedUserLogic.GetUser.EntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &UserBaseInfo{
		ID:         user.ID,
		Name:       user.Name,
		Avatar:     user.Avatar,
		Email:      user.Email,
		EntryTotal: total,
		UpdatedAt:  user.UpdatedAt,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (l *AuthedUserLogic) UpdateUserProfile(name, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := l.store.UserStore().UpdateUserProfile(l.ctx, l.GetUserInfo().User, name, email); err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateUserProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// Logout revokes every token the user holds, cached copies included, so
// none of them authenticates again.
func (l *AuthedUserLogic) Logout() error {
	userID := l.GetUserInfo().User

	tokens, err := l.store.AccessTokenStore().ListAccessTokens(l.ctx, userID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("AuthedUserLogic.Logout.AccessTokenStore.ListAccessTokens", i18n.ERROR_INTERNAL, err)
	}

	for _, token := range tokens {
		if err = auth.DropToken(l.ctx, token.Token, l.cache); err != nil {
			return errors.New("AuthedUserLogic.Logout.DropToken", i18n.ERROR_INTERNAL, err)
		}
	}

	if err = l.store.AccessTokenStore().ClearUserTokens(l.ctx, userID); err != nil {
		return errors.New("AuthedUserLogic.Logout.AccessTokenStore.ClearUserTokens", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
