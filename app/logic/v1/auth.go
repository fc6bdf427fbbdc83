package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/pkg/auth"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AuthLogic) GetAccessTokenDetail(token string) (*types.AccessToken, error) {
	data, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}

	return data, nil
}

// InitAdminUser seeds the first account with a long lived token. Used by
// the install command on fresh deployments.
func (l *AuthLogic) InitAdminUser() (string, error) {
	userID := utils.GenUniqIDStr()
	var accessToken string
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		salt := utils.RandomStr(10)
		password := utils.RandomStr(16)
		err := l.core.Store().UserStore().Create(ctx, types.User{
			ID:       userID,
			Name:     "Admin",
			Email:    "admin@localhost",
			Salt:     salt,
			Source:   "install",
			Password: utils.GenUserPassword(salt, password),
		})
		if err != nil {
			return errors.New("AuthLogic.InitAdminUser.CreateUser", i18n.ERROR_INTERNAL, err)
		}

		tokenStore := l.core.Store().AccessTokenStore()
	REGEN:
		accessToken = utils.RandomStr(64)
		exist, err := tokenStore.GetAccessToken(ctx, accessToken)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("AuthLogic.InitAdminUser.GetAccessToken", i18n.ERROR_INTERNAL, err)
		}

		if exist != nil {
			goto REGEN
		}

		err = tokenStore.Create(ctx, types.AccessToken{
			ID:        utils.GenUniqID(),
			UserID:    userID,
			Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
			Token:     accessToken,
			ExpiresAt: time.Now().AddDate(999, 0, 0).Unix(),
			Info:      "Admin user token",
		})

		if err != nil {
			return errors.New("AuthLogic.InitAdminUser.CreateToken", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return accessToken, nil
}

func (l *AuthedUserLogic) CreateAccessToken(info string) (string, error) {
	tokens, err := l.store.AccessTokenStore().ListAccessTokens(l.ctx, l.GetUserInfo().User, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("AuthedUserLogic.CreateAccessToken.AccessTokenStore.List", i18n.ERROR_INTERNAL, err)
	}

	if len(tokens) > 10 {
		return "", errors.New("AuthedUserLogic.CreateAccessToken.AccessTokenStore.limit", i18n.ERROR_MORE_THAN_MAX, nil).Code(http.StatusForbidden)
	}

	token := utils.RandomStr(64)
	err = l.store.AccessTokenStore().Create(l.ctx, types.AccessToken{
		ID:        utils.GenUniqID(),
		UserID:    l.GetUserInfo().User,
		Info:      info,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Token:     token,
		ExpiresAt: time.Now().AddDate(1, 0, 0).Unix(),
		CreatedAt: time.Now().Unix(),
	})

	if err != nil {
		return "", errors.New("AuthedUserLogic.CreateAccessToken.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return token, nil
}

func (l *AuthedUserLogic) GetAccessTokens(page, pageSize uint64) ([]types.AccessToken, error) {
	list, err := l.store.AccessTokenStore().ListAccessTokens(l.ctx, l.GetUserInfo().User, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthedUserLogic.GetAccessTokens.AccessTokenStore.ListAccessTokens", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

// DelAccessToken revokes a token. The cached copy goes first; if the store
// delete then fails, the middleware refills the cache from the still-valid
// row on the next request, so the two never disagree for long.
func (l *AuthedUserLogic) DelAccessToken(id int64) error {
	userID := l.GetUserInfo().User

	token, err := l.store.AccessTokenStore().GetAccessTokenByID(l.ctx, userID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return errors.New("AuthedUserLogic.DelAccessToken.AccessTokenStore.GetAccessTokenByID", i18n.ERROR_INTERNAL, err)
	}

	if err = auth.DropToken(l.ctx, token.Token, l.cache); err != nil {
		return errors.New("AuthedUserLogic.DelAccessToken.DropToken", i18n.ERROR_INTERNAL, err)
	}

	if err = l.store.AccessTokenStore().Delete(l.ctx, userID, id); err != nil {
		return errors.New("AuthedUserLogic.DelAccessToken.AccessTokenStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
