package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

func tokenCacheKey(tokenValue string) string {
	return fmt.Sprintf("user:token:%s", utils.MD5(tokenValue))
}

// ValidateTokenFromCache resolves an access token through the cache.
// A miss means the token is unknown or expired, not a system fault.
func ValidateTokenFromCache(ctx context.Context, tokenValue string, cache types.Cache) (*types.UserTokenMeta, error) {
	if tokenValue == "" {
		return nil, errors.New("auth.ValidateTokenFromCache.empty_token", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	tokenMetaStr, err := cache.Get(ctx, tokenCacheKey(tokenValue))
	if err != nil && err != redis.Nil {
		return nil, errors.New("auth.ValidateTokenFromCache.cache_get", i18n.ERROR_INTERNAL, err)
	}

	if tokenMetaStr == "" {
		return nil, errors.New("auth.ValidateTokenFromCache.token_not_found", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("nil token")).Code(http.StatusUnauthorized)
	}

	var meta types.UserTokenMeta
	if err := json.Unmarshal([]byte(tokenMetaStr), &meta); err != nil {
		return nil, errors.New("auth.ValidateTokenFromCache.unmarshal", i18n.ERROR_INTERNAL, err).Code(http.StatusUnauthorized)
	}

	return &meta, nil
}

// CacheToken writes token metadata with a ttl matching the token lifetime.
func CacheToken(ctx context.Context, tokenValue string, meta types.UserTokenMeta, cache types.Cache) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return errors.New("auth.CacheToken.marshal", i18n.ERROR_INTERNAL, err)
	}

	ttl := time.Until(time.Unix(meta.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}

	if err = cache.SetEx(ctx, tokenCacheKey(tokenValue), string(raw), ttl); err != nil {
		return errors.New("auth.CacheToken.set", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// DropToken removes a token from the cache on logout or revocation.
func DropToken(ctx context.Context, tokenValue string, cache types.Cache) error {
	if err := cache.Del(ctx, tokenCacheKey(tokenValue)); err != nil {
		return errors.New("auth.DropToken.del", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
