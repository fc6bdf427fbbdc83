package middleware

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/gorlea-ink/gorlea/app/core"
	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/app/response"
	"github.com/gorlea-ink/gorlea/pkg/auth"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
	"github.com/gorlea-ink/gorlea/pkg/security"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

// AcceptLanguage supports en: English, zh-CN: Simplified Chinese
func AcceptLanguage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Request.Header.Get("Accept-Language")
		if lang == "" {
			ctx.Set(v1.LANGUAGE_KEY, types.LANGUAGE_EN_KEY)
			return
		}

		res := utils.ParseAcceptLanguage(lang)
		if len(res) == 0 {
			ctx.Set(v1.LANGUAGE_KEY, types.LANGUAGE_EN_KEY)
			return
		}

		ctx.Set(v1.LANGUAGE_KEY, lo.If(strings.Contains(res[0].Tag, "zh"), types.LANGUAGE_CN_KEY).Else(types.LANGUAGE_EN_KEY))
	}
}

const (
	ACCESS_TOKEN_HEADER_KEY = "X-Access-Token"
)

// Authorization resolves the opaque access token, cache first, store as
// fallback. A store hit repopulates the cache for subsequent requests.
func Authorization(core *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(ctx *gin.Context) {
		matched, err := checkAccessToken(ctx, core)
		if err != nil {
			response.APIError(ctx, errors.Trace(tracePrefix, err))
			return
		}

		if !matched {
			response.APIError(ctx, errors.New(tracePrefix, i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
		}
	}
}

func checkAccessToken(c *gin.Context, core *core.Core) (bool, error) {
	tokenValue := c.GetHeader(ACCESS_TOKEN_HEADER_KEY)
	if tokenValue == "" {
		return checkJWT(c, core)
	}

	return ParseAccessToken(c, tokenValue, core)
}

// checkJWT accepts a signed bearer token on the Authorization header as an
// alternative to the opaque access token.
func checkJWT(c *gin.Context, core *core.Core) (bool, error) {
	tokenValue := strings.TrimPrefix(c.GetHeader(security.TOKEN_KEY), "Bearer ")
	if tokenValue == "" || core.Cfg().Security.PublicKey == "" {
		return false, nil
	}

	claims, err := security.VerifyToken(tokenValue, []byte(core.Cfg().Security.PublicKey))
	if err != nil {
		return false, errors.New("checkJWT.VerifyToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
	}

	c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	return true, nil
}

func ParseAccessToken(c *gin.Context, tokenValue string, core *core.Core) (bool, error) {
	if tokenValue == "" {
		return false, nil
	}

	if meta, err := auth.ValidateTokenFromCache(c, tokenValue, core.Cache()); err == nil {
		if meta.ExpiresAt < time.Now().Unix() {
			return false, errors.New("ParseAccessToken.cache.expired", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("expired token")).Code(http.StatusUnauthorized)
		}
		c.Set(v1.TOKEN_CONTEXT_KEY, security.NewTokenClaims("gorlea", meta.UserID, meta.ExpiresAt))
		return true, nil
	}

	token, err := core.Store().AccessTokenStore().GetAccessToken(c, tokenValue)
	if err != nil && err != sql.ErrNoRows {
		return false, errors.New("ParseAccessToken.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}

	if token == nil || token.ExpiresAt < time.Now().Unix() {
		return false, errors.New("ParseAccessToken.token.check", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("nil token")).Code(http.StatusUnauthorized)
	}

	claims, err := token.TokenClaims()
	if err != nil {
		return false, errors.New("ParseAccessToken.token.TokenClaims", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
	}

	if err = auth.CacheToken(c, tokenValue, types.UserTokenMeta{
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
	}, core.Cache()); err != nil {
		// cache refill failures are not fatal for this request
		err = nil
	}

	c.Set(v1.TOKEN_CONTEXT_KEY, claims)
	return true, nil
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Access-Token")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}
