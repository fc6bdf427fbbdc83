package types

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)

const NO_PAGINATION = 0

// UserTokenMeta is what the auth middleware caches per access token so hot
// requests skip the token/user lookups.
type UserTokenMeta struct {
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
}
