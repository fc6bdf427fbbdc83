package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_NOT_FOUND           = "error.notfound"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_PERMISSION_DENIED   = "error.permission.denied"
	ERROR_UNAUTHORIZED        = "error.unauthorized"
	ERROR_EXIST               = "error.exist"
	ERROR_FORBIDDEN           = "error.forbidden"
	ERROR_MORE_THAN_MAX       = "error.moreThanMax"
	ERROR_INVALID_TOKEN       = "error.invalid.token"
	ERROR_INVALID_ACCOUNT     = "error.invalid.account"
	ERROR_EMAIL_REGISTERED    = "error.email_has_already_registered"
	ERROR_POEM_FAILED         = "error.poem.generation.failed"
	ERROR_TRANSCRIBE_FAILED   = "error.transcribe.failed"
	ERROR_ENTRY_TOO_LONG      = "error.entry.too_long"
	ERROR_UNSUPPORTED_FEATURE = "error.unsupported.feature"
)
