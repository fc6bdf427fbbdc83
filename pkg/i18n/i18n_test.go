package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("zh-CN", "en")

	assert.NotEqual(t, ERROR_INTERNAL, l.Get("en", ERROR_INTERNAL))
	assert.NotEqual(t, l.Get("en", ERROR_UNAUTHORIZED), l.Get("zh-CN", ERROR_UNAUTHORIZED))

	// unknown ids fall back to the id itself
	assert.Equal(t, "error.unknown", l.Get("en", "error.unknown"))
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
