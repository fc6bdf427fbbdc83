package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUserPassword(t *testing.T) {
	a := GenUserPassword("salt", "password")
	b := GenUserPassword("salt", "password")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, GenUserPassword("other", "password"))
	assert.NotEqual(t, a, GenUserPassword("salt", "different"))
}

func TestRandomStr(t *testing.T) {
	a := RandomStr(64)
	assert.Len(t, a, 64)
	for _, c := range a {
		assert.Contains(t, "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM", string(c))
	}

	// back-to-back calls must not repeat, even within one tick
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		s := RandomStr(64)
		assert.False(t, seen[s])
		seen[s] = true
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN;q=0.8,en;q=0.9")
	assert.Len(t, res, 2)
	assert.Equal(t, "en", res[0].Tag)

	assert.Empty(t, ParseAcceptLanguage(""))
}
