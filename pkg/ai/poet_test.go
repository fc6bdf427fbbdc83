package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePoem(t *testing.T) {
	raw := "  the river holds - its breath –\nand the sky — forgets\t"
	got := SanitizePoem(raw)

	assert.NotContains(t, got, "-")
	assert.NotContains(t, got, "–")
	assert.NotContains(t, got, "—")
	assert.Equal(t, got, strings.TrimSpace(got))
	assert.Contains(t, got, "the river holds")
}

func TestComposeSystemPrompt(t *testing.T) {
	entry := "Today I walked along the shore and thought about my father."

	plain := ComposeSystemPrompt("", "", entry)
	assert.Contains(t, plain, "You are Gorlea")

	withMemories := ComposeSystemPrompt("", "USER MEMORIES:\n- loves dark green", entry)
	assert.Contains(t, withMemories, "USER MEMORIES")
	assert.True(t, strings.HasPrefix(withMemories, GORLEA_SYSTEM_PROMPT))

	custom := ComposeSystemPrompt("You are a haiku master.", "", entry)
	assert.True(t, strings.HasPrefix(custom, "You are a haiku master."))
	assert.NotContains(t, custom, "You are Gorlea")
}

func TestComposeSystemPromptLanguageHint(t *testing.T) {
	entry := "今天我沿着海边散步，想起了我的父亲。他临走前说的话一直在我心里。"
	got := ComposeSystemPrompt("", "", entry)
	assert.Contains(t, got, "matching the language of the journal entry")

	english := ComposeSystemPrompt("", "", "Today I walked along the shore, thinking about everything my father told me before he left.")
	assert.NotContains(t, english, "matching the language of the journal entry")
}
