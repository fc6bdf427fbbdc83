package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

func TestFormatMemoriesForPrompt_FreeformOnly(t *testing.T) {
	profile := &types.MemoryProfile{
		FreeformMemories: types.FreeformMemories{"loves dark green"},
	}

	got := FormatMemoriesForPrompt(profile)
	assert.Contains(t, got, "Additional Memories:")
	assert.Contains(t, got, "- loves dark green")
	assert.NotContains(t, got, "Personal Details:")
	assert.NotContains(t, got, "Important Connections:")
}

func TestFormatMemoriesForPrompt_Empty(t *testing.T) {
	assert.Equal(t, "", FormatMemoriesForPrompt(nil))

	empty := &types.MemoryProfile{
		PersonalDetails:      types.PersonalDetails{{Question: "Favorite color?", Answer: "  "}},
		ImportantConnections: types.ImportantConnections{{}},
		FreeformMemories:     types.FreeformMemories{"", "   "},
	}
	assert.Equal(t, "", FormatMemoriesForPrompt(empty))
}

func TestFormatMemoriesForPrompt_AllSections(t *testing.T) {
	profile := &types.MemoryProfile{
		NamePreference: "Sam",
		PersonalDetails: types.PersonalDetails{
			{Question: "Favorite season?", Answer: "autumn"},
			{Question: "Skipped?", Answer: ""},
		},
		ImportantConnections: types.ImportantConnections{
			{Name: "Ana", Relationship: "sister", Details: "lives abroad"},
		},
		FreeformMemories: types.FreeformMemories{"loves dark green"},
	}

	got := FormatMemoriesForPrompt(profile)
	assert.True(t, strings.HasPrefix(got, "USER MEMORIES"))
	assert.Contains(t, got, `- The user prefers to be called "Sam"`)
	assert.Contains(t, got, "- Favorite season?: autumn")
	assert.NotContains(t, got, "Skipped?")
	assert.Contains(t, got, "- Ana (sister): lives abroad")

	// deterministic serialization
	assert.Equal(t, got, FormatMemoriesForPrompt(profile))
}
