package ai

import (
	"fmt"
	"strings"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// FormatMemoriesForPrompt serializes a memory profile into the labeled
// plain-text block appended to the poet system prompt. Only non-empty
// fields appear; a nil or entirely empty profile yields an empty string.
// The result is prompt context only and must never be shown to the user.
func FormatMemoriesForPrompt(memories *types.MemoryProfile) string {
	if memories == nil {
		return ""
	}

	var b strings.Builder

	if memories.NamePreference != "" {
		fmt.Fprintf(&b, "- The user prefers to be called %q\n", memories.NamePreference)
	}

	var details []string
	for _, detail := range memories.PersonalDetails {
		if strings.TrimSpace(detail.Answer) == "" {
			continue
		}
		details = append(details, fmt.Sprintf("- %s: %s", detail.Question, detail.Answer))
	}
	if len(details) > 0 {
		b.WriteString("\nPersonal Details:\n")
		b.WriteString(strings.Join(details, "\n"))
		b.WriteString("\n")
	}

	var connections []string
	for _, conn := range memories.ImportantConnections {
		if strings.TrimSpace(conn.Name) == "" && strings.TrimSpace(conn.Relationship) == "" && strings.TrimSpace(conn.Details) == "" {
			continue
		}
		line := "- " + conn.Name
		if conn.Relationship != "" {
			line += fmt.Sprintf(" (%s)", conn.Relationship)
		}
		line += ": " + conn.Details
		connections = append(connections, line)
	}
	if len(connections) > 0 {
		b.WriteString("\nImportant Connections:\n")
		b.WriteString(strings.Join(connections, "\n"))
		b.WriteString("\n")
	}

	var freeform []string
	for _, memory := range memories.FreeformMemories {
		if strings.TrimSpace(memory) == "" {
			continue
		}
		freeform = append(freeform, "- "+memory)
	}
	if len(freeform) > 0 {
		b.WriteString("\nAdditional Memories:\n")
		b.WriteString(strings.Join(freeform, "\n"))
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return ""
	}

	return "USER MEMORIES (subtly incorporate these details when appropriate):\n" + b.String()
}
