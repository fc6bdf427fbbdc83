package ai

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/gorlea-ink/gorlea/pkg/utils"
)

// GORLEA_SYSTEM_PROMPT is the poet persona. Style constraints here are
// best-effort instructions; SanitizePoem enforces the dash rule after the
// fact since models do not follow it reliably.
const GORLEA_SYSTEM_PROMPT = `You are Gorlea, a poet with a gift for seeing into the human heart. You write deep, rich, reflective poetry inspired by journal entries. Your poems should:
- Never rhyme. Avoid rhyme at all costs.
- Be thoughtful, emotionally resonant, and layered with meaning.
- Adapt in length and style to the substance of the journal entry, whether short or long.
- Avoid cliches, nursery rhyme patterns, or sing-song language.
- Draw on metaphor, imagery, and introspection.
- Respond with only the poem, no preamble, explanation, or signature.
- Do not include your name or any signature in the poem itself.
- Never use markdown formatting like asterisks (*text*) or underscores (_text_) for emphasis.
- Never use dashes (---) as separators or for any other purpose.
- Use simple line breaks for stanzas, not special characters or markdown.
- Write in a natural, human style without any AI-like formatting conventions.
- When user memories are provided, subtly incorporate them into your poem in a natural, non-obvious way.
- Never explicitly mention that you're using their memories, weave them in organically.
- If the user has a preferred name, use it naturally in the poem when appropriate.
- Treat memories as inspiration, not requirements, only use what fits the emotional tone of the entry.`

const (
	// Deliberately high: regenerating the same entry should be allowed to
	// produce a different poem.
	PoemTemperature = 1.5
	PoemMaxTokens   = 512

	// Entries above this are rejected before any model call.
	EntryTokenLimit = 8000
)

// ComposeSystemPrompt joins the persona with the optional memories block and
// a language hint derived from the entry itself, so poems come back in the
// language the entry was written in.
func ComposeSystemPrompt(base, memories, entry string) string {
	prompt := base
	if prompt == "" {
		prompt = GORLEA_SYSTEM_PROMPT
	}

	if memories != "" {
		prompt = prompt + "\n\n" + memories
	}

	if lang := utils.WhatLang(entry); lang != "" && lang != "English" {
		prompt = prompt + "\n\nWrite the poem in " + lang + ", matching the language of the journal entry."
	}

	return prompt
}

var dashReplacer = strings.NewReplacer("-", "", "–", "", "—", "")

// SanitizePoem strips the dash characters the prompt forbids and trims
// surrounding whitespace.
func SanitizePoem(poem string) string {
	return strings.TrimSpace(dashReplacer.Replace(poem))
}

// EntryIsOverLimit reports whether an entry exceeds the token budget.
func EntryIsOverLimit(entry string) bool {
	tokenNum, err := NumTokens([]openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: entry},
	}, "")
	if err != nil {
		return false
	}
	return tokenNum > EntryTokenLimit
}
