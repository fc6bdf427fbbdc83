package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorlea-ink/gorlea/app/core"
	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
)

// PoemLogic runs the generation pipeline for the public endpoint. No auth,
// no persistence, one synchronous model call per request.
type PoemLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewPoemLogic(ctx context.Context, core *core.Core) *PoemLogic {
	return &PoemLogic{
		ctx:  ctx,
		core: core,
	}
}

// GeneratePoem validates, composes the prompt and invokes the poet driver.
// memories arrives pre-formatted, possibly empty.
func (l *PoemLogic) GeneratePoem(entry, memories string) (string, error) {
	if strings.TrimSpace(entry) == "" {
		return "", errors.New("PoemLogic.GeneratePoem.entry.empty", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if ai.EntryIsOverLimit(entry) {
		return "", errors.New("PoemLogic.GeneratePoem.entry.overlimit", i18n.ERROR_ENTRY_TOO_LONG, nil).Code(http.StatusBadRequest)
	}

	systemPrompt := ai.ComposeSystemPrompt(l.core.PoetPrompt(), memories, entry)

	timer := l.core.Metrics().PoemResponseTimer(l.core.Srv().AI().ChatModel())
	result, err := l.core.Srv().AI().Poet().GeneratePoem(l.ctx, ai.GeneratePoemRequest{
		SystemPrompt: systemPrompt,
		Entry:        entry,
	})
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().PoemErrorInc("model")
		return "", errors.New("PoemLogic.GeneratePoem.Poet.GeneratePoem", i18n.ERROR_POEM_FAILED, err)
	}

	poem := ai.SanitizePoem(result.Poem)
	if poem == "" {
		l.core.Metrics().PoemErrorInc("empty")
		return "", errors.New("PoemLogic.GeneratePoem.Poet.empty", i18n.ERROR_POEM_FAILED, nil)
	}

	if result.Usage != nil {
		slog.Debug("poem generated",
			slog.String("model", result.Model),
			slog.Int("prompt_tokens", result.Usage.PromptTokens),
			slog.Int("completion_tokens", result.Usage.CompletionTokens))
	}

	return poem, nil
}
