package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gorlea-ink/gorlea/pkg/ai"
)

const (
	NAME = "gemini"

	defaultModel = "gemini-1.5-pro-latest"
)

type Driver struct {
	client *genai.Client
	model  string
}

func New(token, model string) *Driver {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		panic(err)
	}

	if model == "" {
		model = defaultModel
	}

	return &Driver{
		client: client,
		model:  model,
	}
}

func (s *Driver) GeneratePoem(ctx context.Context, req ai.GeneratePoemRequest) (*ai.GeneratePoemResult, error) {
	slog.Debug("GeneratePoem", slog.String("driver", NAME), slog.String("model", s.model))

	model := s.client.GenerativeModel(s.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemPrompt))
	temperature := float32(ai.PoemTemperature)
	maxTokens := int32(ai.PoemMaxTokens)
	model.Temperature = &temperature
	model.MaxOutputTokens = &maxTokens

	resp, err := model.GenerateContent(ctx, genai.Text(req.Entry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content, %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("empty response content")
	}

	if resp.Candidates[0].FinishReason != genai.FinishReasonStop {
		slog.Warn("GeneratePoem, ai finished without stop", slog.String("reason", resp.Candidates[0].FinishReason.String()))
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}

	return &ai.GeneratePoemResult{
		Poem:  strings.TrimSpace(b.String()),
		Model: s.model,
	}, nil
}

// Transcribe is not implemented for the gemini driver; audio capture goes
// through the openai-compatible driver.
func (s *Driver) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	return "", ai.ErrUnsupported
}
