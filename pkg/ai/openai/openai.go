package openai

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/gorlea-ink/gorlea/pkg/ai"
)

const (
	NAME = "openai"
)

// Driver speaks any OpenAI-compatible chat API, which covers DeepSeek via a
// custom base URL.
type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func NewClient(token, endpoint string) *openai.Client {
	cfg := openai.DefaultConfig(token)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}
	return openai.NewClientWithConfig(cfg)
}

func New(token, endpoint string, model ai.ModelName) *Driver {
	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}
	if model.TranscribeModel == "" {
		model.TranscribeModel = openai.Whisper1
	}

	return &Driver{
		client: NewClient(token, endpoint),
		model:  model,
	}
}

func (s *Driver) GeneratePoem(ctx context.Context, req ai.GeneratePoemRequest) (*ai.GeneratePoemResult, error) {
	slog.Debug("GeneratePoem", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model.ChatModel,
		Temperature: ai.PoemTemperature,
		MaxTokens:   ai.PoemMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Entry,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion, %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &ai.GeneratePoemResult{
		Poem:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Model: resp.Model,
		Usage: &resp.Usage,
	}, nil
}

func (s *Driver) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	slog.Debug("Transcribe", slog.String("driver", NAME), slog.String("model", s.model.TranscribeModel))

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model.TranscribeModel,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create transcription, %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
