package srv

import (
	"fmt"

	"github.com/gorlea-ink/gorlea/pkg/ai"
	"github.com/gorlea-ink/gorlea/pkg/ai/gemini"
	"github.com/gorlea-ink/gorlea/pkg/ai/openai"
)

const (
	AI_DRIVER_OPENAI = "openai"
	AI_DRIVER_GEMINI = "gemini"
)

type AIDriver interface {
	Poet() ai.PoetAI
	Transcriber() ai.TranscribeAI
	ChatModel() string
}

type AIConfig struct {
	// Driver selects the backing provider, "openai" covers any
	// OpenAI-compatible endpoint, DeepSeek included.
	Driver string       `toml:"driver"`
	OpenAI OpenAIDriver `toml:"openai"`
	Gemini GeminiDriver `toml:"gemini"`
}

type OpenAIDriver struct {
	Token           string `toml:"token"`
	Endpoint        string `toml:"endpoint"`
	Model           string `toml:"model"`
	TranscribeModel string `toml:"transcribe_model"`
}

type GeminiDriver struct {
	Token string `toml:"token"`
	Model string `toml:"model"`
}

type AI struct {
	poet        ai.PoetAI
	transcriber ai.TranscribeAI
	chatModel   string
}

func (s *AI) Poet() ai.PoetAI {
	return s.poet
}

func (s *AI) Transcriber() ai.TranscribeAI {
	return s.transcriber
}

func (s *AI) ChatModel() string {
	return s.chatModel
}

func SetupAI(cfg AIConfig) (*AI, error) {
	switch cfg.Driver {
	case AI_DRIVER_OPENAI, "":
		driver := openai.New(cfg.OpenAI.Token, cfg.OpenAI.Endpoint, ai.ModelName{
			ChatModel:       cfg.OpenAI.Model,
			TranscribeModel: cfg.OpenAI.TranscribeModel,
		})
		return &AI{
			poet:        driver,
			transcriber: driver,
			chatModel:   cfg.OpenAI.Model,
		}, nil
	case AI_DRIVER_GEMINI:
		driver := gemini.New(cfg.Gemini.Token, cfg.Gemini.Model)
		return &AI{
			poet:        driver,
			transcriber: driver,
			chatModel:   cfg.Gemini.Model,
		}, nil
	default:
		return nil, fmt.Errorf("unknown ai driver %q", cfg.Driver)
	}
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		news, err := SetupAI(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = news
	}
}
