package ai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
)

type ModelName struct {
	ChatModel       string
	TranscribeModel string
}

// GeneratePoemRequest is the composed request a poet driver receives. The
// system prompt already contains the persona, the optional memories block
// and the language hint.
type GeneratePoemRequest struct {
	SystemPrompt string
	Entry        string
}

type GeneratePoemResult struct {
	Poem  string
	Model string
	Usage *openai.Usage
}

// PoetAI generates verse from a journal entry. Output is raw model text;
// sanitization happens in the caller.
type PoetAI interface {
	GeneratePoem(ctx context.Context, req GeneratePoemRequest) (*GeneratePoemResult, error)
}

// TranscribeAI turns captured audio into plain text. Drivers that cannot
// transcribe return ErrUnsupported.
type TranscribeAI interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

var ErrUnsupported = fmt.Errorf("operation not supported by this driver")

// NumTokens estimates the token count of a chat request, used to bound the
// entry size before any model call is made.
func NumTokens(messages []openai.ChatCompletionMessage, model string) (numTokens int, err error) {
	var tokensPerMessage, tokensPerName int
	switch model {
	case "gpt-3.5-turbo-0613",
		"gpt-3.5-turbo-16k-0613",
		"gpt-4-0314",
		"gpt-4-32k-0314",
		"gpt-4-0613",
		"gpt-4-32k-0613":
		tokensPerMessage = 3
		tokensPerName = 1
	case "gpt-3.5-turbo-0301":
		tokensPerMessage = 4 // every message follows <|start|>{role/name}\n{content}<|end|>\n
		tokensPerName = -1   // if there's a name, the role is omitted
	default:
		if strings.Contains(model, "gpt-4") {
			return NumTokens(messages, "gpt-4-0613")
		} else {
			return NumTokens(messages, "gpt-3.5-turbo-0613")
		}
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		err = fmt.Errorf("encoding for model: %v", err)
		return
	}

	for _, message := range messages {
		numTokens += tokensPerMessage
		numTokens += len(tkm.Encode(message.Content, nil, nil))
		numTokens += len(tkm.Encode(message.Role, nil, nil))
		numTokens += len(tkm.Encode(message.Name, nil, nil))
		if message.Name != "" {
			numTokens += tokensPerName
		}
	}
	numTokens += 3 // every reply is primed with <|start|>assistant<|message|>
	return numTokens, nil
}
