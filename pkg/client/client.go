package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrGeneration classifies every poem-request failure: transport errors and
// non-success statuses alike. Callers treat it as non-fatal to entry
// persistence.
var ErrGeneration = errors.New("poem generation failed")

// PoemClient calls the generation endpoint. It mirrors the server-side
// validation so an empty entry never produces a request.
type PoemClient struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string) *PoemClient {
	return &PoemClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: time.Second * 60},
	}
}

type generateRequest struct {
	Entry    string `json:"entry"`
	Memories string `json:"memories,omitempty"`
}

type generateResponse struct {
	Poem  string `json:"poem"`
	Error string `json:"error"`
}

func (c *PoemClient) GeneratePoem(ctx context.Context, entry, memories string) (string, error) {
	if strings.TrimSpace(entry) == "" {
		return "", fmt.Errorf("empty entry, %w", ErrGeneration)
	}

	raw, err := json.Marshal(generateRequest{Entry: entry, Memories: memories})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request, %w", ErrGeneration)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate-poem", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to build request, %w", ErrGeneration)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s, %w", err.Error(), ErrGeneration)
	}
	defer resp.Body.Close()

	var body generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("failed to decode response, %w", ErrGeneration)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Error != "" {
			return "", fmt.Errorf("server responded %d: %s, %w", resp.StatusCode, body.Error, ErrGeneration)
		}
		return "", fmt.Errorf("server responded %d, %w", resp.StatusCode, ErrGeneration)
	}

	return body.Poem, nil
}
