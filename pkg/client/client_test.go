package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePoem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-poem", r.URL.Path)

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "walked by the river today", req.Entry)

		json.NewEncoder(w).Encode(generateResponse{Poem: "the river kept walking after I stopped"})
	}))
	defer srv.Close()

	poem, err := New(srv.URL).GeneratePoem(context.Background(), "walked by the river today", "")
	assert.NoError(t, err)
	assert.Equal(t, "the river kept walking after I stopped", poem)
}

func TestGeneratePoemEmptyEntry(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := New(srv.URL).GeneratePoem(context.Background(), "   ", "")
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.False(t, called, "empty entry must not reach the server")
}

func TestGeneratePoemServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(generateResponse{Error: "upstream unavailable"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GeneratePoem(context.Background(), "a hard day", "")
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Contains(t, err.Error(), "upstream unavailable")
}
