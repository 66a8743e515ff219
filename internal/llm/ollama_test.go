package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopquery/internal/logger"
)

func TestOllamaClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "json", req.Format)
		assert.Equal(t, 0.1, req.Options["temperature"])
		assert.Contains(t, req.Prompt, "red shoes")

		json.NewEncoder(w).Encode(map[string]string{
			"response": `{"categories":[],"keywords":["red","shoes"]}`,
		})
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "mistral", 5*time.Second, logger.NewNoOpLogger())

	out, err := client.Complete(context.Background(), BuildFilterPrompt("red shoes"))
	require.NoError(t, err)
	assert.Contains(t, out, `"keywords":["red","shoes"]`)
}

func TestOllamaClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "mistral", 5*time.Second, logger.NewNoOpLogger())

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestOllamaClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "mistral", 10*time.Millisecond, logger.NewNoOpLogger())

	_, err := client.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestOllamaClientEmptyResponseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": ""})
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "mistral", 5*time.Second, logger.NewNoOpLogger())

	_, err := client.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"leading prose", `Sure! {"a":1}`, `{"a":1}`},
		{"trailing prose", `{"a":1} hope that helps`, `{"a":1}`},
		{"nested braces", `text {"a":{"b":2}} text`, `{"a":{"b":2}}`},
		{"no object", `nothing here`, ``},
		{"only close brace", `}`, ``},
		{"reversed braces", `} {`, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.input))
		})
	}
}

func TestBuildFilterPromptEmbedsQueryAndSchema(t *testing.T) {
	p := BuildFilterPrompt(`wireless "gaming" headset under $60`)

	assert.Contains(t, p, `wireless "gaming" headset under $60`)
	assert.Contains(t, p, `"sort_by": "relevance" | "price_asc" | "price_desc" | "rating_desc"`)
	assert.Contains(t, p, "Return ONLY JSON")
}
