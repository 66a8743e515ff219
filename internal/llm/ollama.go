package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopquery/internal/logger"
)

// OllamaClient talks to a locally hosted Ollama instance via the
// /api/generate endpoint. Temperature is pinned low so the model
// produces schema-shaped output as consistently as it can.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        logger.Logger
}

// NewOllamaClient builds a client with one shared http.Client; create it
// once at startup and reuse it across requests.
func NewOllamaClient(baseURL, model string, timeout time.Duration, log logger.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format"`
	Options map[string]any `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (o *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Model:   o.model,
		Prompt:  prompt,
		Stream:  false,
		Format:  "json",
		Options: map[string]any{"temperature": 0.1},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/api/generate",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	if result.Response == "" {
		return "", errors.New("empty ollama response")
	}

	o.log.Debug("ollama completion", map[string]interface{}{
		"model": o.model,
		"bytes": len(result.Response),
	})

	return result.Response, nil
}
