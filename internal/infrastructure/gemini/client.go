// Package gemini is a minimal client for the generative-text upstream.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/observability"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client sends composed prompts to a text-generation model and returns the
// generated text verbatim. No retry policy: any failure is terminal for the
// request that triggered it.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient builds a client for the given model. An empty baseURL selects the
// public endpoint; tests point it at a local server.
func NewClient(baseURL, apiKey, model string, httpc *http.Client, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpc:   httpc,
		log:     log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt to the model and returns the first candidate's
// text. All failures surface as *domain.GenerationError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	encoded, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &domain.GenerationError{Message: err.Error()}
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(encoded))
	if err != nil {
		return "", &domain.GenerationError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	observability.ObserveUpstream("generator", start, err)
	if err != nil {
		return "", &domain.GenerationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.GenerationError{Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn().Int("status", resp.StatusCode).Str("model", c.model).Msg("generation request failed")
		return "", &domain.GenerationError{
			Message: fmt.Sprintf("model returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var res generateResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", &domain.GenerationError{Message: err.Error()}
	}

	var text strings.Builder
	for _, cand := range res.Candidates {
		for _, p := range cand.Content.Parts {
			text.WriteString(p.Text)
		}
		break // first candidate only
	}
	if text.Len() == 0 {
		return "", &domain.GenerationError{Message: "model returned an empty response"}
	}
	return text.String(), nil
}
