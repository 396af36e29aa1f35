// Package groq implements sitedraft.Generator against Groq's
// OpenAI-compatible chat completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitedraft"
)

const (
	// DefaultBaseURL is the base URL of the Groq API.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "llama3-70b-8192"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 * 1024 * 1024
)

// Ensure Generator implements sitedraft.Generator at compile time.
var _ sitedraft.Generator = (*Generator)(nil)

// Generator sends prompts to a Groq chat model.
type Generator struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel sets the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithBaseURL sets the API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(g *Generator) {
		g.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a new Groq Generator.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	g := &Generator{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.client = &http.Client{
		Timeout: g.timeout,
	}

	return g
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate returns the content of the first choice of a chat completion.
// A completion without choices yields an empty string.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", sitedraft.Errorf(sitedraft.EINVALID, "prompt required")
	}
	if g.apiKey == "" {
		return "", sitedraft.Errorf(sitedraft.EINVALID, "GROQ_API_KEY not set")
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: sitedraft.SystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", err
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("decode groq response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, out)
	}

	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// statusError maps a failed API status to an application error.
func statusError(status int, out chatResponse) error {
	msg := http.StatusText(status)
	if out.Error != nil && out.Error.Message != "" {
		msg = out.Error.Message
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return sitedraft.Errorf(sitedraft.EINVALID, "groq: %s", msg)
	case http.StatusTooManyRequests:
		return sitedraft.Errorf(sitedraft.ERATELIMIT, "groq: %s", msg)
	default:
		return fmt.Errorf("groq API error: HTTP %d: %s", status, msg)
	}
}
