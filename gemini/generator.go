package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/sitedraft"
	"google.golang.org/genai"
)

// DefaultModel is used when NewGenerator is given no model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements sitedraft.Generator at compile time.
var _ sitedraft.Generator = (*Generator)(nil)

// Generator implements sitedraft.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient connects to the Gemini API with an API key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, sitedraft.Errorf(sitedraft.EINVALID, "GEMINI_API_KEY not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Generate returns Gemini's response to a website prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", sitedraft.Errorf(sitedraft.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitedraft.Errorf(sitedraft.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: sitedraft.SystemPrompt}},
		},
		Temperature: &temp,
	}
}
