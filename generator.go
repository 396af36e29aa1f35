package sitedraft

import "context"

// Generator sends a prompt to a language model and returns its text reply.
type Generator interface {
	// Generate returns the model's markdown response to prompt.
	// Returns EINVALID if the prompt is empty.
	Generate(ctx context.Context, prompt string) (string, error)
}

// SystemPrompt asks a model to answer website requests in the shape Extract
// understands: one fenced block per page, each preceded by a filename marker,
// with shared CSS and JS in their own blocks.
const SystemPrompt = `You build small static websites. Answer with fenced code blocks only.
Write each page as its own html block and put <!-- filename: name.html --> on the line before it.
Put all styles in a single css block and all scripts in a single js block.
Do not inline <style> or <script> tags in the pages.`
