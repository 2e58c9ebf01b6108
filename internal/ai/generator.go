package ai

import "context"

// GenerateConfig bounds a single generation request.
type GenerateConfig struct {
	// MaxOutputTokens caps the response size so a verbose model cannot
	// stall a request. Zero means provider default.
	MaxOutputTokens int32
	Temperature     float32
}

// Generator produces free-text completions for a prompt. Implementations must
// honour context cancellation since generation is the only slow call in a
// request.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, cfg *GenerateConfig) (string, error)
	Model() string
}
