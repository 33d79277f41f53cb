package llm

import "context"

// Generator is a minimal abstraction for single-prompt completion models.
// Concrete providers live in subpackages so the domain never imports them.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
