package llm

import (
	"context"

	"rental-planner/internal/shared"
)

// ContentResponse contains the generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   shared.TokenUsage
}

// TextGenerator is an interface for generating text from a prompt. When
// schema is non-nil the provider is asked for JSON output shaped by it.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, schema *Schema) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
