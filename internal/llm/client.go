package llm

import (
	"context"
)

// Client is the language-model boundary: prompt in, free text out.
// Implementations decide transport, model selection and determinism
// settings; callers must treat the returned text as untrusted.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
