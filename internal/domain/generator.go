package domain

import "context"

// TextGenerator is the generative model capability. A non-nil error means the
// call failed (including timeouts) and the returned text must be ignored.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
