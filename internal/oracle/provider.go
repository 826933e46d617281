// Package oracle wraps the language-model services used to judge and to
// produce trivia answers. Callers only see text in and text out.
package oracle

import "context"

// Provider sends a single prompt to a language model and returns its reply.
type Provider interface {
	// Complete issues one request and returns the trimmed reply text.
	// Failures are reported as *ErrProviderUnavailable, *ErrRateLimit or
	// *ErrInvalidResponse.
	Complete(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role.
	System string

	// User is the prompt body.
	User string

	// MaxTokens caps the reply length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}
