// Package llm defines the text-generation capability redline depends on.
package llm

import (
	"context"
	"errors"
)

// Generator produces text for a prompt. Implementations make exactly one
// synchronous request per call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sentinel errors shared by generation clients.
var (
	ErrUnauthorized  = errors.New("llm: invalid or missing API key")
	ErrRateLimited   = errors.New("llm: rate limited")
	ErrUnavailable   = errors.New("llm: service unavailable")
	ErrEmptyResponse = errors.New("llm: empty response")
)

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
