package llm

import "context"

// Disabled is a Client used when LLM features are turned off. Every call
// fails with ErrUnavailable so callers exercise their deterministic
// fallbacks.
type Disabled struct{}

func (Disabled) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, ErrUnavailable
}

func (Disabled) Available(context.Context) bool { return false }
