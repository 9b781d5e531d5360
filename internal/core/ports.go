package core

import (
	"context"
)

// LLMClient defines the interface for interacting with the text generation provider
type LLMClient interface {
	// Generate sends a prompt to the provider and returns the generated text
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReplyGenerator produces a reply for an incoming email
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, req *EmailRequest) (string, error)
}
