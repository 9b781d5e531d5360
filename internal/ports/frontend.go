package ports

import (
	"context"

	"github.com/mikey/llm-reply-writer/internal/core"
)

// Frontend defines the interface for the ways replies are requested
type Frontend interface {
	// HandleRequest generates a reply for a single request
	HandleRequest(ctx context.Context, req *core.EmailRequest) (string, error)

	// Start starts the frontend
	Start() error

	// Stop stops the frontend
	Stop() error
}
