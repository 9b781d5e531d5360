package gemini

import (
	"fmt"
	"net/http"

	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	"go.uber.org/zap"
)

// Factory creates new instances of GeminiClient
type Factory struct {
	cfg    config.GeminiConfig
	logger *zap.Logger
}

// NewFactory creates a new factory for GeminiClient instances
func NewFactory(cfg config.GeminiConfig, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLLMClient creates a new GeminiClient with its own HTTP client
func (f *Factory) CreateLLMClient() (core.LLMClient, error) {
	if f.cfg.APIURL == "" {
		return nil, fmt.Errorf("gemini API URL is required")
	}
	if f.cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	httpClient := &http.Client{
		Timeout: f.cfg.Timeout,
	}

	f.logger.Info("Created Gemini client",
		zap.Duration("timeout", f.cfg.Timeout))

	return NewGeminiClient(httpClient, f.cfg.APIURL, f.cfg.APIKey, f.logger), nil
}
