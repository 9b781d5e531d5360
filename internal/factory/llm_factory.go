package factory

import (
	"github.com/mikey/llm-reply-writer/internal/adapters/gemini"
	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	"go.uber.org/zap"
)

// LLMFactory creates LLM clients
type LLMFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger) *LLMFactory {
	return &LLMFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLLMClient creates the Gemini client from the configuration
func (f *LLMFactory) CreateLLMClient() (core.LLMClient, error) {
	geminiCfg, err := f.cfg.GetGemini()
	if err != nil {
		return nil, err
	}

	return gemini.NewFactory(geminiCfg, f.logger).CreateLLMClient()
}

// GetMaxBodySize returns the configured email content limit
func (f *LLMFactory) GetMaxBodySize() int {
	return f.cfg.GetInt("gemini.max_body_size")
}
