package factory

import (
	"fmt"
	"os"

	"github.com/mikey/llm-reply-writer/internal/adapters/cli"
	"github.com/mikey/llm-reply-writer/internal/adapters/server"
	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	"github.com/mikey/llm-reply-writer/internal/origins"
	"github.com/mikey/llm-reply-writer/internal/ports"
	"github.com/mikey/llm-reply-writer/internal/utils"
	"go.uber.org/zap"
)

// FrontendFactory creates frontends based on configuration
type FrontendFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	replyService  *core.ReplyService
	textProcessor *utils.TextProcessor
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(
	cfg *config.Config,
	logger *zap.Logger,
	replyService *core.ReplyService,
	textProcessor *utils.TextProcessor,
) *FrontendFactory {
	return &FrontendFactory{
		cfg:           cfg,
		logger:        logger,
		replyService:  replyService,
		textProcessor: textProcessor,
	}
}

// CreateFrontend creates a frontend based on the configuration
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	serverCfg, err := f.cfg.GetServer()
	if err != nil {
		return nil, err
	}

	switch serverCfg.Type {
	case "http":
		policy := origins.NewPolicy(serverCfg.AllowedOrigins, f.logger)
		return server.NewHTTPServer(f.replyService, policy, f.logger, serverCfg), nil
	case "cli":
		cliCfg := f.cfg.GetCLI()
		return cli.NewCLIFrontend(
			f.replyService,
			f.textProcessor,
			f.logger,
			cliCfg.InputFile,
			os.Stdin,
			os.Stdout,
			cliCfg.Tone,
			cliCfg.Verbose,
		), nil
	default:
		return nil, fmt.Errorf("unsupported server type: %s", serverCfg.Type)
	}
}
