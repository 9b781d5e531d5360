package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	"github.com/mikey/llm-reply-writer/internal/factory"
	"github.com/mikey/llm-reply-writer/internal/logging"
	"github.com/mikey/llm-reply-writer/internal/ports"
	"github.com/mikey/llm-reply-writer/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideCommon(container); err != nil {
		return nil, err
	}

	return container, nil
}

// provideCommon registers everything below the config and logger
func provideCommon(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register LLM client
	if err := container.Provide(func(f *factory.LLMFactory) (core.LLMClient, error) {
		return f.CreateLLMClient()
	}); err != nil {
		return err
	}

	// Register reply service
	if err := container.Provide(func(
		llmClient core.LLMClient,
		textProcessor *utils.TextProcessor,
		logger *zap.Logger,
		f *factory.LLMFactory,
	) *core.ReplyService {
		return core.NewReplyService(llmClient, textProcessor, logger, f.GetMaxBodySize())
	}); err != nil {
		return err
	}

	// Register frontend
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return err
	}

	return nil
}
