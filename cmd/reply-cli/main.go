package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/llm-reply-writer/internal/adapters/cli"
	"github.com/mikey/llm-reply-writer/internal/di"
	"github.com/mikey/llm-reply-writer/internal/ports"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, frontend ports.Frontend) error {
	defer logger.Sync()

	cliFrontend, ok := frontend.(*cli.CLIFrontend)
	if !ok {
		return fmt.Errorf("unexpected frontend %T", frontend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cliFrontend.Run(ctx)
}
