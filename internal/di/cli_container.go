package di

import (
	"flag"
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/logging"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Gemini flags
	GeminiAPIURL string
	GeminiAPIKey string
	Timeout      time.Duration
	MaxBodySize  int

	// Reply flags
	Tone string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// RegisterFlags binds the CLI flags to fs
func RegisterFlags(fs *flag.FlagSet) *CLIFlags {
	flags := &CLIFlags{}

	// Gemini flags
	fs.StringVar(&flags.GeminiAPIURL, "gemini-api-url", config.DefaultGeminiAPIURL, "Gemini generateContent URL the API key is appended to")
	fs.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	fs.DurationVar(&flags.Timeout, "timeout", 30*time.Second, "Timeout for the Gemini API call")
	fs.IntVar(&flags.MaxBodySize, "max-body-size", 0, "Maximum email content size sent to Gemini (0 for no limit)")

	// Reply flags
	fs.StringVar(&flags.Tone, "tone", "", "Tone of the reply, e.g. friendly or formal")

	// Input flags
	fs.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	return flags
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := RegisterFlags(flag.CommandLine)
	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			// The CLI always runs the CLI frontend
			cfg.GetViper().Set("server.type", "cli")
			cfg.GetViper().Set("cli.input_file", flags.InputFile)
			cfg.GetViper().Set("cli.verbose", flags.Verbose)
			if flags.Tone != "" {
				cfg.GetViper().Set("cli.tone", flags.Tone)
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	if err := provideCommon(container); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// Set some cli specific settings
	v.Set("server.type", "cli")
	v.Set("server.metrics_enabled", false)
	v.Set("cli.input_file", flags.InputFile)
	v.Set("cli.tone", flags.Tone)
	v.Set("cli.verbose", flags.Verbose)

	// Gemini configuration
	v.Set("gemini.api_url", flags.GeminiAPIURL)
	apiKey := flags.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("REPLY_WRITER_GEMINI_API_KEY")
	}
	v.Set("gemini.api_key", apiKey)
	v.Set("gemini.timeout", flags.Timeout.String())
	v.Set("gemini.max_body_size", flags.MaxBodySize)

	return config.NewFromViper(v)
}
