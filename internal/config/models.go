package config

import (
	"fmt"
	"time"
)

// DefaultGeminiAPIURL is the generateContent endpoint the API key is appended to
const DefaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key="

// GeminiConfig represents the configuration for the Gemini REST API
type GeminiConfig struct {
	APIURL      string
	APIKey      string
	Timeout     time.Duration
	MaxBodySize int
}

// ServerConfig represents the configuration for the HTTP frontend
type ServerConfig struct {
	Type            string
	ListenAddress   string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// CLIConfig represents the configuration for the command-line frontend
type CLIConfig struct {
	Tone      string
	InputFile string
	Verbose   bool
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() (GeminiConfig, error) {
	timeout, err := c.GetDuration("gemini.timeout")
	if err != nil {
		return GeminiConfig{}, fmt.Errorf("invalid gemini timeout: %w", err)
	}

	return GeminiConfig{
		APIURL:      c.GetString("gemini.api_url"),
		APIKey:      c.GetString("gemini.api_key"),
		Timeout:     timeout,
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}, nil
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server read timeout: %w", err)
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server write timeout: %w", err)
	}
	shutdownTimeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid server shutdown timeout: %w", err)
	}

	return ServerConfig{
		Type:            c.GetString("server.type"),
		ListenAddress:   c.GetString("server.listen_address"),
		AllowedOrigins:  c.GetStringSlice("server.allowed_origins"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		MetricsEnabled:  c.GetBool("server.metrics_enabled"),
	}, nil
}

// GetCLI returns the CLI configuration
func (c *Config) GetCLI() CLIConfig {
	return CLIConfig{
		Tone:      c.GetString("cli.tone"),
		InputFile: c.GetString("cli.input_file"),
		Verbose:   c.GetBool("cli.verbose"),
	}
}
