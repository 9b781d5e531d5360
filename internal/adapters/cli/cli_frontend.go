package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/mikey/llm-reply-writer/internal/core"
	"github.com/mikey/llm-reply-writer/internal/utils"
	"go.uber.org/zap"
)

const previewSize = 500

// mailHeaders are the headers that mark input as an RFC 822 message
// rather than plain text whose first line happens to contain a colon
var mailHeaders = []string{"From", "To", "Subject", "Date", "Message-Id", "Mime-Version", "Content-Type"}

// CLIFrontend generates a reply for a single email read from a file or stdin
type CLIFrontend struct {
	service       *core.ReplyService
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	inputFile     string
	stdin         io.Reader
	out           io.Writer
	tone          string
	verbose       bool
}

// NewCLIFrontend creates a new CLI frontend. An empty inputFile reads from stdin.
func NewCLIFrontend(
	service *core.ReplyService,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	inputFile string,
	stdin io.Reader,
	out io.Writer,
	tone string,
	verbose bool,
) *CLIFrontend {
	return &CLIFrontend{
		service:       service,
		textProcessor: textProcessor,
		logger:        logger,
		inputFile:     inputFile,
		stdin:         stdin,
		out:           out,
		tone:          tone,
		verbose:       verbose,
	}
}

// Run reads the email, generates a reply and writes it to the output
func (f *CLIFrontend) Run(ctx context.Context) error {
	req, err := f.ReadRequest()
	if err != nil {
		return err
	}
	_, err = f.HandleRequest(ctx, req)
	return err
}

// ReadRequest reads the input and turns it into a reply request.
// RFC 822 messages are reduced to their text body, anything else is used as is.
func (f *CLIFrontend) ReadRequest() (*core.EmailRequest, error) {
	input := f.stdin
	if f.inputFile != "" {
		file, err := os.Open(f.inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		input = file
		f.logger.Info("Reading email from file", zap.String("file", f.inputFile))
	} else {
		f.logger.Info("Reading email from stdin")
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read email: %w", err)
	}

	content := string(raw)
	if msg, err := mail.ReadMessage(bytes.NewReader(raw)); err == nil && isMailMessage(msg) {
		text, err := extractTextFromMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to extract email text: %w", err)
		}
		f.logger.Debug("Parsed RFC 822 message",
			zap.String("from", msg.Header.Get("From")),
			zap.String("subject", msg.Header.Get("Subject")))
		if strings.TrimSpace(text) != "" {
			content = text
		} else {
			f.logger.Debug("Message body is empty, using raw input")
		}
	}

	return &core.EmailRequest{
		EmailContent: f.textProcessor.ProcessText(content, 0),
		Tone:         f.tone,
	}, nil
}

func isMailMessage(msg *mail.Message) bool {
	for _, key := range mailHeaders {
		if _, ok := msg.Header[key]; ok {
			return true
		}
	}
	return false
}

// HandleRequest generates a reply and writes it to the output
func (f *CLIFrontend) HandleRequest(ctx context.Context, req *core.EmailRequest) (string, error) {
	if f.verbose {
		preview := f.textProcessor.TruncateText(req.EmailContent, previewSize)
		fmt.Fprintf(f.out, "=== Email ===\n%s\n\n", preview)
		if req.Tone != "" {
			fmt.Fprintf(f.out, "Tone: %s\n\n", req.Tone)
		}
	}

	startTime := time.Now()
	reply, err := f.service.GenerateReply(ctx, req)
	if err != nil {
		f.logger.Error("Failed to generate reply", zap.Error(err))
		return "", err
	}

	if f.verbose {
		fmt.Fprintf(f.out, "=== Reply (%v) ===\n", time.Since(startTime).Round(time.Millisecond))
	}
	fmt.Fprintln(f.out, reply)

	return reply, nil
}

// Start is a no-op for the CLI frontend
func (f *CLIFrontend) Start() error {
	return nil
}

// Stop is a no-op for the CLI frontend
func (f *CLIFrontend) Stop() error {
	return nil
}
