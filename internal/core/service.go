package core

import (
	"context"
	"time"

	"github.com/mikey/llm-reply-writer/internal/utils"
	"go.uber.org/zap"
)

// ReplyService is the core service for generating email replies
type ReplyService struct {
	llmClient     LLMClient
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	maxBodySize   int
}

// NewReplyService creates a new reply service.
// maxBodySize <= 0 sends the email content to the provider as is.
func NewReplyService(
	llmClient LLMClient,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	maxBodySize int,
) *ReplyService {
	return &ReplyService{
		llmClient:     llmClient,
		textProcessor: textProcessor,
		logger:        logger,
		maxBodySize:   maxBodySize,
	}
}

// GenerateReply builds the prompt for req and returns the provider's reply
func (s *ReplyService) GenerateReply(ctx context.Context, req *EmailRequest) (string, error) {
	content := req.EmailContent
	if s.maxBodySize > 0 {
		content = s.textProcessor.TruncateText(content, s.maxBodySize)
	}

	prompt := BuildPrompt(&EmailRequest{EmailContent: content, Tone: req.Tone})

	s.logger.Debug("Generating reply",
		zap.Int("content_size", len(req.EmailContent)),
		zap.Int("prompt_size", len(prompt)),
		zap.String("tone", req.Tone))

	start := time.Now()
	reply, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to generate reply",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)))
		return "", err
	}

	s.logger.Info("Reply generated",
		zap.Int("reply_size", len(reply)),
		zap.Duration("elapsed", time.Since(start)))

	return reply, nil
}
