package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-reply-writer/internal/core"
	"github.com/mikey/llm-reply-writer/internal/metrics"
	"go.uber.org/zap"
)

const textPlain = "text/plain; charset=utf-8"

// EmailHandler serves reply generation requests
type EmailHandler struct {
	generator core.ReplyGenerator
	logger    *zap.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(generator core.ReplyGenerator, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate handles POST /api/email/generate
func (h *EmailHandler) Generate(c *gin.Context) {
	var req core.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Rejected malformed request body", zap.Error(err))
		c.Data(http.StatusBadRequest, textPlain, []byte("invalid request body"))
		return
	}

	reply, err := h.generator.GenerateReply(c.Request.Context(), &req)
	if err != nil {
		metrics.RecordReply(false)
		h.logger.Error("Reply generation failed", zap.Error(err))
		c.Data(http.StatusInternalServerError, textPlain, []byte("failed to generate reply"))
		return
	}

	metrics.RecordReply(true)
	c.Data(http.StatusOK, textPlain, []byte(reply))
}
