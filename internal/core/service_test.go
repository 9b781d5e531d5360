package core

import (
	"context"
	"errors"
	"testing"

	"github.com/mikey/llm-reply-writer/internal/utils"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

type fakeLLMClient struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeLLMClient) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func newTestService(t *testing.T, client LLMClient, maxBodySize int) *ReplyService {
	logger := zaptest.NewLogger(t)
	return NewReplyService(client, utils.NewTextProcessor(logger), logger, maxBodySize)
}

func TestGenerateReply(t *testing.T) {
	g := NewWithT(t)
	client := &fakeLLMClient{reply: "Hello"}
	svc := newTestService(t, client, 0)

	reply, err := svc.GenerateReply(context.Background(), &EmailRequest{EmailContent: "Hi", Tone: "formal"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(reply).To(Equal("Hello"))
	g.Expect(client.prompts).To(HaveLen(1))
	g.Expect(client.prompts[0]).To(Equal(BuildPrompt(&EmailRequest{EmailContent: "Hi", Tone: "formal"})))
}

func TestGenerateReplyPropagatesError(t *testing.T) {
	g := NewWithT(t)
	boom := errors.New("boom")
	svc := newTestService(t, &fakeLLMClient{err: boom}, 0)

	reply, err := svc.GenerateReply(context.Background(), &EmailRequest{EmailContent: "Hi"})
	g.Expect(err).To(MatchError(boom))
	g.Expect(reply).To(BeEmpty())
}

func TestGenerateReplyTruncatesWhenLimited(t *testing.T) {
	g := NewWithT(t)
	client := &fakeLLMClient{reply: "ok"}
	svc := newTestService(t, client, 5)

	_, err := svc.GenerateReply(context.Background(), &EmailRequest{EmailContent: "0123456789"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(client.prompts[0]).To(ContainSubstring(originalMarker + "01234" + utils.TruncationMarker))
	g.Expect(client.prompts[0]).NotTo(ContainSubstring("56789"))
}
