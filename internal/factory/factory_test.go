package factory

import (
	"testing"

	"github.com/mikey/llm-reply-writer/internal/adapters/cli"
	"github.com/mikey/llm-reply-writer/internal/adapters/server"
	"github.com/mikey/llm-reply-writer/internal/config"
	"github.com/mikey/llm-reply-writer/internal/core"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

func TestCreateLLMClientRequiresKey(t *testing.T) {
	g := NewWithT(t)
	f := NewLLMFactory(config.NewFromViper(config.NewEmptyViper()), zaptest.NewLogger(t))

	_, err := f.CreateLLMClient()
	g.Expect(err).To(MatchError(ContainSubstring("API key is required")))
}

func TestCreateLLMClient(t *testing.T) {
	g := NewWithT(t)
	v := config.NewEmptyViper()
	v.Set("gemini.api_key", "k")
	v.Set("gemini.max_body_size", 2048)
	f := NewLLMFactory(config.NewFromViper(v), zaptest.NewLogger(t))

	client, err := f.CreateLLMClient()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(client).NotTo(BeNil())
	g.Expect(f.GetMaxBodySize()).To(Equal(2048))
}

func newFrontendFactory(t *testing.T, serverType string) *FrontendFactory {
	logger := zaptest.NewLogger(t)
	v := config.NewEmptyViper()
	v.Set("server.type", serverType)
	tp := NewTextProcessorFactory(logger).CreateTextProcessor()
	return NewFrontendFactory(config.NewFromViper(v), logger, core.NewReplyService(nil, tp, logger, 0), tp)
}

func TestCreateFrontend(t *testing.T) {
	g := NewWithT(t)

	httpFrontend, err := newFrontendFactory(t, "http").CreateFrontend()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(httpFrontend).To(BeAssignableToTypeOf(&server.HTTPServer{}))

	cliFrontend, err := newFrontendFactory(t, "cli").CreateFrontend()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cliFrontend).To(BeAssignableToTypeOf(&cli.CLIFrontend{}))

	_, err = newFrontendFactory(t, "smtp").CreateFrontend()
	g.Expect(err).To(MatchError(ContainSubstring("unsupported server type")))
}
