package di

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/llm-reply-writer/internal/adapters/cli"
	"github.com/mikey/llm-reply-writer/internal/adapters/server"
	"github.com/mikey/llm-reply-writer/internal/ports"
	. "github.com/onsi/gomega"
)

func TestBuildContainerProvidesHTTPFrontend(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("REPLY_WRITER_GEMINI_API_KEY", "test-key")
	t.Setenv("REPLY_WRITER_SERVER_LISTEN_ADDRESS", "127.0.0.1:0")

	container, err := BuildContainer()
	g.Expect(err).NotTo(HaveOccurred())

	err = container.Invoke(func(frontend ports.Frontend) {
		g.Expect(frontend).To(BeAssignableToTypeOf(&server.HTTPServer{}))
	})
	g.Expect(err).NotTo(HaveOccurred())
}

func TestBuildContainerFailsWithoutKey(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("REPLY_WRITER_GEMINI_API_KEY", "")

	container, err := BuildContainer()
	g.Expect(err).NotTo(HaveOccurred())

	err = container.Invoke(func(frontend ports.Frontend) {})
	g.Expect(err).To(MatchError(ContainSubstring("API key is required")))
}

func TestRegisterFlags(t *testing.T) {
	g := NewWithT(t)
	fs := flag.NewFlagSet("reply-cli", flag.ContinueOnError)
	flags := RegisterFlags(fs)

	g.Expect(fs.Parse([]string{"-tone", "formal", "-gemini-api-key", "k", "-timeout", "5s", "-file", "mail.eml"})).To(Succeed())
	g.Expect(flags.Tone).To(Equal("formal"))
	g.Expect(flags.GeminiAPIKey).To(Equal("k"))
	g.Expect(flags.Timeout.String()).To(Equal("5s"))
	g.Expect(flags.InputFile).To(Equal("mail.eml"))
}

func TestCLIContainerEndToEnd(t *testing.T) {
	g := NewWithT(t)

	var captured []byte
	var key string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		key = r.URL.Query().Get("key")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"See you then."}]}}]}`)
	}))
	defer provider.Close()

	input := filepath.Join(t.TempDir(), "mail.txt")
	g.Expect(os.WriteFile(input, []byte("Meeting at 3pm tomorrow?"), 0o600)).To(Succeed())

	fs := flag.NewFlagSet("reply-cli", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	g.Expect(fs.Parse([]string{
		"-gemini-api-url", provider.URL + "/generate?key=",
		"-gemini-api-key", "cli-key",
		"-file", input,
		"-tone", "casual",
	})).To(Succeed())

	container, err := BuildCLIContainer(flags)
	g.Expect(err).NotTo(HaveOccurred())

	err = container.Invoke(func(frontend ports.Frontend) error {
		cliFrontend, ok := frontend.(*cli.CLIFrontend)
		g.Expect(ok).To(BeTrue())

		req, err := cliFrontend.ReadRequest()
		if err != nil {
			return err
		}
		reply, err := cliFrontend.HandleRequest(context.Background(), req)
		g.Expect(reply).To(Equal("See you then."))
		return err
	})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(key).To(Equal("cli-key"))
	g.Expect(bytes.Contains(captured, []byte("Use a casual tone."))).To(BeTrue())
	g.Expect(bytes.Contains(captured, []byte(`Meeting at 3pm tomorrow?`))).To(BeTrue())
}
