package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestDefaults(t *testing.T) {
	g := NewWithT(t)
	cfg := NewFromViper(NewEmptyViper())

	gemini, err := cfg.GetGemini()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(gemini.APIURL).To(Equal(DefaultGeminiAPIURL))
	g.Expect(gemini.APIKey).To(BeEmpty())
	g.Expect(gemini.Timeout).To(Equal(30 * time.Second))
	g.Expect(gemini.MaxBodySize).To(BeZero())

	server, err := cfg.GetServer()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(server.Type).To(Equal("http"))
	g.Expect(server.ListenAddress).To(Equal("0.0.0.0:8080"))
	g.Expect(server.AllowedOrigins).To(ConsistOf("*"))
	g.Expect(server.ShutdownTimeout).To(Equal(10 * time.Second))
	g.Expect(server.MetricsEnabled).To(BeTrue())
}

func TestInvalidTimeout(t *testing.T) {
	g := NewWithT(t)
	v := NewEmptyViper()
	v.Set("gemini.timeout", "soon")

	_, err := NewFromViper(v).GetGemini()
	g.Expect(err).To(MatchError(ContainSubstring("invalid gemini timeout")))
}

func TestNewFromFile(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
gemini:
  api_url: "http://localhost:9999/generate?key="
  api_key: "secret"
  timeout: "5s"
server:
  listen_address: "127.0.0.1:9090"
  allowed_origins:
    - "https://mail.google.com"
`)
	g.Expect(os.WriteFile(path, content, 0o600)).To(Succeed())

	cfg, err := NewFromFile(path)
	g.Expect(err).NotTo(HaveOccurred())

	gemini, err := cfg.GetGemini()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(gemini.APIURL).To(Equal("http://localhost:9999/generate?key="))
	g.Expect(gemini.APIKey).To(Equal("secret"))
	g.Expect(gemini.Timeout).To(Equal(5 * time.Second))

	server, err := cfg.GetServer()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(server.ListenAddress).To(Equal("127.0.0.1:9090"))
	g.Expect(server.AllowedOrigins).To(ConsistOf("https://mail.google.com"))
	// untouched keys keep their defaults
	g.Expect(server.Type).To(Equal("http"))
}

func TestNewFromFileMissing(t *testing.T) {
	g := NewWithT(t)
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	g.Expect(err).To(HaveOccurred())
}
