package origins

import (
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

func TestWildcardAllowsAnything(t *testing.T) {
	g := NewWithT(t)
	p := NewPolicy([]string{"*"}, zaptest.NewLogger(t))

	g.Expect(p.AllowAll()).To(BeTrue())
	g.Expect(p.IsAllowed("https://mail.google.com")).To(BeTrue())
	g.Expect(p.IsAllowed("")).To(BeTrue())
}

func TestEmptyListAllowsAnything(t *testing.T) {
	g := NewWithT(t)
	g.Expect(NewPolicy(nil, nil).AllowAll()).To(BeTrue())
}

func TestExplicitOrigins(t *testing.T) {
	g := NewWithT(t)
	p := NewPolicy([]string{" https://Mail.Google.com/ ", "chrome-extension://abc"}, zaptest.NewLogger(t))

	g.Expect(p.AllowAll()).To(BeFalse())
	g.Expect(p.IsAllowed("https://mail.google.com")).To(BeTrue())
	g.Expect(p.IsAllowed("CHROME-EXTENSION://abc")).To(BeTrue())
	g.Expect(p.IsAllowed("https://evil.example")).To(BeFalse())
	g.Expect(p.IsAllowed("")).To(BeFalse())
}
