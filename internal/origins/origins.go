package origins

import (
	"strings"

	"go.uber.org/zap"
)

// Wildcard allows requests from any origin
const Wildcard = "*"

// Policy decides which browser origins may call the API
type Policy struct {
	origins  []string
	allowAll bool
	logger   *zap.Logger
}

// NewPolicy creates a new origin policy. An empty list or a "*" entry allows every origin.
func NewPolicy(allowed []string, logger *zap.Logger) *Policy {
	normalized := make([]string, 0, len(allowed))
	allowAll := len(allowed) == 0
	for _, origin := range allowed {
		origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
		if origin == "" {
			continue
		}
		if origin == Wildcard {
			allowAll = true
		}
		normalized = append(normalized, origin)
	}

	if logger != nil {
		logger.Info("Initialized origin policy",
			zap.Bool("allow_all", allowAll),
			zap.Strings("origins", normalized))
	}

	return &Policy{
		origins:  normalized,
		allowAll: allowAll,
		logger:   logger,
	}
}

// AllowAll reports whether every origin is accepted
func (p *Policy) AllowAll() bool {
	return p.allowAll
}

// IsAllowed checks if a request origin may call the API
func (p *Policy) IsAllowed(origin string) bool {
	if p.allowAll {
		return true
	}
	if origin == "" {
		return false
	}

	origin = strings.ToLower(strings.TrimRight(origin, "/"))
	for _, allowed := range p.origins {
		if allowed == origin {
			return true
		}
	}

	if p.logger != nil {
		p.logger.Debug("Origin rejected", zap.String("origin", origin))
	}
	return false
}
