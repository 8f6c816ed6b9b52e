package service

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// sanitizeName strips markup and surrounding space from a user supplied name.
func sanitizeName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	// Entities are decoded first so encoded markup is stripped too.
	// StrictPolicy escapes what it keeps; names are stored as plain text.
	clean := namePolicy.Sanitize(html.UnescapeString(trimmed))
	return strings.TrimSpace(html.UnescapeString(clean))
}
