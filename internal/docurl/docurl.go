// Package docurl builds links to the external document generator.
package docurl

import (
	"strings"

	"docdesk/internal/domains"
)

// Assets are optional images passed to the generator as data URIs.
type Assets struct {
	Logo      string `json:"logo,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// Build appends every field of fields to baseURL in the kind's fixed order,
// blank values included, followed by any assets. baseURL is expected to carry
// the type parameter already.
func Build(baseURL string, fields domains.Fields, assets Assets) string {
	var b strings.Builder
	b.WriteString(baseURL)
	if fields != nil {
		for _, p := range fields.Pairs() {
			appendParam(&b, p.Name, p.Value)
		}
	}
	appendAssets(&b, assets)
	return b.String()
}

// BuildLink is the shareable descriptor link: baseURL plus attached assets.
func BuildLink(baseURL string, assets Assets) string {
	var b strings.Builder
	b.WriteString(baseURL)
	appendAssets(&b, assets)
	return b.String()
}

func appendAssets(b *strings.Builder, assets Assets) {
	if assets.Logo != "" {
		appendParam(b, "logo", assets.Logo)
	}
	if assets.Signature != "" {
		appendParam(b, "signature", assets.Signature)
	}
}

func appendParam(b *strings.Builder, name, value string) {
	b.WriteByte('&')
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(EncodeComponent(value))
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// letters, digits and -_.!~*'() pass through, everything else is escaped
// byte by byte as UTF-8.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
