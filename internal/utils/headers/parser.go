// Package headers parses extra request headers given as "Key: Value" strings.
package headers

import (
	"fmt"
	"net/textproto"
	"strings"
)

// reserved headers are owned by the fetcher and cannot be overridden
var reserved = map[string]bool{
	"User-Agent": true,
	"Host":       true,
}

// ParseHeaders converts "Key: Value" strings into a map keyed by the
// canonical header name. Malformed entries and reserved names are errors.
func ParseHeaders(h []string) (map[string]string, error) {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		parts := strings.SplitN(hdr, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header %q: expected \"Key: Value\"", hdr)
		}
		key := textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(parts[0]))
		if key == "" {
			return nil, fmt.Errorf("invalid header %q: empty name", hdr)
		}
		if reserved[key] {
			return nil, fmt.Errorf("header %s cannot be set this way", key)
		}
		m[key] = strings.TrimSpace(parts[1])
	}
	return m, nil
}

// Merge returns base overlaid with extra; keys are canonicalized
func Merge(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	for k, v := range extra {
		out[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	return out
}
