// Package normalize canonicalizes user-supplied links to https form.
package normalize

import (
	"net/url"
	"strings"
)

// URL returns the canonical https form of a link: missing schemes are added,
// http is upgraded, the host is lowercased and a default port is stripped.
// Empty input stays empty and unparseable input is returned as-is.
func URL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Scheme = "https"
	host := strings.ToLower(u.Host)
	host = strings.TrimSuffix(host, ":443")
	host = strings.TrimSuffix(host, ":80")
	u.Host = host

	return u.String()
}
