// Package redact masks credentials in server configurations before they are
// printed or logged.
package redact

import (
	"net/url"
	"strings"
)

// SecretKeyPatterns contains substrings that indicate a key likely contains sensitive data.
// Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// TokenPrefixes contains known API token prefixes that indicate sensitive values
// regardless of key name.
var TokenPrefixes = []string{
	"ghp_",    // GitHub personal access token
	"gho_",    // GitHub OAuth token
	"ghs_",    // GitHub server-to-server token
	"sk-",     // OpenAI/Anthropic keys
	"sk_",     // Stripe secret keys
	"phc_",    // PostHog project keys
	"pat-",    // HubSpot private app tokens
	"secret_", // Notion integration tokens
	"xoxb-",   // Slack bot token
	"xoxp-",   // Slack user token
}

// authSchemes are kept visible when masking an Authorization header.
var authSchemes = []string{"Bearer ", "Basic ", "Token "}

// Map returns a copy of m with sensitive values masked.
// Keys matching SecretKeyPatterns or values matching TokenPrefixes are masked.
func Map(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}

	masked := make(map[string]string, len(m))
	for k, v := range m {
		if ShouldMask(k) || ContainsTokenPrefix(v) {
			masked[k] = Header(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

// Header masks a header value, preserving a leading authorization scheme.
//
//	Header("Bearer sk_test_123") // "Bearer ****_123"
func Header(value string) string {
	for _, scheme := range authSchemes {
		if rest, ok := strings.CutPrefix(value, scheme); ok {
			return scheme + Value(rest)
		}
	}
	return Value(value)
}

// Value masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func Value(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// URL redacts credentials from URLs.
// URLs with embedded credentials (user:pass@host) become (user:****@host).
// If the URL cannot be parsed, it is returned unchanged.
func URL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}

	password, hasPassword := parsed.User.Password()
	if !hasPassword || password == "" {
		return rawURL
	}

	parsed.User = url.UserPassword(parsed.User.Username(), Value(password))
	return parsed.String()
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
// Matching is case-insensitive. A bare "key" names a lookup key rather than a
// credential, so only qualified forms such as "apiKey" or "X-API-Key" match.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(strings.TrimSpace(key))
	if upper == "KEY" {
		return false
	}
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix,
// either bare or after an authorization scheme.
func ContainsTokenPrefix(value string) bool {
	for _, scheme := range authSchemes {
		value = strings.TrimPrefix(value, scheme)
	}
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
