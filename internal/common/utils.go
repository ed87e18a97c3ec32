package common

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned for seed URLs that stay malformed after cleanup.
var ErrInvalidURL = errors.New("invalid URL")

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://\S+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Surrounding whitespace is trimmed and a markdown link or an <...> wrapper
// is unwrapped. Characters that may legally end a URL are left alone.
func SanitizeURL(rawURL string) string {
	// Trim all whitespace from edges
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	// Example: "[click here](https://example.com)" -> "https://example.com"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		return matches[1]
	}

	// Angle brackets never appear unescaped in a URL
	// Example: "<https://example.com>" -> "https://example.com"
	if strings.HasPrefix(cleaned, "<") && strings.HasSuffix(cleaned, ">") {
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}

	return cleaned
}

// NormalizeURL sanitizes rawURL and checks that the result is a fetchable
// http(s) URL. The cleaned URL is returned.
func NormalizeURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)

	if cleaned == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}

	return cleaned, nil
}
