package clone

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Accepted URL schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

var (
	errEmptyURL    = errors.New("URL is empty")
	errMissingHost = errors.New("URL has no host")
)

// ValidateURL turns raw input into a URL worth sending to the service.
// The trimmed input must parse, carry an explicit http or https scheme and
// name a host.
func ValidateURL(raw string) (*url.URL, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, newError(KindInvalidURL, errEmptyURL)
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return nil, newError(KindInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != SchemeHTTP && scheme != SchemeHTTPS {
		return nil, newError(KindInvalidURL, fmt.Errorf("URL must start with http:// or https://"))
	}

	if parsed.Hostname() == "" {
		return nil, newError(KindInvalidURL, errMissingHost)
	}

	return parsed, nil
}
