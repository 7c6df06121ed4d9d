package clone

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Option is a functional option for configuring the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the log entry used for request tracing
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRequestIDGenerator overrides how X-Request-ID values are produced
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.newRequestID = gen
		}
	}
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// newRequestID prefers time-ordered v7 IDs and falls back to v4
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
