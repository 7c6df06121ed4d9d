package clone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Service paths and headers
const (
	ClonePath       = "clone"
	HealthPath      = "health"
	ContentTypeJSON = "application/json"
	HeaderRequestID = "X-Request-ID"

	// DefaultEndpoint is where the cloning service listens out of the box
	DefaultEndpoint = "http://127.0.0.1:8000"

	// maxErrorBodyBytes bounds how much of a failed response is read for logging
	maxErrorBodyBytes = 4 << 10
)

type cloneRequest struct {
	URL string `json:"url"`
}

type cloneResponse struct {
	HTML *string `json:"html"`
}

// Client issues clone requests against one service endpoint.
// It never retries and sets no timeout of its own.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	log          *logrus.Entry
	newRequestID func() string
}

// NewClient creates a client for the service at endpoint
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid service endpoint %q: %w", endpoint, err)
	}
	if parsed.Scheme != SchemeHTTP && parsed.Scheme != SchemeHTTPS {
		return nil, fmt.Errorf("invalid service endpoint %q: scheme must be http or https", endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid service endpoint %q: host is required", endpoint)
	}

	c := &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		httpClient:   &http.Client{},
		log:          discardLogger(),
		newRequestID: newRequestID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the service base URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit sends exactly one POST /clone for url and returns the html field of
// the response. Every failure is an *Error.
func (c *Client) Submit(ctx context.Context, target string, seq uint64) (string, error) {
	body, err := json.Marshal(cloneRequest{URL: target})
	if err != nil {
		return "", newError(KindInvalidURL, err)
	}

	endpoint, err := url.JoinPath(c.endpoint, ClonePath)
	if err != nil {
		return "", newError(KindNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", newError(KindNetwork, err)
	}

	requestID := c.newRequestID()
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("Accept", ContentTypeJSON)
	req.Header.Set(HeaderRequestID, requestID)

	log := c.log.WithFields(logrus.Fields{
		"seq":        seq,
		"request_id": requestID,
		"url":        target,
	})
	log.Info("Sending clone request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Clone request failed before a response arrived")
		return "", newError(KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"detail": strings.TrimSpace(string(detail)),
		}).Warn("Clone service returned an error status")
		return "", newHTTPError(resp.StatusCode)
	}

	var payload cloneResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Clone response is not valid JSON")
		return "", newError(KindDecode, err)
	}
	if payload.HTML == nil {
		log.Warn("Clone response has no html field")
		return "", newError(KindDecode, errors.New("response has no html field"))
	}

	log.WithField("html_bytes", len(*payload.HTML)).Info("Clone request completed")
	return *payload.HTML, nil
}

// Health calls GET /health once
func (c *Client) Health(ctx context.Context) error {
	endpoint, err := url.JoinPath(c.endpoint, HealthPath)
	if err != nil {
		return newError(KindNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return newError(KindNetwork, err)
	}
	req.Header.Set(HeaderRequestID, c.newRequestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(KindNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode)
	}
	return nil
}
