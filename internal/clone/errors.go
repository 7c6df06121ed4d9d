package clone

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a submission failed
type ErrorKind string

const (
	// KindInvalidURL means the input was rejected locally; no request was sent
	KindInvalidURL ErrorKind = "invalid_url"

	// KindNetwork means no response was received
	KindNetwork ErrorKind = "network"

	// KindHTTP means the service answered with a non-2xx status
	KindHTTP ErrorKind = "http"

	// KindDecode means a 2xx body was malformed or had no html field
	KindDecode ErrorKind = "decode"
)

// Error is the only error type that leaves this package
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status, set only for KindHTTP
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Kind == KindHTTP {
		msg = fmt.Sprintf("%s %d", e.Kind, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the single human-readable message for the error banner
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Please enter a valid URL, including http:// or https://"
	case KindNetwork:
		return "Could not reach the cloning service. Check that it is running and try again."
	case KindHTTP:
		if text := http.StatusText(e.Status); text != "" {
			return fmt.Sprintf("The cloning service returned an error (%d %s).", e.Status, text)
		}
		return fmt.Sprintf("The cloning service returned an error (%d).", e.Status)
	case KindDecode:
		return "The cloning service sent a response that could not be read."
	default:
		return "Something went wrong while cloning the website."
	}
}

func newError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func newHTTPError(status int) *Error {
	return &Error{Kind: KindHTTP, Status: status}
}

// KindOf returns the kind of a clone error, or "" for any other error
func KindOf(err error) ErrorKind {
	var cloneErr *Error
	if errors.As(err, &cloneErr) {
		return cloneErr.Kind
	}
	return ""
}

// AsError normalizes any error into an *Error. Errors that did not come from
// this package are treated as network failures.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var cloneErr *Error
	if errors.As(err, &cloneErr) {
		return cloneErr
	}
	return newError(KindNetwork, err)
}

// IsInvalidURL checks if an error is a local validation failure
func IsInvalidURL(err error) bool {
	return KindOf(err) == KindInvalidURL
}

// IsNetwork checks if an error is a transport failure
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

// IsHTTP checks if an error is a non-2xx response
func IsHTTP(err error) bool {
	return KindOf(err) == KindHTTP
}

// IsDecode checks if an error is a malformed success body
func IsDecode(err error) bool {
	return KindOf(err) == KindDecode
}
