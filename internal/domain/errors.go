package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so the CLI can print a
// distinguishable, human-readable message for each.
type ErrorKind string

const (
	// ErrorKindConfig covers missing credentials and invalid provider
	// selection. Detected before any network call is attempted.
	ErrorKindConfig ErrorKind = "config"
	// ErrorKindTransport covers network failures and request timeouts.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindBackend covers non-success statuses and error payloads
	// reported by the provider itself.
	ErrorKindBackend ErrorKind = "backend"
	// ErrorKindMalformed covers responses whose envelope could not be
	// decoded into the expected shape.
	ErrorKindMalformed ErrorKind = "malformed response"
)

// Error is the single error type crossing the pipeline boundary. Exactly one
// request is issued per invocation, so no error is recovered locally; all of
// them abort the invocation with a non-zero exit.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError reports a configuration problem (missing credential,
// unknown provider, unusable config file).
func NewConfigError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindConfig, Msg: fmt.Sprintf(format, args...)}
}

// NewTransportError wraps a network-level failure.
func NewTransportError(msg string, err error) *Error {
	return &Error{Kind: ErrorKindTransport, Msg: msg, Err: err}
}

// NewBackendError reports a non-success response from the provider,
// including whatever diagnostic the backend supplied.
func NewBackendError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorKindBackend, Msg: fmt.Sprintf(format, args...)}
}

// NewMalformedError wraps a response envelope that could not be decoded.
func NewMalformedError(msg string, err error) *Error {
	return &Error{Kind: ErrorKindMalformed, Msg: msg, Err: err}
}

// KindOf returns the classification of err, or "" for errors that did not
// originate in the pipeline.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
