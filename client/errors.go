package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure an operation can produce. Exactly one
// kind applies per error.
type ErrorKind int

const (
	// KindTransport covers connectivity failures and timeouts: the request
	// may or may not have reached the server.
	KindTransport ErrorKind = iota + 1
	// KindServer covers non-2xx responses, optionally with a structured
	// {detail} body.
	KindServer
	// KindDecode covers response bodies that don't match the expected shape.
	KindDecode
	// KindEncode covers local serialization failures before any request is
	// sent.
	KindEncode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	}
	return "unknown"
}

// Error is the typed failure surfaced by every operation.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status, server kind only
	Detail string // structured {detail} text when the server sent one
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		if e.Detail != "" {
			return fmt.Sprintf("server error (status %d): %s", e.Status, e.Detail)
		}
		return fmt.Sprintf("server error (status %d)", e.Status)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
		}
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

func serverError(status int, detail string) *Error {
	return &Error{Kind: KindServer, Status: status, Detail: detail}
}

func decodeError(err error) *Error {
	return &Error{Kind: KindDecode, Err: err}
}

func encodeError(err error) *Error {
	return &Error{Kind: KindEncode, Err: err}
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ErrorDetail extracts the structured detail text, if err carries one.
func ErrorDetail(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Detail != "" {
		return e.Detail, true
	}
	return "", false
}
