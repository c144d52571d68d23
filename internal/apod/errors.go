package apod

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned when the requested window is not positive.
var ErrInvalidWindow = errors.New("window must span at least one day")

// ErrorKind classifies a failed Load.
type ErrorKind int

const (
	// KindTransport covers DNS, dial, timeout and connection reset failures.
	KindTransport ErrorKind = iota + 1
	// KindRemoteRejected means the server answered with a non-2xx status.
	KindRemoteRejected
	// KindMalformedResponse means the body was not a JSON array of records.
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemoteRejected:
		return "remote rejected"
	case KindMalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// FetchError is the typed failure returned by Client.Load.
type FetchError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, only for KindRemoteRejected
	Message string // human readable detail
	Err     error  // underlying cause, may be nil
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindRemoteRejected:
		return fmt.Sprintf("apod: remote rejected request (status %d): %s", e.Status, e.Message)
	case KindTransport:
		if e.Err != nil {
			return fmt.Sprintf("apod: transport: %v", e.Err)
		}
	case KindMalformedResponse:
		if e.Err != nil {
			return fmt.Sprintf("apod: malformed response: %v", e.Err)
		}
	}
	if e.Message != "" {
		return fmt.Sprintf("apod: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("apod: %s", e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the same request may succeed.
// Only transport failures qualify; retrying is left to the caller.
func (e *FetchError) Retryable() bool {
	return e.Kind == KindTransport
}

// KindOf returns the ErrorKind of err, or zero if err is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
