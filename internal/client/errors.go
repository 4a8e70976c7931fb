package client

import (
	"errors"
	"fmt"
)

// Kind classifies a ServiceError.
type Kind int

const (
	// KindStatus: the service answered with a non-success status.
	KindStatus Kind = iota
	// KindNotFound: the service reported that the resource does not exist.
	KindNotFound
	// KindMalformedResponse: a success status with a body that does not
	// match the expected structure.
	KindMalformedResponse
	// KindUnavailable: the request never got an answer (connection
	// failure, timeout, cancellation).
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindNotFound:
		return "not_found"
	case KindMalformedResponse:
		return "malformed_response"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// ServiceError is returned by every Service operation that fails.
// Message is the text the service sent, verbatim, and is empty when the
// failure body was. Error() falls back to the cause or the status.
type ServiceError struct {
	Op         Op
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// KindOf returns the kind of a *ServiceError in err's chain. ok is false
// when err is not a ServiceError.
func KindOf(err error) (kind Kind, ok bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a not-found ServiceError.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsMalformed reports whether err is a malformed-response ServiceError.
func IsMalformed(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindMalformedResponse
}
