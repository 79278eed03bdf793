package fetch

import "errors"

// Kind classifies fetch failures for the boundary.
type Kind int

const (
	// KindTransport covers connection, TLS, timeout, and breaker failures.
	KindTransport Kind = iota
	// KindInvalidURL marks input the client refuses to dial.
	KindInvalidURL
	// KindBody marks responses whose body could not be read back.
	KindBody
)

// Error wraps a failure with its classification.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Classify returns the Kind carried by err, defaulting to KindTransport for
// anything unwrapped.
func Classify(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}
