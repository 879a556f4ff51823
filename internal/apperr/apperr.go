package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a conversion failure so the HTTP boundary can map it
// to a status code and error label exactly once.
type Kind int

const (
	Client Kind = iota
	Network
	Processing
	Upload
)

func (k Kind) String() string {
	switch k {
	case Client:
		return "client"
	case Network:
		return "network"
	case Processing:
		return "processing"
	case Upload:
		return "upload"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	if k == Client {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, defaulting to Processing for
// unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Processing
}
