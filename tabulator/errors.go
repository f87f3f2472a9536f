package tabulator

import (
	"errors"
	"fmt"
)

// Kind identifies the pipeline stage that failed.
type Kind int

const (
	UnknownError Kind = iota
	TransportError
	ParseError
	ShapeError
	StoreError
)

func (k Kind) String() string {
	switch k {
	case TransportError:
		return "transport error"
	case ParseError:
		return "parse error"
	case ShapeError:
		return "shape error"
	case StoreError:
		return "store error"
	default:
		return "error"
	}
}

// Error is the error returned by every stage of a tabulator run.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%v (%v)", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a tabulator error, or UnknownError for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return UnknownError
}

func transportError(err error) error {
	return &Error{Kind: TransportError, Err: err}
}

func parseError(format string, args ...any) error {
	return &Error{Kind: ParseError, Err: fmt.Errorf(format, args...)}
}

func shapeError(format string, args ...any) error {
	return &Error{Kind: ShapeError, Err: fmt.Errorf(format, args...)}
}

func storeError(err error) error {
	return &Error{Kind: StoreError, Err: err}
}
