// Package apperr defines the failure kinds surfaced by the theming core.
//
// Every error returned by the core packages is, or wraps, an *Error so the
// command layer can branch on Kind instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is the zero value; it is never produced on purpose.
	KindUnknown Kind = iota
	// KindNotFound covers a missing schemes directory, target file,
	// backup or an incomplete scheme set.
	KindNotFound
	// KindParse covers malformed cfg, non-object JSON and invalid or unsafe XML.
	KindParse
	// KindIO covers read/write/copy failures.
	KindIO
	// KindVersionMismatch is a user configuration schema mismatch.
	KindVersionMismatch
	// KindMissingTag is a configured XML tag absent from the source scheme.
	KindMissingTag
	// KindPrecondition is a scheme file that does not have the shape the merge needs.
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse error"
	case KindIO:
		return "i/o error"
	case KindVersionMismatch:
		return "version mismatch"
	case KindMissingTag:
		return "missing tag"
	case KindPrecondition:
		return "precondition failed"
	default:
		return "unknown"
	}
}

// Error is the concrete error type of the core.
type Error struct {
	Kind Kind
	// Msg is the human-readable summary, suitable for direct display.
	Msg string
	// Path is the file or directory the failure is about, if any.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.Path != "" {
		b.WriteString(":\n")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString("\n")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error without an underlying cause.
func New(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error around err. A nil err yields nil.
func Wrap(kind Kind, err error, path, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
