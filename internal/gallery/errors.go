package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat marks input too malformed to extract a filename from.
	ErrInputFormat = errors.New("invalid gallery input")
	// ErrKindUnsupported is returned for gallery kinds without a parser.
	ErrKindUnsupported = errors.New("gallery kind not supported")
)

// InputFormatError describes structurally unusable input.
type InputFormatError struct {
	Input  string
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrInputFormat, e.Reason, e.Input)
}

// Unwrap lets errors.Is match ErrInputFormat.
func (e *InputFormatError) Unwrap() error {
	return ErrInputFormat
}

func unsupportedKind(kind Kind) error {
	return fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
}
