package lvconf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is the root of every configuration error. All
// other errors in this package wrap it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var (
	ErrMissingOption         = fmt.Errorf("%w: missing option", ErrInvalidConfiguration)
	ErrUnknownFont           = fmt.Errorf("%w: unknown font", ErrInvalidConfiguration)
	ErrFontDisabled          = fmt.Errorf("%w: font not enabled", ErrInvalidConfiguration)
	ErrUnsupportedColorDepth = fmt.Errorf("%w: unsupported color depth", ErrInvalidConfiguration)
	ErrSwapRequires16Bit     = fmt.Errorf("%w: 16-bit swap requires 16-bit color", ErrInvalidConfiguration)
	ErrNoRenderBackend       = fmt.Errorf("%w: no render backend", ErrInvalidConfiguration)
	ErrUnknownOS             = fmt.Errorf("%w: unknown OS", ErrInvalidConfiguration)
	ErrMultipleDrivers       = fmt.Errorf("%w: more than one display driver", ErrInvalidConfiguration)
	ErrUnknownDriver         = fmt.Errorf("%w: unknown display driver", ErrInvalidConfiguration)
	ErrConflictingDefinition = fmt.Errorf("%w: conflicting definition", ErrInvalidConfiguration)
	ErrMalformedValue        = fmt.Errorf("%w: malformed value", ErrInvalidConfiguration)
)

// Problem is one violated constraint found while validating a Config.
type Problem struct {
	Option string
	Err    error
}

func (p Problem) Error() string { return p.Option + ": " + p.Err.Error() }

// ValidationError reports every problem found in a Config at once.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0].Error()
	}
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("%d configuration problems: %s", len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap exposes each problem so errors.Is matches any of their causes.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		out[i] = p.Err
	}
	return out
}

func (e *ValidationError) add(option string, err error) {
	e.Problems = append(e.Problems, Problem{Option: option, Err: err})
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
