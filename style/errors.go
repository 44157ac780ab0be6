package style

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched by the concrete error types below via errors.Is.
var (
	ErrInvalidStyleName  = errors.New("invalid style name")
	ErrUnknownFormatCode = errors.New("unknown formatting code")
)

// InvalidStyleNameError reports a color or style name missing from the
// vocabulary, passed programmatically to [Style.Wrap].
type InvalidStyleNameError struct {
	Kind string // "color" or "style"
	Name string
}

func (e *InvalidStyleNameError) Error() string {
	return fmt.Sprintf("invalid %s name: %q", e.Kind, e.Name)
}

func (e *InvalidStyleNameError) Is(target error) bool {
	return target == ErrInvalidStyleName
}

// UnknownFormatCodeError reports bracketed content in annotated text that is
// neither a color, a style, nor the closing marker.
type UnknownFormatCodeError struct {
	Code string
}

func (e *UnknownFormatCodeError) Error() string {
	return fmt.Sprintf("unknown formatting code: '%s'", e.Code)
}

func (e *UnknownFormatCodeError) Is(target error) bool {
	return target == ErrUnknownFormatCode
}
