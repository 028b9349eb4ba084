package parser

import (
	"fmt"

	"github.com/appsworld/go-objctype/types"
)

// DiagnosticKind classifies a problem found while decoding.
type DiagnosticKind int

const (
	// UnexpectedToken is a token that could not start a type where one was
	// expected, or a closing marker that matched nothing. The token is
	// dropped from the tree.
	UnexpectedToken DiagnosticKind = iota
	// Unterminated is an array, struct or union cut short by end of input.
	Unterminated
	// MissingType is a pointer or array with no element type.
	MissingType
	// NumberOverflow is an array length or bit width too large for uint64.
	NumberOverflow
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case Unterminated:
		return "unterminated type"
	case MissingType:
		return "missing type"
	case NumberOverflow:
		return "number overflow"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// A Diagnostic describes one malformed fragment of an encoding.
type Diagnostic struct {
	Kind   DiagnosticKind
	Range  types.Range
	Lexeme string
	Msg    string
}

func (d *Diagnostic) Error() string {
	msg := d.Kind.String()
	if d.Lexeme != "" {
		msg += fmt.Sprintf(" '%s'", d.Lexeme)
	}
	if d.Msg != "" {
		msg += ": " + d.Msg
	}
	msg += fmt.Sprintf(" at byte %#x", d.Range.Offset)
	return msg
}

// Invalid reports whether d describes a dropped token rather than a
// truncated but otherwise usable type.
func (d *Diagnostic) Invalid() bool {
	return d.Kind == UnexpectedToken
}
