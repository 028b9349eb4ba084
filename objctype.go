// Package objctype decodes Objective-C runtime type encodings, the strings
// produced by @encode() and stored in method, ivar and property metadata,
// into a tree of typed nodes.
//
//	res := objctype.Decode(`{CGRect={CGPoint=dd}{CGSize=dd}}`)
//	if res.Status() != objctype.NoError {
//		log.Print(res.Diagnostic())
//	}
//	root := res.Root()
//
// Decoding is best-effort: malformed fragments are dropped from the tree and
// described by the result's diagnostics.
package objctype

import (
	"go.uber.org/zap"

	"github.com/appsworld/go-objctype/internal/parser"
	"github.com/appsworld/go-objctype/types"
)

// Diagnostic describes one malformed fragment of an encoding.
type Diagnostic = parser.Diagnostic

// Diagnostic kinds.
const (
	UnexpectedToken = parser.UnexpectedToken
	Unterminated    = parser.Unterminated
	MissingType     = parser.MissingType
	NumberOverflow  = parser.NumberOverflow
)

type Option func(*options)

type options struct {
	logger *zap.Logger
	strict bool
}

// WithLogger sends this decode's diagnostics to l instead of the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrict makes every diagnostic, not only dropped tokens, set
// EncounteredInvalidToken.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func buildOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Logger returns the package logger. It is a no-op logger unless SetLogger
// was called.
func Logger() *zap.Logger { return parser.Logger() }

// SetLogger configures the package logger used by Decode.
func SetLogger(l *zap.Logger) { parser.SetLogger(l) }

// Decode decodes a type encoding. Input ends at the first NUL byte; an empty
// encoding yields InvalidInput and no tree.
func Decode(encoding string, opts ...Option) *Result {
	cfg := buildOptions(opts...)
	res := &Result{source: encoding}
	if encoding == "" || encoding[0] == 0 {
		res.status = InvalidInput
		return res
	}

	root, diags := parser.Parse(encoding, cfg.logger)
	res.root = root
	res.diags = diags
	for _, d := range diags {
		if cfg.strict || d.Invalid() {
			res.status = EncounteredInvalidToken
			break
		}
	}
	return res
}

// DecodeBytes decodes an explicitly bounded encoding. A nil or empty slice
// yields InvalidInput.
func DecodeBytes(encoding []byte, opts ...Option) *Result {
	return Decode(string(encoding), opts...)
}

// MustDecode is like Decode but panics unless the encoding decodes cleanly.
func MustDecode(encoding string) *types.Node {
	res := Decode(encoding)
	if err := res.Err(); err != nil {
		panic(err)
	}
	return res.Root()
}
