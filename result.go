package objctype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appsworld/go-objctype/types"
)

// A StatusCode summarizes the outcome of a decode.
type StatusCode int

const (
	NoError                 StatusCode = 0
	InvalidInput            StatusCode = -1
	EncounteredInvalidToken StatusCode = -2
)

func (s StatusCode) String() string {
	switch s {
	case NoError:
		return "NoError"
	case InvalidInput:
		return "InvalidInput"
	case EncounteredInvalidToken:
		return "EncounteredInvalidToken"
	}
	return fmt.Sprintf("StatusCode(%d)", int(s))
}

var (
	// ErrInvalidInput is returned by Result.Err for a nil or empty encoding.
	ErrInvalidInput = errors.New("invalid input: empty type encoding")
	// ErrInvalidToken is wrapped by a DecodeError when tokens were dropped.
	ErrInvalidToken = errors.New("encountered invalid token")
)

// A DecodeError lists the diagnostics of a decode that did not succeed
// cleanly.
type DecodeError struct {
	Encoding    string
	Diagnostics []*Diagnostic
}

func (e *DecodeError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Error()
	}
	return fmt.Sprintf("%s in %q: %s", ErrInvalidToken, e.Encoding, strings.Join(msgs, "; "))
}

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Diagnostics)+1)
	errs = append(errs, ErrInvalidToken)
	for _, d := range e.Diagnostics {
		errs = append(errs, d)
	}
	return errs
}

// A Result owns the tree produced by one decode. Nodes obtained from it stay
// valid until Release.
type Result struct {
	source   string
	status   StatusCode
	diags    []*Diagnostic
	root     *types.Node
	released bool
}

// Status returns the status code. A nil result reports InvalidInput.
func (r *Result) Status() StatusCode {
	if r == nil {
		return InvalidInput
	}
	return r.status
}

// Root returns the decoded tree, or nil for InvalidInput and after Release.
func (r *Result) Root() *types.Node {
	if r == nil {
		return nil
	}
	return r.root
}

// Source returns the encoding that was decoded.
func (r *Result) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}

// Text returns the bytes of the source covered by rng.
func (r *Result) Text(rng types.Range) string {
	return rng.Slice(r.Source())
}

// Name returns the type or class name of n, if it has one.
func (r *Result) Name(n *types.Node) (string, bool) {
	if !n.HasName() {
		return "", false
	}
	return r.Text(n.NameRange()), true
}

// Diagnostics returns every problem found while decoding.
func (r *Result) Diagnostics() []*Diagnostic {
	if r == nil {
		return nil
	}
	return r.diags
}

// Diagnostic returns a human-readable description of the problems found,
// and false when there are none.
func (r *Result) Diagnostic() (string, bool) {
	switch {
	case r == nil:
		return ErrInvalidInput.Error(), true
	case r.status == InvalidInput:
		return ErrInvalidInput.Error(), true
	case len(r.diags) == 0:
		return "", false
	}
	msgs := make([]string, len(r.diags))
	for i, d := range r.diags {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "; "), true
}

// Err returns nil when the status is NoError, ErrInvalidInput for an empty
// encoding, and a *DecodeError otherwise.
func (r *Result) Err() error {
	switch r.Status() {
	case NoError:
		return nil
	case InvalidInput:
		return ErrInvalidInput
	}
	return &DecodeError{Encoding: r.source, Diagnostics: r.diags}
}

// Release drops the tree. Nodes obtained from r must not be used afterwards
// by handle-based callers; see pkg/handle.
func (r *Result) Release() {
	if r == nil {
		return
	}
	r.root = nil
	r.diags = nil
	r.released = true
}

// Released reports whether Release has been called.
func (r *Result) Released() bool {
	return r != nil && r.released
}
