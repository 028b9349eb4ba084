package objc

import (
	"fmt"
	"strconv"
	"strings"

	objctype "github.com/appsworld/go-objctype"
)

// MethodArg is one type of a method signature: the return type or an
// argument.
type MethodArg struct {
	Qualifiers []Qualifier
	Encoding   string // without qualifiers
	Offset     int    // stack or register offset, 0 when absent
	Register   bool   // GNU runtime register hint
	Block      bool
	// BlockSignature is the `<...>` payload of an extended block encoding.
	BlockSignature string
}

// Type returns the argument's C type.
func (a MethodArg) Type() string {
	var enc strings.Builder
	for _, q := range a.Qualifiers {
		enc.WriteByte(byte(q))
	}
	enc.WriteString(a.Encoding)
	return DecodeType(enc.String())
}

// Decode decodes the argument's encoding. Block types decode as an object
// followed by an unknown type.
func (a MethodArg) Decode(opts ...objctype.Option) *objctype.Result {
	return objctype.Decode(a.Encoding, opts...)
}

// MethodSignature is a parsed method type encoding such as v24@0:8.
type MethodSignature struct {
	Return    MethodArg
	FrameSize int
	// Args includes the implicit self and _cmd arguments.
	Args []MethodArg
}

// NumberOfArguments returns the number of arguments, self and _cmd included.
func (s *MethodSignature) NumberOfArguments() int {
	if s == nil {
		return 0
	}
	return len(s.Args)
}

// ParseMethodTypes splits a method type encoding into its return type, frame
// size and arguments.
func ParseMethodTypes(encoded string) (*MethodSignature, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty method type encoding")
	}
	rest := encoded
	ret, rest, err := nextArg(encoded, rest)
	if err != nil {
		return nil, err
	}
	sig := &MethodSignature{Return: ret, FrameSize: ret.Offset}
	sig.Return.Offset = 0
	for rest != "" {
		var arg MethodArg
		arg, rest, err = nextArg(encoded, rest)
		if err != nil {
			return nil, err
		}
		sig.Args = append(sig.Args, arg)
	}
	return sig, nil
}

func nextArg(encoded, rest string) (MethodArg, string, error) {
	var arg MethodArg
	pos := len(encoded) - len(rest)
	arg.Qualifiers, rest = splitQualifiers(rest)
	n := typeLength(rest)
	if n == 0 {
		return arg, "", fmt.Errorf("missing type at byte %#x of %q", pos, encoded)
	}
	arg.Encoding, rest = rest[:n], rest[n:]
	if sig, ok := isBlock(arg.Encoding); ok {
		arg.Block = true
		arg.BlockSignature = sig
	}
	// Skip GNU runtime's register parameter hint
	if strings.HasPrefix(rest, "+") {
		arg.Register = true
		rest = rest[1:]
	}
	// Traverse (possibly negative) argument offset
	end := 0
	if strings.HasPrefix(rest, "-") {
		end = 1
	}
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}
	if digits := rest[:end]; digits != "" && digits != "-" {
		off, err := strconv.Atoi(digits)
		if err != nil {
			return arg, "", fmt.Errorf("bad offset %q at byte %#x of %q: %w", digits, len(encoded)-len(rest), encoded, err)
		}
		arg.Offset = off
	}
	return arg, rest[end:], nil
}

type Method struct {
	Name  string `yaml:"name"`
	Types string `yaml:"types"`
}

func (m *Method) signature() *MethodSignature {
	sig, err := ParseMethodTypes(m.Types)
	if err != nil {
		return nil
	}
	return sig
}

// NumberOfArguments returns the number of method arguments
func (m *Method) NumberOfArguments() int {
	if m == nil {
		return 0
	}
	return m.signature().NumberOfArguments()
}

// ReturnType returns the method's return type
func (m *Method) ReturnType() string {
	sig := m.signature()
	if sig == nil {
		return "<error>"
	}
	return sig.Return.Type()
}

// ArgumentType returns the type of argument index, counting self and _cmd.
func (m *Method) ArgumentType(index int) string {
	sig := m.signature()
	if sig == nil || index < 0 || index >= len(sig.Args) {
		return "<error>"
	}
	return sig.Args[index].Type()
}

// Declaration renders the method the way class-dump does, without the
// leading - or +:
//
//	(void)setObject:(id)arg1 forKey:(id)arg2;
func (m *Method) Declaration() string {
	sig := m.signature()
	if sig == nil {
		return fmt.Sprintf("(?)%s; // bad types %q", m.Name, m.Types)
	}
	var args []MethodArg
	if len(sig.Args) > 2 {
		args = sig.Args[2:]
	}
	parts := strings.SplitAfter(m.Name, ":")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s)", sig.Return.Type())
	if len(args) == 0 || !strings.HasSuffix(m.Name, ":") {
		sb.WriteString(m.Name + ";")
		return sb.String()
	}
	for i, part := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(part)
		if i < len(args) {
			fmt.Fprintf(&sb, "(%s)arg%d", args[i].Type(), i+1)
		}
	}
	sb.WriteByte(';')
	return sb.String()
}
