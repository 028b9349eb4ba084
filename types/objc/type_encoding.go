package objc

import (
	"strings"

	objctype "github.com/appsworld/go-objctype"
)

// ref - https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html

// A Qualifier is a type qualifier prefix in a method type encoding.
type Qualifier byte

const (
	QualifierConst   Qualifier = 'r'
	QualifierIn      Qualifier = 'n'
	QualifierInout   Qualifier = 'N'
	QualifierOut     Qualifier = 'o'
	QualifierBycopy  Qualifier = 'O'
	QualifierByref   Qualifier = 'R'
	QualifierOneway  Qualifier = 'V'
	QualifierAtomic  Qualifier = 'A'
	QualifierComplex Qualifier = 'j'
	QualifierVector  Qualifier = '!'
)

var typeSpecifiers = map[Qualifier]string{
	QualifierConst:   "const",
	QualifierIn:      "in",
	QualifierInout:   "inout",
	QualifierOut:     "out",
	QualifierBycopy:  "bycopy",
	QualifierByref:   "byref",
	QualifierOneway:  "oneway",
	QualifierAtomic:  "_Atomic",
	QualifierComplex: "_Complex",
	QualifierVector:  "vector",
}

func (q Qualifier) String() string {
	if s, ok := typeSpecifiers[q]; ok {
		return s
	}
	return string(q)
}

func isQualifier(c byte) bool {
	_, ok := typeSpecifiers[Qualifier(c)]
	return ok
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// splitQualifiers strips the leading qualifiers from enc.
func splitQualifiers(enc string) ([]Qualifier, string) {
	var qs []Qualifier
	for len(enc) > 0 && isQualifier(enc[0]) {
		qs = append(qs, Qualifier(enc[0]))
		enc = enc[1:]
	}
	return qs, enc
}

// subtypeUntil returns the index of the first end byte in typedesc that is
// not nested inside brackets, or len(typedesc) if there is none.
func subtypeUntil(typedesc string, end byte) int {
	level := 0
	for i := 0; i < len(typedesc); i++ {
		c := typedesc[i]
		if level == 0 && c == end {
			return i
		}
		switch c {
		case ']', '}', ')', '>':
			level--
		case '[', '{', '(', '<':
			level++
		case '"':
			if j := strings.IndexByte(typedesc[i+1:], '"'); j >= 0 {
				i += j + 1
			}
		}
	}
	return len(typedesc)
}

// typeLength returns the length of the first complete type in typedesc,
// qualifiers included.
func typeLength(typedesc string) int {
	i := 0
	for i < len(typedesc) {
		c := typedesc[i]
		i++
		switch {
		case isQualifier(c), c == '^':
			continue
		case c == '@':
			if i < len(typedesc) && typedesc[i] == '"' {
				if j := strings.IndexByte(typedesc[i+1:], '"'); j >= 0 {
					return i + j + 2
				}
				return len(typedesc)
			}
			if i < len(typedesc) && typedesc[i] == '?' {
				i++ // block
				if i < len(typedesc) && typedesc[i] == '<' {
					i += subtypeUntil(typedesc[i+1:], '>') + 2
				}
			}
		case c == '[':
			i += subtypeUntil(typedesc[i:], ']') + 1
		case c == '{':
			i += subtypeUntil(typedesc[i:], '}') + 1
		case c == '(':
			i += subtypeUntil(typedesc[i:], ')') + 1
		case c == 'b':
			for i < len(typedesc) && isDigit(typedesc[i]) {
				i++
			}
		}
		return min(i, len(typedesc))
	}
	return i
}

// isBlock reports whether enc is a block type, and returns the signature
// from an extended `@?<...>` encoding.
func isBlock(enc string) (string, bool) {
	if !strings.HasPrefix(enc, "@?") {
		return "", false
	}
	sig := enc[2:]
	if strings.HasPrefix(sig, "<") && strings.HasSuffix(sig, ">") {
		return sig[1 : len(sig)-1], true
	}
	return "", true
}

// DecodeType renders a single type encoding, qualifiers included, as a C
// type. Blocks are recognized here rather than by the decoder.
func DecodeType(enc string, opts ...objctype.Option) string {
	qs, enc := splitQualifiers(enc)
	var prefix string
	for _, q := range qs {
		prefix += q.String() + " "
	}
	if sig, ok := isBlock(enc); ok {
		return prefix + blockType(sig)
	}
	if enc == "" {
		return prefix + "void"
	}
	res := objctype.Decode(enc, opts...)
	if res.Root() == nil {
		return prefix + enc
	}
	return prefix + Format(res.Root(), res.Source())
}

// blockType renders an extended block signature as `ret (^)(args)`.
func blockType(sig string) string {
	if sig == "" {
		return "id /* block */"
	}
	ms, err := ParseMethodTypes(sig)
	if err != nil {
		return "id /* block */"
	}
	var params []string
	for i, arg := range ms.Args {
		if i == 0 {
			continue // the block itself
		}
		params = append(params, arg.Type())
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	return ms.Return.Type() + " (^)(" + strings.Join(params, ", ") + ")"
}

// declareEncoded renders enc as a declaration of name, pointer stars
// attached to the name.
func declareEncoded(enc, name string) string {
	qs, enc := splitQualifiers(enc)
	var prefix string
	for _, q := range qs {
		prefix += q.String() + " "
	}
	if _, ok := isBlock(enc); ok {
		typ := DecodeType(enc)
		if strings.Contains(typ, "(^)") {
			return prefix + strings.Replace(typ, "(^)", "(^"+name+")", 1)
		}
		return prefix + typ + " " + name
	}
	res := objctype.Decode(enc)
	if res.Root() == nil {
		return prefix + enc + " " + name
	}
	return prefix + Declare(res.Root(), res.Source(), name, true)
}
