package lexer

import (
	"fmt"

	"github.com/appsworld/go-objctype/types"
)

// Kind identifies a token.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Basic

	ArrayOpen
	ArrayClose
	StructOpen
	StructClose
	UnionOpen
	UnionClose

	Pointer
	CharString
	Object
	Class
	Selector

	BitField
	Void
	Unknown
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Basic:       "Basic",
	ArrayOpen:   "ArrayOpen",
	ArrayClose:  "ArrayClose",
	StructOpen:  "StructOpen",
	StructClose: "StructClose",
	UnionOpen:   "UnionOpen",
	UnionClose:  "UnionClose",
	Pointer:     "Pointer",
	CharString:  "CharString",
	Object:      "Object",
	Class:       "Class",
	Selector:    "Selector",
	BitField:    "BitField",
	Void:        "Void",
	Unknown:     "Unknown",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsClose reports whether k ends an array, struct or union.
func (k Kind) IsClose() bool {
	return k == ArrayClose || k == StructClose || k == UnionClose
}

// Token is one lexeme of an encoding.
type Token struct {
	Kind  Kind
	Range types.Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Kind, t.Range)
}
