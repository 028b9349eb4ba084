package objc

import (
	"fmt"
	"strings"

	"github.com/appsworld/go-objctype/types"
)

var basicTypeNames = map[types.Category]string{
	types.CategorySignedChar:       "char",
	types.CategorySignedInt:        "int",
	types.CategorySignedShort:      "short",
	types.CategorySignedLong:       "long",
	types.CategorySignedLongLong:   "long long",
	types.CategoryUnsignedChar:     "unsigned char",
	types.CategoryUnsignedInt:      "unsigned int",
	types.CategoryUnsignedShort:    "unsigned short",
	types.CategoryUnsignedLong:     "unsigned long",
	types.CategoryUnsignedLongLong: "unsigned long long",
	types.CategoryFloat:            "float",
	types.CategoryDouble:           "double",
	types.CategoryBool:             "BOOL",
	types.CategoryVoid:             "void",
	types.CategoryUnknown:          "void",
	types.CategoryCharacterString:  "char *",
	types.CategoryClass:            "Class",
	types.CategorySelector:         "SEL",
}

// printer renders decoded nodes as C declarations. Ranges are resolved
// against src.
type printer struct {
	src string
}

// Format renders n as a stand-alone C declaration:
//
//	{test=@*i}  struct test { id x0; char * x1; int x2; }
//	[2^v]       void * x[2]
//	b13         unsigned int x:13
//
// Arrays and bitfields need a declarator and are named x. Several sibling
// types are joined with ", ".
func Format(n *types.Node, src string) string {
	p := printer{src: src}
	switch n.Category() {
	case types.CategoryArray, types.CategoryBitField:
		return p.declare(n, "x", false)
	case types.CategoryTopLevel:
		parts := make([]string, 0, n.NumMembers())
		for _, m := range n.Members() {
			parts = append(parts, Format(m, src))
		}
		return strings.Join(parts, ", ")
	}
	return p.typeName(n)
}

// Declare renders n as a declaration of name. With tight set a trailing
// pointer star is attached to the name (NSString *name) the way ivars and
// properties are usually written.
func Declare(n *types.Node, src, name string, tight bool) string {
	p := printer{src: src}
	return p.declare(n, name, tight)
}

func (p printer) declare(n *types.Node, name string, tight bool) string {
	switch n.Category() {
	case types.CategoryArray:
		return p.declare(n.Referenced(), name, tight) + fmt.Sprintf("[%d]", n.Count())
	case types.CategoryBitField:
		return fmt.Sprintf("unsigned int %s:%d", name, n.Width())
	}
	typ := p.typeName(n)
	if name == "" {
		return typ
	}
	if tight && strings.HasSuffix(typ, "*") {
		return typ + name
	}
	return typ + " " + name
}

func (p printer) name(n *types.Node) string {
	if !n.HasName() {
		return ""
	}
	return n.NameRange().Slice(p.src)
}

func (p printer) typeName(n *types.Node) string {
	if n == nil {
		return "void"
	}
	if s, ok := basicTypeNames[n.Category()]; ok {
		return s
	}
	switch n.Category() {
	case types.CategoryObject:
		name := p.name(n)
		switch {
		case name == "":
			return "id"
		case strings.HasPrefix(name, "<"):
			return "id" + name
		}
		return name + " *"
	case types.CategoryPointer:
		return p.typeName(n.Referenced()) + " *"
	case types.CategoryArray:
		return p.declare(n, "", false)
	case types.CategoryBitField:
		return fmt.Sprintf("unsigned int :%d", n.Width())
	case types.CategoryStruct:
		return p.composite("struct", n)
	case types.CategoryUnion:
		return p.composite("union", n)
	case types.CategoryTopLevel:
		return Format(n, p.src)
	}
	return n.Category().String()
}

func (p printer) composite(keyword string, n *types.Node) string {
	var sb strings.Builder
	sb.WriteString(keyword)
	if name := p.name(n); name != "" && name != "?" {
		sb.WriteString(" " + name)
		if n.NumMembers() == 0 {
			return sb.String()
		}
	}
	sb.WriteString(" {")
	for i, m := range n.Members() {
		sb.WriteString(" " + p.declare(m, fmt.Sprintf("x%d", i), false) + ";")
	}
	sb.WriteString(" }")
	return sb.String()
}
