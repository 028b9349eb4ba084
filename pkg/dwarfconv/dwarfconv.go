// Package dwarfconv converts decoded type trees into DWARF type descriptions
// so they can be handed to debugger and FFI tooling that already speaks
// DWARF.
//
// Only nominal sizes are filled in. Struct layout (field offsets, padding,
// alignment) is not computed.
package dwarfconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/blacktop/go-dwarf"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

// ErrTopLevel is returned by Convert for an encoding holding several sibling
// types. Use ConvertAll for those.
var ErrTopLevel = errors.New("dwarfconv: encoding holds several types")

var basicNames = map[types.Category]string{
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
	types.CategoryUnknown:          "?",
}

type converter struct {
	src   string
	model types.DataModel
}

// Convert converts the single type decoded in res.
func Convert(res *objctype.Result, model types.DataModel) (dwarf.Type, error) {
	if err := usable(res); err != nil {
		return nil, err
	}
	if res.Root().Category() == types.CategoryTopLevel {
		return nil, ErrTopLevel
	}
	return ConvertNode(res.Root(), res.Source(), model)
}

// ConvertAll converts every outermost type decoded in res, in order.
func ConvertAll(res *objctype.Result, model types.DataModel) ([]dwarf.Type, error) {
	if err := usable(res); err != nil {
		return nil, err
	}
	root := res.Root()
	nodes := []*types.Node{root}
	if root.Category() == types.CategoryTopLevel {
		nodes = root.Members()
	}
	out := make([]dwarf.Type, 0, len(nodes))
	for _, n := range nodes {
		t, err := ConvertNode(n, res.Source(), model)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func usable(res *objctype.Result) error {
	if res.Released() {
		return errors.New("dwarfconv: result was released")
	}
	if res.Status() == objctype.InvalidInput {
		return res.Err()
	}
	return nil
}

// ConvertNode converts n, whose ranges refer to src.
func ConvertNode(n *types.Node, src string, model types.DataModel) (dwarf.Type, error) {
	c := &converter{src: src, model: model}
	return c.convert(n)
}

func (c *converter) convert(n *types.Node) (dwarf.Type, error) {
	if n == nil {
		return &dwarf.VoidType{CommonType: dwarf.CommonType{Name: "void"}}, nil
	}
	cat := n.Category()
	if cat.IsBasic() {
		return c.basic(cat), nil
	}

	switch cat {
	case types.CategoryCharacterString:
		return c.pointer(c.basic(types.CategorySignedChar)), nil
	case types.CategoryObject:
		if name, ok := c.name(n); ok {
			return c.pointer(opaque(name)), nil
		}
		return c.typedef("id", c.pointer(opaque("objc_object"))), nil
	case types.CategoryClass:
		return c.typedef("Class", c.pointer(opaque("objc_class"))), nil
	case types.CategorySelector:
		return c.typedef("SEL", c.pointer(opaque("objc_selector"))), nil
	case types.CategoryPointer:
		elem, err := c.convert(n.Referenced())
		if err != nil {
			return nil, err
		}
		return c.pointer(elem), nil
	case types.CategoryArray:
		return c.array(n)
	case types.CategoryBitField:
		return bitfield(n.Width()), nil
	case types.CategoryStruct, types.CategoryUnion:
		return c.composite(n)
	}
	return nil, fmt.Errorf("dwarfconv: cannot convert %v at byte %#x", cat, n.Range().Offset)
}

func (c *converter) basic(cat types.Category) dwarf.Type {
	common := dwarf.CommonType{ByteSize: int64(c.model.SizeOf(cat)), Name: basicNames[cat]}
	basic := dwarf.BasicType{CommonType: common, BitSize: common.ByteSize * 8}
	switch {
	case cat == types.CategoryVoid:
		return &dwarf.VoidType{CommonType: common}
	case cat == types.CategoryUnknown:
		return &dwarf.UnspecifiedType{BasicType: dwarf.BasicType{CommonType: common}}
	case cat == types.CategorySignedChar:
		return &dwarf.CharType{BasicType: basic}
	case cat == types.CategoryUnsignedChar:
		return &dwarf.UcharType{BasicType: basic}
	case cat == types.CategoryBool:
		return &dwarf.BoolType{BasicType: basic}
	case cat == types.CategoryFloat, cat == types.CategoryDouble:
		return &dwarf.FloatType{BasicType: basic}
	case cat.IsUnsigned():
		return &dwarf.UintType{BasicType: basic}
	}
	return &dwarf.IntType{BasicType: basic}
}

func (c *converter) pointer(elem dwarf.Type) *dwarf.PtrType {
	return &dwarf.PtrType{
		CommonType: dwarf.CommonType{ByteSize: int64(c.model.PointerSize())},
		Type:       elem,
	}
}

func (c *converter) typedef(name string, t dwarf.Type) *dwarf.TypedefType {
	return &dwarf.TypedefType{
		CommonType: dwarf.CommonType{ByteSize: t.Size(), Name: name},
		Type:       t,
	}
}

func opaque(name string) *dwarf.StructType {
	return &dwarf.StructType{
		CommonType: dwarf.CommonType{ByteSize: -1},
		StructName: name,
		Kind:       "struct",
		Incomplete: true,
	}
}

func bitfield(width uint64) *dwarf.UintType {
	bits := int64(math.MaxInt64)
	if width < math.MaxInt64 {
		bits = int64(width)
	}
	return &dwarf.UintType{BasicType: dwarf.BasicType{
		CommonType: dwarf.CommonType{ByteSize: 4, Name: "unsigned int"},
		BitSize:    bits,
	}}
}

func (c *converter) name(n *types.Node) (string, bool) {
	if !n.HasName() {
		return "", false
	}
	name := n.NameRange().Slice(c.src)
	return name, name != ""
}

func (c *converter) array(n *types.Node) (dwarf.Type, error) {
	elem, err := c.convert(n.Referenced())
	if err != nil {
		return nil, err
	}
	count := int64(math.MaxInt64)
	if n.Count() < math.MaxInt64 {
		count = int64(n.Count())
	}
	size := int64(-1)
	if es := elem.Size(); es > 0 && count <= math.MaxInt64/es {
		size = es * count
	}
	return &dwarf.ArrayType{
		CommonType: dwarf.CommonType{ByteSize: size},
		Type:       elem,
		Count:      count,
	}, nil
}

func (c *converter) composite(n *types.Node) (dwarf.Type, error) {
	st := &dwarf.StructType{
		CommonType: dwarf.CommonType{ByteSize: -1},
		Kind:       "struct",
	}
	if n.Category() == types.CategoryUnion {
		st.Kind = "union"
	}
	if name, ok := c.name(n); ok && name != "?" {
		st.StructName = name
	}
	if n.NumMembers() == 0 {
		st.Incomplete = true
		return st, nil
	}
	for i, m := range n.Members() {
		ft, err := c.convert(m)
		if err != nil {
			return nil, err
		}
		f := &dwarf.StructField{
			Name:     fmt.Sprintf("x%d", i),
			Type:     ft,
			ByteSize: ft.Size(),
		}
		if m.Category() == types.CategoryBitField {
			f.BitSize = ft.(*dwarf.UintType).BitSize
		}
		st.Field = append(st.Field, f)
	}
	return st, nil
}
