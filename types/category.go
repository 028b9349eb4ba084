package types

import "strconv"

// A Category is the kind of type a decoded node describes.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySignedChar
	CategorySignedInt
	CategorySignedShort
	CategorySignedLong
	CategorySignedLongLong
	CategoryUnsignedChar
	CategoryUnsignedInt
	CategoryUnsignedShort
	CategoryUnsignedLong
	CategoryUnsignedLongLong
	CategoryFloat
	CategoryDouble
	CategoryBool
	CategoryVoid
	CategoryCharacterString
	CategoryObject
	CategoryClass
	CategorySelector
	CategoryArray
	CategoryStruct
	CategoryUnion
	CategoryBitField
	CategoryPointer

	// CategoryTopLevel is the synthetic wrapper around sibling types that
	// have no enclosing struct or union.
	CategoryTopLevel
)

type intName struct {
	i int
	s string
}

var categoryStrings = []intName{
	{int(CategoryUnknown), "Unknown"},
	{int(CategorySignedChar), "SignedChar"},
	{int(CategorySignedInt), "SignedInt"},
	{int(CategorySignedShort), "SignedShort"},
	{int(CategorySignedLong), "SignedLong"},
	{int(CategorySignedLongLong), "SignedLongLong"},
	{int(CategoryUnsignedChar), "UnsignedChar"},
	{int(CategoryUnsignedInt), "UnsignedInt"},
	{int(CategoryUnsignedShort), "UnsignedShort"},
	{int(CategoryUnsignedLong), "UnsignedLong"},
	{int(CategoryUnsignedLongLong), "UnsignedLongLong"},
	{int(CategoryFloat), "Float"},
	{int(CategoryDouble), "Double"},
	{int(CategoryBool), "Bool"},
	{int(CategoryVoid), "Void"},
	{int(CategoryCharacterString), "CharacterString"},
	{int(CategoryObject), "Object"},
	{int(CategoryClass), "Class"},
	{int(CategorySelector), "Selector"},
	{int(CategoryArray), "Array"},
	{int(CategoryStruct), "Struct"},
	{int(CategoryUnion), "Union"},
	{int(CategoryBitField), "BitField"},
	{int(CategoryPointer), "Pointer"},
	{int(CategoryTopLevel), "TopLevel"},
}

func stringName(i int, names []intName, goSyntax bool) string {
	for _, n := range names {
		if n.i == i {
			if goSyntax {
				return "types.Category" + n.s
			}
			return n.s
		}
	}
	return "Category(" + strconv.Itoa(i) + ")"
}

func (c Category) String() string   { return stringName(int(c), categoryStrings, false) }
func (c Category) GoString() string { return stringName(int(c), categoryStrings, true) }

// basicCategories maps the single-character basic type markers.
var basicCategories = map[byte]Category{
	'c': CategorySignedChar,
	'i': CategorySignedInt,
	's': CategorySignedShort,
	'l': CategorySignedLong,
	'q': CategorySignedLongLong,
	'C': CategoryUnsignedChar,
	'I': CategoryUnsignedInt,
	'S': CategoryUnsignedShort,
	'L': CategoryUnsignedLong,
	'Q': CategoryUnsignedLongLong,
	'f': CategoryFloat,
	'd': CategoryDouble,
	'B': CategoryBool,
}

// BasicCategory returns the category of a basic type marker, or
// CategoryUnknown if code is not one.
func BasicCategory(code byte) Category {
	if c, ok := basicCategories[code]; ok {
		return c
	}
	return CategoryUnknown
}

// IsBasic reports whether c is a fixed-size scalar category (including void
// and unknown).
func (c Category) IsBasic() bool {
	return c >= CategoryUnknown && c <= CategoryVoid
}

// IsComposite reports whether nodes of category c carry a member list.
func (c Category) IsComposite() bool {
	return c == CategoryStruct || c == CategoryUnion || c == CategoryTopLevel
}

// IsSigned reports whether c is one of the signed integer categories.
func (c Category) IsSigned() bool {
	return c >= CategorySignedChar && c <= CategorySignedLongLong
}

// IsUnsigned reports whether c is one of the unsigned integer categories.
func (c Category) IsUnsigned() bool {
	return c >= CategoryUnsignedChar && c <= CategoryUnsignedLongLong
}
