package types

// A DataModel fixes the widths of the C integer types.
type DataModel int

const (
	// LP64 is the 64-bit Darwin model: long and pointers are 8 bytes.
	LP64 DataModel = iota
	// ILP32 is the 32-bit model used by armv7, i386 and arm64_32.
	ILP32
)

func (m DataModel) String() string {
	switch m {
	case LP64:
		return "lp64"
	case ILP32:
		return "ilp32"
	}
	return "unknown"
}

// ParseDataModel accepts "lp64" or "ilp32".
func ParseDataModel(s string) (DataModel, bool) {
	switch s {
	case "lp64", "LP64", "":
		return LP64, true
	case "ilp32", "ILP32":
		return ILP32, true
	}
	return LP64, false
}

// PointerSize returns the nominal pointer width in bytes.
func (m DataModel) PointerSize() int {
	if m == ILP32 {
		return 4
	}
	return 8
}

// SizeOf returns the nominal size in bytes of a basic category, 0 for void,
// and -1 for categories without a single fixed size.
func (m DataModel) SizeOf(c Category) int {
	switch c {
	case CategorySignedChar, CategoryUnsignedChar, CategoryBool:
		return 1
	case CategorySignedShort, CategoryUnsignedShort:
		return 2
	case CategorySignedInt, CategoryUnsignedInt, CategoryFloat:
		return 4
	case CategorySignedLong, CategoryUnsignedLong:
		if m == ILP32 {
			return 4
		}
		return 8
	case CategorySignedLongLong, CategoryUnsignedLongLong, CategoryDouble:
		return 8
	case CategoryVoid:
		return 0
	}
	return -1
}
