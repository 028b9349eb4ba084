package types

import (
	"fmt"
	"math"
)

// A Range is a half-open span of bytes in an encoding string.
type Range struct {
	Offset uint
	Length uint
}

// NoRange is returned for nodes without a name.
var NoRange = Range{Offset: math.MaxUint, Length: math.MaxUint}

// MakeRange returns the range [offset, offset+length).
func MakeRange(offset, length uint) Range {
	return Range{Offset: offset, Length: length}
}

// End returns the offset one past the last byte of r.
func (r Range) End() uint {
	return r.Offset + r.Length
}

// IsValid reports whether r is a real span rather than the NoRange sentinel.
func (r Range) IsValid() bool {
	return r != NoRange
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	start := min(r.Offset, o.Offset)
	end := max(r.End(), o.End())
	return Range{Offset: start, Length: end - start}
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return o.Offset >= r.Offset && o.End() <= r.End()
}

// Slice returns the bytes of src covered by r. Out of bounds ranges and
// NoRange yield "".
func (r Range) Slice(src string) string {
	if !r.IsValid() || r.End() > uint(len(src)) {
		return ""
	}
	return src[r.Offset:r.End()]
}

func (r Range) String() string {
	if !r.IsValid() {
		return "{none}"
	}
	return fmt.Sprintf("{%d,%d}", r.Offset, r.Length)
}
