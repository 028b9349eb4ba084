package types

import "fmt"

// Node is one decoded type. The category selects which payload fields are
// meaningful; the remaining fields keep their zero values.
//
// A Node owns its referenced type and members exclusively. Nodes are never
// shared between parents and are immutable once constructed.
type Node struct {
	category Category
	rng      Range
	name     Range

	elem    *Node   // Pointer, Array
	count   uint64  // Array
	width   uint64  // BitField
	members []*Node // Struct, Union, TopLevel
}

// NewBasic returns a leaf for a basic, void or unknown type.
func NewBasic(c Category, r Range) *Node {
	return &Node{category: c, rng: r, name: NoRange}
}

// NewLeaf returns a pointer-like leaf with no referenced type: a character
// string, class or selector.
func NewLeaf(c Category, r Range) *Node {
	return &Node{category: c, rng: r, name: NoRange}
}

// NewPointer returns a pointer to elem. elem may be nil.
func NewPointer(r Range, elem *Node) *Node {
	return &Node{category: CategoryPointer, rng: r, name: NoRange, elem: elem}
}

// NewArray returns an array of count elements of type elem.
func NewArray(r Range, elem *Node, count uint64) *Node {
	return &Node{category: CategoryArray, rng: r, name: NoRange, elem: elem, count: count}
}

// NewBitField returns a bitfield of the given width in bits.
func NewBitField(r Range, width uint64) *Node {
	return &Node{category: CategoryBitField, rng: r, name: NoRange, width: width}
}

// NewObject returns an object pointer. name is NoRange for a bare `@`.
func NewObject(r Range, name Range) *Node {
	return &Node{category: CategoryObject, rng: r, name: name}
}

// NewComposite returns a struct, union or top-level wrapper.
func NewComposite(c Category, r Range, name Range, members []*Node) *Node {
	return &Node{category: c, rng: r, name: name, members: members}
}

// Category returns the node's type category.
func (n *Node) Category() Category {
	if n == nil {
		return CategoryUnknown
	}
	return n.category
}

// Range returns the span of the encoding this node was decoded from.
func (n *Node) Range() Range {
	if n == nil {
		return NoRange
	}
	return n.rng
}

// NameRange returns the span of the node's type or class name, or NoRange.
func (n *Node) NameRange() Range {
	if n == nil {
		return NoRange
	}
	return n.name
}

// HasName reports whether NameRange is a real span.
func (n *Node) HasName() bool {
	return n.NameRange().IsValid()
}

// Referenced returns the element type of a pointer or array, or nil.
func (n *Node) Referenced() *Node {
	if n == nil {
		return nil
	}
	return n.elem
}

// Members returns a copy of the member list. It is empty for every category
// other than Struct, Union and TopLevel.
func (n *Node) Members() []*Node {
	if n == nil || len(n.members) == 0 {
		return nil
	}
	out := make([]*Node, len(n.members))
	copy(out, n.members)
	return out
}

// NumMembers returns the length of the member list.
func (n *Node) NumMembers() int {
	if n == nil {
		return 0
	}
	return len(n.members)
}

// Member returns the i'th member.
func (n *Node) Member(i int) *Node {
	if n == nil || i < 0 || i >= len(n.members) {
		return nil
	}
	return n.members[i]
}

// Count returns the declared length of an array.
func (n *Node) Count() uint64 {
	if n == nil {
		return 0
	}
	return n.count
}

// Width returns the bit width of a bitfield.
func (n *Node) Width() uint64 {
	if n == nil {
		return 0
	}
	return n.width
}

// Size returns the nominal size in bytes for basic categories under model m
// and -1 for everything else.
func (n *Node) Size(m DataModel) int {
	return m.SizeOf(n.Category())
}

// Walk calls fn for n and every node below it in depth-first pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	if n.elem != nil {
		n.elem.walk(fn, depth+1)
	}
	for _, m := range n.members {
		m.walk(fn, depth+1)
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.category {
	case CategoryArray:
		return fmt.Sprintf("%s%s[%d]", n.category, n.rng, n.count)
	case CategoryBitField:
		return fmt.Sprintf("%s%s:%d", n.category, n.rng, n.width)
	case CategoryStruct, CategoryUnion, CategoryTopLevel:
		return fmt.Sprintf("%s%s(%d members)", n.category, n.rng, len(n.members))
	}
	return n.category.String() + n.rng.String()
}
