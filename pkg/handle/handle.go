// Package handle exposes decode results through opaque integer handles, the
// shape a C or FFI caller sees. A Table owns every result it hands out until
// the caller releases it.
package handle

import (
	"errors"
	"sync"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

// ResultHandle refers to one decode result. Zero is never a valid handle.
type ResultHandle uintptr

// NodeHandle refers to one node of a decoded tree. Zero means "no node".
type NodeHandle uintptr

// ErrInvalidHandle is returned when releasing a handle that is unknown or
// was already released.
var ErrInvalidHandle = errors.New("invalid handle")

type entry struct {
	res    *objctype.Result
	byNode map[*types.Node]NodeHandle
}

type nodeEntry struct {
	node  *types.Node
	owner ResultHandle
}

// Table maps handles to results and their nodes. The zero value is not
// usable; call New. A Table is safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	next    uintptr
	results map[ResultHandle]*entry
	nodes   map[NodeHandle]nodeEntry
	opts    []objctype.Option
}

// New returns an empty table. opts are applied to every decode.
func New(opts ...objctype.Option) *Table {
	return &Table{
		results: make(map[ResultHandle]*entry),
		nodes:   make(map[NodeHandle]nodeEntry),
		opts:    opts,
	}
}

func (t *Table) alloc() uintptr {
	t.next++
	return t.next
}

// Decode decodes encoding and returns a handle owning the result.
func (t *Table) Decode(encoding string) ResultHandle {
	return t.add(objctype.Decode(encoding, t.opts...))
}

// DecodeBytes decodes an explicitly bounded encoding. A nil or empty slice
// still yields a handle, whose status is InvalidInput and whose root is 0.
func (t *Table) DecodeBytes(encoding []byte) ResultHandle {
	return t.add(objctype.DecodeBytes(encoding, t.opts...))
}

func (t *Table) add(res *objctype.Result) ResultHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := ResultHandle(t.alloc())
	t.results[h] = &entry{res: res, byNode: make(map[*types.Node]NodeHandle)}
	return h
}

// node returns the handle of n under owner, registering it on first use.
// Must be called with t.mu held.
func (t *Table) node(owner ResultHandle, n *types.Node) NodeHandle {
	if n == nil {
		return 0
	}
	e, ok := t.results[owner]
	if !ok {
		return 0
	}
	if h, ok := e.byNode[n]; ok {
		return h
	}
	h := NodeHandle(t.alloc())
	t.nodes[h] = nodeEntry{node: n, owner: owner}
	e.byNode[n] = h
	return h
}

func (t *Table) lookup(h NodeHandle) (nodeEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ne, ok := t.nodes[h]
	return ne, ok
}

// Status returns the status of h, or InvalidInput for an unknown handle.
func (t *Table) Status(h ResultHandle) objctype.StatusCode {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.results[h]
	if !ok {
		return objctype.InvalidInput
	}
	return e.res.Status()
}

// CopyDiagnostic returns a copy of the diagnostic text of h, and false when
// there is none.
func (t *Table) CopyDiagnostic(h ResultHandle) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.results[h]
	if !ok {
		return "", false
	}
	return e.res.Diagnostic()
}

// Root returns the root node of h, or 0 when there is no tree.
func (t *Table) Root(h ResultHandle) NodeHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.results[h]
	if !ok {
		return 0
	}
	return t.node(h, e.res.Root())
}

// Category returns the category of n, or Unknown for an unknown handle.
func (t *Table) Category(n NodeHandle) types.Category {
	ne, ok := t.lookup(n)
	if !ok {
		return types.CategoryUnknown
	}
	return ne.node.Category()
}

// Range returns the byte range of n, or NoRange for an unknown handle.
func (t *Table) Range(n NodeHandle) types.Range {
	ne, ok := t.lookup(n)
	if !ok {
		return types.NoRange
	}
	return ne.node.Range()
}

// NameRange returns the name range of n. Nodes without a name, and unknown
// handles, report NoRange.
func (t *Table) NameRange(n NodeHandle) types.Range {
	ne, ok := t.lookup(n)
	if !ok {
		return types.NoRange
	}
	return ne.node.NameRange()
}

// Referenced returns the pointee or element of n, or 0 when absent.
func (t *Table) Referenced(n NodeHandle) NodeHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	ne, ok := t.nodes[n]
	if !ok {
		return 0
	}
	return t.node(ne.owner, ne.node.Referenced())
}

// CopyMembers returns a fresh slice of member handles, or nil when n has
// none. The caller owns the slice.
func (t *Table) CopyMembers(n NodeHandle) []NodeHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	ne, ok := t.nodes[n]
	if !ok || ne.node.NumMembers() == 0 {
		return nil
	}
	out := make([]NodeHandle, 0, ne.node.NumMembers())
	for _, m := range ne.node.Members() {
		out = append(out, t.node(ne.owner, m))
	}
	return out
}

// TypeSize returns the LP64 size of a basic category, 0 for void, or -1.
func TypeSize(c types.Category) int {
	return types.LP64.SizeOf(c)
}

// Release frees h and every node handle derived from it. Releasing twice
// returns ErrInvalidHandle.
func (t *Table) Release(h ResultHandle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.results[h]
	if !ok {
		return ErrInvalidHandle
	}
	for _, n := range e.byNode {
		delete(t.nodes, n)
	}
	delete(t.results, h)
	e.res.Release()
	return nil
}

// Len returns the number of live result handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.results)
}
