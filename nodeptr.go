package art

import "unsafe"

// nodeType tags the concrete layout behind a nodePtr.
type nodeType uint8

const (
	typeLeaf nodeType = iota
	typeI4
	typeI16
	typeI48
	typeI256
)

func (t nodeType) String() string {
	switch t {
	case typeLeaf:
		return "LEAF"
	case typeI4:
		return "I4"
	case typeI16:
		return "I16"
	case typeI48:
		return "I48"
	case typeI256:
		return "I256"
	default:
		return "UNKNOWN"
	}
}

// nodePtr is a tagged pointer: a raw address plus the 3-bit node-type
// tag needed to dispatch without a vtable. Go's garbage collector
// cannot tolerate bits stashed inside a real pointer value, so unlike
// the C++ original (which packs the tag into the pointer's unused low
// bits given >=8-byte alignment) this is a two-word struct: {tag,
// pointer}. Spec §9 explicitly allows this — the tag-in-pointer trick
// is a performance optimization, not a correctness requirement.
type nodePtr struct {
	tag nodeType
	ptr unsafe.Pointer
}

// nilPtr is the distinguished "no node" value. The zero value of
// nodePtr already satisfies this (nil ptr, tag LEAF is irrelevant
// since ptr is checked first), but we name it for clarity at call
// sites that mirror spec's "null" terminology.
var nilPtr = nodePtr{}

func (p nodePtr) isNil() bool { return p.ptr == nil }

func (p nodePtr) tagOf() nodeType { return p.tag }

func (p nodePtr) get() unsafe.Pointer { return p.ptr }

func (p nodePtr) equal(o nodePtr) bool { return p.tag == o.tag && p.ptr == o.ptr }

func leafPtr(l *leaf) nodePtr { return nodePtr{tag: typeLeaf, ptr: unsafe.Pointer(l)} }

func i4Ptr(n *inode4) nodePtr { return nodePtr{tag: typeI4, ptr: unsafe.Pointer(n)} }

func i16Ptr(n *inode16) nodePtr { return nodePtr{tag: typeI16, ptr: unsafe.Pointer(n)} }

func i48Ptr(n *inode48) nodePtr { return nodePtr{tag: typeI48, ptr: unsafe.Pointer(n)} }

func i256Ptr(n *inode256) nodePtr { return nodePtr{tag: typeI256, ptr: unsafe.Pointer(n)} }

func (p nodePtr) asLeaf() *leaf { return (*leaf)(p.ptr) }

func (p nodePtr) asI4() *inode4 { return (*inode4)(p.ptr) }

func (p nodePtr) asI16() *inode16 { return (*inode16)(p.ptr) }

func (p nodePtr) asI48() *inode48 { return (*inode48)(p.ptr) }

func (p nodePtr) asI256() *inode256 { return (*inode256)(p.ptr) }

// asHeader returns the shared header view of any non-leaf node. Callers
// must already know (or not care which of) the four internal variants
// this is — header fields have identical offsets across all of them by
// construction (inodeHeader is embedded first in every variant struct).
func (p nodePtr) asHeader() *inodeHeader {
	switch p.tag {
	case typeI4:
		return &p.asI4().inodeHeader
	case typeI16:
		return &p.asI16().inodeHeader
	case typeI48:
		return &p.asI48().inodeHeader
	case typeI256:
		return &p.asI256().inodeHeader
	default:
		unreachableTag(p.tag)
		return nil
	}
}
