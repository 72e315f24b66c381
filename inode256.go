package art

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

const (
	i256Min      = 49
	i256Capacity = 256
)

// inode256 is a direct 256-entry child array, one slot per possible
// key byte — no indirection needed once a node is this dense (spec
// §3, §4.6). childrenCount is a plain int rather than the original's
// "0 means 256" encoding, which spec §9's design notes explicitly
// allow substituting. occupied tracks which slots are non-nil for
// leftmostChild/forEachChild, using the same bits-and-blooms/bitset
// type inode48 uses for its free-slot search, in the sparse-iteration
// idiom of gaissmai-bart's node.go.
type inode256 struct {
	inodeHeader
	occupied *bitset.BitSet
	children [i256Capacity]nodePtr
}

func newInode256(prefix []byte) *inode256 {
	return &inode256{
		inodeHeader: inodeHeader{prefix: prefix},
		occupied:    bitset.New(i256Capacity),
	}
}

func (n *inode256) self() nodePtr { return i256Ptr(n) }

func (n *inode256) isFull() bool { return n.childrenCount == i256Capacity }

func (n *inode256) findChild(b byte) iterator {
	child := n.children[b]
	if child.isNil() {
		return iterator{}
	}
	return iterator{node: child, index: int(b), parent: n.self()}
}

// add inserts a new leaf directly at slot keyByte (spec §4.6 "add").
func (n *inode256) add(child *leaf, keyByte byte) iterator {
	count := n.childrenCount
	assertf(count >= i256Min && count < i256Capacity, "art: inode256.add precondition violated (count=%d)", count)
	assertf(n.children[keyByte].isNil(), "art: inode256.add: byte %d already occupied", keyByte)

	self := n.self()
	childPtr := leafPtr(child)
	n.children[keyByte] = childPtr
	n.occupied.Set(uint(keyByte))
	n.childrenCount = count + 1

	return iterator{node: childPtr, index: int(keyByte), parent: self}
}

func (n *inode256) remove(keyByte byte) {
	assertf(!n.children[keyByte].isNil(), "art: inode256.remove: byte %d has no child", keyByte)
	n.children[keyByte] = nilPtr
	n.occupied.Clear(uint(keyByte))
	n.childrenCount--
}

func (n *inode256) leftmostChild(start int) iterator {
	if start > 255 {
		return iterator{}
	}
	idx, ok := n.occupied.NextSet(uint(start))
	if !ok || idx > 255 {
		return iterator{}
	}
	return iterator{node: n.children[idx], index: int(idx), parent: n.self()}
}

func (n *inode256) replace(pos iterator, child nodePtr) {
	assertf(pos.parent.equal(n.self()), "art: inode256.replace: iterator does not belong to this node")
	b := byte(pos.index)
	n.children[b] = child
	reparent(n.self(), child, b)
}

// forEachChild visits every occupied slot in ascending byte order,
// mirroring the original's for_each_child (used by dump).
func (n *inode256) forEachChild(fn func(b byte, child nodePtr)) {
	for b, ok := n.occupied.NextSet(0); ok; b, ok = n.occupied.NextSet(b + 1) {
		fn(byte(b), n.children[b])
	}
}

// newInode256FromInode48 builds the I256 a full I48 grows into,
// scattering each of its 48 dense slots back out to its direct byte
// position, then placing the new leaf (spec §4.6 "grow from I48
// (populate)").
func newInode256FromInode48(src *inode48, child *leaf, keyByte byte) (*inode256, iterator) {
	assertf(src.isFull(), "art: newInode256FromInode48 requires a full source I48")

	n := newInode256(append([]byte(nil), src.prefix...))
	n.terminal = src.terminal
	self := n.self()

	for b := 0; b < 256; b++ {
		slot := src.childIndices[b]
		if slot == emptyChildSlot {
			continue
		}
		n.children[b] = src.children[slot]
		reparent(self, n.children[b], byte(b))
		n.occupied.Set(uint(b))
	}

	childPtr := leafPtr(child)
	n.children[keyByte] = childPtr
	n.occupied.Set(uint(keyByte))
	n.childrenCount = i48Capacity + 1

	return n, iterator{node: childPtr, index: int(keyByte), parent: self}
}

func (n *inode256) dump(w io.Writer) {
	dumpHeader(w, &n.inodeHeader)
	fmt.Fprintln(w)
	n.forEachChild(func(b byte, child nodePtr) {
		fmt.Fprintf(w, " [%d] ", b)
		dumpNode(w, child)
		fmt.Fprintln(w)
	})
}
