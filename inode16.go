package art

import (
	"fmt"
	"io"
	"sort"
)

const (
	i16Min      = 5
	i16Capacity = 16
)

// inode16 is a 16-byte sorted key array with a parallel pointer array
// (spec §3, §4.4). Go has no portable SIMD intrinsics, so find_child
// and the insert-position search use the scalar fallbacks spec §4.4
// documents as equivalent: equality scan, and sort.Search for the
// lower bound (the same stdlib binary search the teacher already used
// for Node16.addChild).
type inode16 struct {
	inodeHeader
	keys     [i16Capacity]byte
	children [i16Capacity]nodePtr
}

func newInode16() *inode16 { return &inode16{} }

func (n *inode16) self() nodePtr { return i16Ptr(n) }

func (n *inode16) isFull() bool { return n.childrenCount == i16Capacity }

func (n *inode16) findChild(b byte) iterator {
	count := n.childrenCount
	for i := 0; i < count; i++ {
		if n.keys[i] == b {
			return iterator{node: n.children[i], index: i, parent: n.self()}
		}
	}
	return iterator{}
}

func (n *inode16) insertPos(b byte) int {
	count := n.childrenCount
	return sort.Search(count, func(i int) bool { return n.keys[i] >= b })
}

// add inserts a new leaf child keyed by keyByte (spec §4.4 "add").
func (n *inode16) add(child *leaf, keyByte byte) iterator {
	count := n.childrenCount
	assertf(count >= i16Min && count < i16Capacity, "art: inode16.add precondition violated (count=%d)", count)

	pos := n.insertPos(keyByte)
	self := n.self()
	for i := count; i > pos; i-- {
		n.keys[i] = n.keys[i-1]
		n.children[i] = n.children[i-1]
		reparent(self, n.children[i], uint8(i))
	}
	n.keys[pos] = keyByte
	childPtr := leafPtr(child)
	n.children[pos] = childPtr
	n.childrenCount = count + 1

	return iterator{node: childPtr, index: pos, parent: self}
}

// remove deletes the child at slot index (inverse of add).
func (n *inode16) remove(index int) {
	count := n.childrenCount
	assertf(index >= 0 && index < count, "art: inode16.remove index %d out of range [0,%d)", index, count)

	self := n.self()
	for i := index; i < count-1; i++ {
		n.keys[i] = n.keys[i+1]
		n.children[i] = n.children[i+1]
		reparent(self, n.children[i], uint8(i))
	}
	n.children[count-1] = nilPtr
	n.keys[count-1] = 0
	n.childrenCount = count - 1
}

// newInode16FromInode4 builds the I16 a full I4 grows into, computing
// the insert position exactly as add() would, then stream-merging the
// source's 4 children around the new leaf (spec §4.4 "grow from I4
// (populate)").
func newInode16FromInode4(src *inode4, child *leaf, keyByte byte) (*inode16, iterator) {
	assertf(src.isFull(), "art: newInode16FromInode4 requires a full source I4")

	n := &inode16{inodeHeader: inodeHeader{prefix: append([]byte(nil), src.prefix...), terminal: src.terminal}}
	self := n.self()

	pos := 0
	for pos < i4Capacity && src.keys[pos] < keyByte {
		pos++
	}

	i := 0
	for ; i < pos; i++ {
		n.keys[i] = src.keys[i]
		n.children[i] = src.children[i]
		reparent(self, n.children[i], uint8(i))
	}

	n.keys[i] = keyByte
	childPtr := leafPtr(child)
	n.children[i] = childPtr
	inserted := iterator{node: childPtr, index: i, parent: self}
	i++

	for ; i <= i4Capacity; i++ {
		n.keys[i] = src.keys[i-1]
		n.children[i] = src.children[i-1]
		reparent(self, n.children[i], uint8(i))
	}

	n.childrenCount = i4Capacity + 1
	return n, inserted
}

// newInode16FromInode48 builds the I16 an I48 shrinks into, walking
// the source's 256-byte table in ascending key order and harvesting
// the first 16 non-empty entries — the walk order alone restores the
// sorted-keys invariant (spec §4.4 "shrink source (I48 → I16)").
func newInode16FromInode48(src *inode48, childToDelete byte) *inode16 {
	src.markEmpty(childToDelete)

	n := &inode16{inodeHeader: inodeHeader{prefix: append([]byte(nil), src.prefix...), terminal: src.terminal}}
	self := n.self()

	next := 0
	for b := 0; b < 256 && next < i16Capacity; b++ {
		idx := src.childIndices[b]
		if idx == emptyChildSlot {
			continue
		}
		n.keys[next] = byte(b)
		child := src.children[idx]
		n.children[next] = child
		reparent(self, child, uint8(next))
		next++
	}
	assertf(next == i16Capacity, "art: newInode16FromInode48 harvested %d children, want %d", next, i16Capacity)

	n.childrenCount = i16Capacity
	return n
}

func (n *inode16) leftmostChild(start int) iterator {
	if start < 0 || start >= n.childrenCount {
		return iterator{}
	}
	return iterator{node: n.children[start], index: start, parent: n.self()}
}

func (n *inode16) replace(pos iterator, child nodePtr) {
	assertf(pos.parent.equal(n.self()), "art: inode16.replace: iterator does not belong to this node")
	n.children[pos.index] = child
	reparent(n.self(), child, uint8(pos.index))
}

func (n *inode16) dump(w io.Writer) {
	dumpHeader(w, &n.inodeHeader)
	fmt.Fprintf(w, " keys=%v\n", n.keys[:n.childrenCount])
	for i := 0; i < n.childrenCount; i++ {
		dumpNode(w, n.children[i])
		fmt.Fprintln(w)
	}
}
