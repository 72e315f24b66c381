package art

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

const (
	i48Min         = 17
	i48Capacity    = 48
	emptyChildSlot = 0xFF
)

// inode48 indirects through a 256-entry byte-to-slot table into a
// dense 48-slot child array (spec §3, §4.5). childIndices[b] ==
// emptyChildSlot (0xFF) iff byte b has no child — the spec-literal
// sentinel, replacing the teacher's nonstandard "0 means empty, slots
// 1-indexed" scheme. usedSlots tracks which of the 48 dense slots are
// occupied, the way gaissmai-bart's node.go tracks occupancy with a
// bits-and-blooms/bitset rather than a linear scan.
type inode48 struct {
	inodeHeader
	childIndices [256]uint8
	usedSlots    *bitset.BitSet
	children     [i48Capacity]nodePtr
}

func newInode48(prefix []byte) *inode48 {
	n := &inode48{
		inodeHeader: inodeHeader{prefix: prefix},
		usedSlots:   bitset.New(i48Capacity),
	}
	for i := range n.childIndices {
		n.childIndices[i] = emptyChildSlot
	}
	return n
}

func (n *inode48) self() nodePtr { return i48Ptr(n) }

func (n *inode48) isFull() bool { return n.childrenCount == i48Capacity }

func (n *inode48) findChild(b byte) iterator {
	slot := n.childIndices[b]
	if slot == emptyChildSlot {
		return iterator{}
	}
	return iterator{node: n.children[slot], index: int(b), parent: n.self()}
}

// add inserts a new leaf keyed by keyByte into the first free dense
// slot (spec §4.5 "add").
func (n *inode48) add(child *leaf, keyByte byte) iterator {
	count := n.childrenCount
	assertf(count >= i48Min && count < i48Capacity, "art: inode48.add precondition violated (count=%d)", count)
	assertf(n.childIndices[keyByte] == emptyChildSlot, "art: inode48.add: byte %d already occupied", keyByte)

	slot, ok := n.usedSlots.NextClear(0)
	assertf(ok && slot < i48Capacity, "art: inode48.add found no free slot with count=%d", count)

	n.usedSlots.Set(slot)
	n.childIndices[keyByte] = uint8(slot)
	self := n.self()
	childPtr := leafPtr(child)
	n.children[slot] = childPtr
	n.childrenCount = count + 1

	return iterator{node: childPtr, index: int(keyByte), parent: self}
}

// remove deletes the child reached via keyByte.
func (n *inode48) remove(keyByte byte) {
	slot := n.childIndices[keyByte]
	assertf(slot != emptyChildSlot, "art: inode48.remove: byte %d has no child", keyByte)

	n.children[slot] = nilPtr
	n.usedSlots.Clear(uint(slot))
	n.childIndices[keyByte] = emptyChildSlot
	n.childrenCount--
}

// markEmpty clears keyByte's table entry without touching the dense
// slot array or childrenCount — used by a shrink that is about to
// discard this node entirely and just needs child_to_delete excluded
// from the harvest walk (spec §4.4/§4.5 shrink-source constructors).
func (n *inode48) markEmpty(keyByte byte) {
	n.childIndices[keyByte] = emptyChildSlot
}

func (n *inode48) leftmostChild(start int) iterator {
	self := n.self()
	for b := start; b <= 255; b++ {
		slot := n.childIndices[b]
		if slot != emptyChildSlot {
			return iterator{node: n.children[slot], index: b, parent: self}
		}
	}
	return iterator{}
}

func (n *inode48) replace(pos iterator, child nodePtr) {
	assertf(pos.parent.equal(n.self()), "art: inode48.replace: iterator does not belong to this node")
	b := byte(pos.index)
	slot := n.childIndices[b]
	assertf(slot != emptyChildSlot, "art: inode48.replace: byte %d has no child", b)
	n.children[slot] = child
	reparent(n.self(), child, b)
}

// There is no I48-to-I48 constructor; grow/shrink transitions only
// ever move between adjacent capacity tiers (spec §4.5).

// newInode48FromInode16 builds the I48 a full I16 grows into, copying
// each of the 16 existing (byte, child) pairs into a same-numbered
// dense slot, then appending the new leaf in slot 16 (spec §4.5 "grow
// from I16 (populate)").
func newInode48FromInode16(src *inode16, child *leaf, keyByte byte) (*inode48, iterator) {
	assertf(src.isFull(), "art: newInode48FromInode16 requires a full source I16")

	n := newInode48(append([]byte(nil), src.prefix...))
	n.terminal = src.terminal
	self := n.self()

	for i := 0; i < i16Capacity; i++ {
		b := src.keys[i]
		n.childIndices[b] = uint8(i)
		n.children[i] = src.children[i]
		reparent(self, n.children[i], b)
		n.usedSlots.Set(uint(i))
	}

	slot := i16Capacity
	n.childIndices[keyByte] = uint8(slot)
	childPtr := leafPtr(child)
	n.children[slot] = childPtr
	n.usedSlots.Set(uint(slot))
	n.childrenCount = i16Capacity + 1

	return n, iterator{node: childPtr, index: int(keyByte), parent: self}
}

// newInode48FromInode256 builds the I48 an I256 shrinks into, walking
// all 256 byte slots in order and densely repacking the survivors
// (spec §4.5 "shrink source (I256 → I48)"). childToDelete's slot is
// cleared first so the walk skips it.
func newInode48FromInode256(src *inode256, childToDelete int) *inode48 {
	src.children[childToDelete] = nilPtr
	src.occupied.Clear(uint(childToDelete))

	n := newInode48(append([]byte(nil), src.prefix...))
	n.terminal = src.terminal
	self := n.self()

	slot := 0
	for b := 0; b < 256; b++ {
		if src.children[b].isNil() {
			continue
		}
		n.childIndices[b] = uint8(slot)
		n.children[slot] = src.children[b]
		reparent(self, n.children[slot], byte(b))
		n.usedSlots.Set(uint(slot))
		slot++
	}
	assertf(slot == i48Capacity, "art: newInode48FromInode256 harvested %d children, want %d", slot, i48Capacity)

	n.childrenCount = slot
	return n
}

func (n *inode48) dump(w io.Writer) {
	dumpHeader(w, &n.inodeHeader)
	fmt.Fprintln(w)
	for b := 0; b < 256; b++ {
		slot := n.childIndices[b]
		if slot == emptyChildSlot {
			continue
		}
		fmt.Fprintf(w, " [%d] ", b)
		dumpNode(w, n.children[slot])
		fmt.Fprintln(w)
	}
}
