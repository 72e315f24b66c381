package art

// Map is the byte-keyed ordered associative container the core (§1,
// §6) is built for but deliberately excludes, generalizing the
// teacher's tree/newArt/Tree interface. Insert/Search/Delete drive
// the node variants' add/remove/grow/shrink operations; Each, Min,
// Max, Ceiling, Floor, and Range are all built on the iterator.
type Map struct {
	root nodePtr
	size int
}

func NewMap() *Map { return &Map{} }

func (m *Map) Size() int { return m.size }

// Insert adds key/value, or overwrites the value if key is already
// present. Returns true iff a new key was added.
func (m *Map) Insert(key []byte, value interface{}) bool {
	if m.root.isNil() {
		m.root = leafPtr(newLeaf(key, value))
		m.size++
		return true
	}
	newRoot, created := insertAt(m.root, key, value, 0)
	m.root = newRoot
	if created {
		m.size++
	}
	return created
}

func (m *Map) Search(key []byte) (interface{}, bool) {
	cur := m.root
	depth := 0
	for !cur.isNil() {
		if cur.tagOf() == typeLeaf {
			l := cur.asLeaf()
			if l.matches(key) {
				return l.value, true
			}
			return nil, false
		}
		h := cur.asHeader()
		prefix := h.prefixBytes()
		for i, b := range prefix {
			if discriminatorByte(key, depth+i) != b {
				return nil, false
			}
		}
		depth += len(prefix)
		if depth >= len(key) {
			if h.terminal != nil && h.terminal.matches(key) {
				return h.terminal.value, true
			}
			return nil, false
		}
		pos := findChildOf(cur, discriminatorByte(key, depth))
		if pos.isEnd() {
			return nil, false
		}
		cur = pos.node
		depth++
	}
	return nil, false
}

func (m *Map) Delete(key []byte) bool {
	if m.root.isNil() {
		return false
	}
	newRoot, deleted := deleteAt(m.root, key, 0)
	if deleted {
		m.root = newRoot
		m.size--
	}
	return deleted
}

// Each visits every key/value in ascending order, stopping early if
// fn returns false. Generalizes the teacher's eachHelper/Callback to
// the iterator, rather than a hand-rolled recursive walk.
func (m *Map) Each(fn func(key []byte, value interface{}) bool) {
	it := begin(m.root)
	for !it.isEnd() {
		if !fn(it.key(), it.value()) {
			return
		}
		it = it.advance()
	}
}

func (m *Map) Min() (key []byte, value interface{}, ok bool) {
	it := descendLeftmost(m.root)
	if it.isEnd() {
		return nil, nil, false
	}
	return it.key(), it.value(), true
}

func (m *Map) Max() (key []byte, value interface{}, ok bool) {
	it := rightmostLeafOf(m.root)
	if it.isEnd() {
		return nil, nil, false
	}
	return it.key(), it.value(), true
}

// Ceiling returns the smallest stored key >= key.
func (m *Map) Ceiling(key []byte) (foundKey []byte, value interface{}, ok bool) {
	it := ceilingAt(iterator{node: m.root}, key, 0)
	if it.isEnd() {
		return nil, nil, false
	}
	return it.key(), it.value(), true
}

// Floor returns the largest stored key <= key.
func (m *Map) Floor(key []byte) (foundKey []byte, value interface{}, ok bool) {
	it := floorAt(iterator{node: m.root}, key, 0)
	if it.isEnd() {
		return nil, nil, false
	}
	return it.key(), it.value(), true
}

// Range visits every stored key in [lo, hi] in ascending order,
// stopping early if fn returns false.
func (m *Map) Range(lo, hi []byte, fn func(key []byte, value interface{}) bool) {
	it := ceilingAt(iterator{node: m.root}, lo, 0)
	for !it.isEnd() {
		if bitwiseKey(it.key()).compare(bitwiseKey(hi)) > 0 {
			return
		}
		if !fn(it.key(), it.value()) {
			return
		}
		it = it.advance()
	}
}

// insertAt returns the node that should now occupy cur's slot
// (unchanged, grown, or a brand-new split node), and whether a new
// key was added. The caller installs the result into that slot —
// root assignment, or a parent's replaceChildOf, which also reparents
// it — never a resize in place (spec §4.3-§4.6, §9).
func insertAt(cur nodePtr, key []byte, value interface{}, depth int) (nodePtr, bool) {
	if cur.tagOf() == typeLeaf {
		existing := cur.asLeaf()
		if existing.matches(key) {
			existing.value = value
			return cur, false
		}
		newL := newLeaf(key, value)
		lcp := existing.longestCommonPrefix(newL, depth)
		prefix := append([]byte(nil), existing.key[depth:depth+lcp]...)
		n := newInode4()
		n.populateFromLeaves(existing, newL, prefix, depth)
		return n.self(), true
	}

	h := cur.asHeader()
	prefix := h.prefixBytes()
	mismatch := 0
	for mismatch < len(prefix) {
		if depth+mismatch >= len(key) || key[depth+mismatch] != prefix[mismatch] {
			break
		}
		mismatch++
	}
	if mismatch < len(prefix) {
		newL := newLeaf(key, value)
		newPrefix := append([]byte(nil), prefix[:mismatch]...)
		n := newInode4()
		newKeyByte := -1
		if depth+mismatch < len(key) {
			newKeyByte = int(key[depth+mismatch])
		}
		n.populateFromSplitNode(newPrefix, cur, newL, mismatch, newKeyByte)
		return n.self(), true
	}

	depth += len(prefix)
	if depth >= len(key) {
		if h.terminal != nil {
			h.terminal.value = value
			return cur, false
		}
		h.terminal = newLeaf(key, value)
		return cur, true
	}
	keyByte := discriminatorByte(key, depth)
	pos := findChildOf(cur, keyByte)
	if pos.isEnd() {
		newL := newLeaf(key, value)
		return addChild(cur, newL, keyByte), true
	}

	childResult, created := insertAt(pos.node, key, value, depth+1)
	if !childResult.equal(pos.node) {
		replaceChildOf(cur, pos, childResult)
	}
	return cur, created
}

// addChild adds l at keyByte to cur, growing cur into the next
// variant first if it is already full (spec §4.3-§4.6 "grow from ...
// (populate)").
func addChild(cur nodePtr, l *leaf, keyByte byte) nodePtr {
	switch cur.tagOf() {
	case typeI4:
		n := cur.asI4()
		if n.isFull() {
			grown, _ := newInode16FromInode4(n, l, keyByte)
			return grown.self()
		}
		n.add(l, keyByte)
		return cur
	case typeI16:
		n := cur.asI16()
		if n.isFull() {
			grown, _ := newInode48FromInode16(n, l, keyByte)
			return grown.self()
		}
		n.add(l, keyByte)
		return cur
	case typeI48:
		n := cur.asI48()
		if n.isFull() {
			grown, _ := newInode256FromInode48(n, l, keyByte)
			return grown.self()
		}
		n.add(l, keyByte)
		return cur
	case typeI256:
		n := cur.asI256()
		n.add(l, keyByte)
		return cur
	default:
		unreachableTag(cur.tagOf())
		return nilPtr
	}
}

// deleteAt mirrors insertAt: it returns the node that should now
// occupy cur's slot (nilPtr if cur's whole subtree was the match),
// and whether a key was removed.
func deleteAt(cur nodePtr, key []byte, depth int) (nodePtr, bool) {
	if cur.tagOf() == typeLeaf {
		if cur.asLeaf().matches(key) {
			return nilPtr, true
		}
		return cur, false
	}

	h := cur.asHeader()
	prefix := h.prefixBytes()
	for i, b := range prefix {
		if discriminatorByte(key, depth+i) != b {
			return cur, false
		}
	}
	depth += len(prefix)
	if depth >= len(key) {
		if h.terminal == nil || !h.terminal.matches(key) {
			return cur, false
		}
		h.terminal = nil
		if cur.tagOf() == typeI4 {
			n4 := cur.asI4()
			if collapsed := n4.collapseIfSingular(); !collapsed.isNil() {
				return collapsed, true
			}
			if n4.childrenCount == 0 {
				return nilPtr, true
			}
		}
		return cur, true
	}
	keyByte := discriminatorByte(key, depth)
	pos := findChildOf(cur, keyByte)
	if pos.isEnd() {
		return cur, false
	}

	if pos.node.tagOf() == typeLeaf {
		if !pos.node.asLeaf().matches(key) {
			return cur, false
		}
		return removeChild(cur, pos), true
	}

	childResult, deleted := deleteAt(pos.node, key, depth+1)
	if !deleted {
		return cur, false
	}
	if !childResult.equal(pos.node) {
		replaceChildOf(cur, pos, childResult)
	}
	return cur, true
}

// removeChild deletes the child at pos from cur, shrinking cur into
// the next-smaller variant (or collapsing an I4 down to its surviving
// child) when that drops cur below its minimum (spec §4.3-§4.6 "shrink
// source", "leave_last_child").
func removeChild(cur nodePtr, pos iterator) nodePtr {
	switch cur.tagOf() {
	case typeI4:
		n := cur.asI4()
		if n.childrenCount == 2 && n.terminal == nil {
			return n.leaveLastChild(pos.index)
		}
		n.remove(pos.index)
		if n.childrenCount == 0 {
			// Only a node born with a terminal and exactly one real
			// child reaches zero via plain remove (the two-real-
			// children case above always goes through leaveLastChild
			// or survives with >=1). The terminal becomes the whole
			// subtree.
			return leafPtr(n.terminal)
		}
		return cur
	case typeI16:
		n := cur.asI16()
		if n.childrenCount == i16Min {
			return newInode4FromInode16(n, pos.index).self()
		}
		n.remove(pos.index)
		return cur
	case typeI48:
		n := cur.asI48()
		if n.childrenCount == i48Min {
			return newInode16FromInode48(n, byte(pos.index)).self()
		}
		n.remove(byte(pos.index))
		return cur
	case typeI256:
		n := cur.asI256()
		if n.childrenCount == i256Min {
			return newInode48FromInode256(n, pos.index).self()
		}
		n.remove(byte(pos.index))
		return cur
	default:
		unreachableTag(cur.tagOf())
		return nilPtr
	}
}

// compareKeySlice compares key[depth:depth+len(prefix)] against
// prefix byte-lexicographically. Bytes past the end of key are
// treated as zero, the same zero-padding convention discriminatorByte
// already establishes for insert/search.
func compareKeySlice(key []byte, depth int, prefix []byte) int {
	for i, pb := range prefix {
		kb := discriminatorByte(key, depth+i)
		if kb != pb {
			if kb < pb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ceilingAt returns the smallest leaf at or under pos.node whose key
// is >= key, or the end iterator if none qualifies.
func ceilingAt(pos iterator, key []byte, depth int) iterator {
	cur := pos.node
	if cur.isNil() {
		return iterator{}
	}
	if cur.tagOf() == typeLeaf {
		if bitwiseKey(cur.asLeaf().key).compare(bitwiseKey(key)) >= 0 {
			return pos
		}
		return iterator{}
	}

	h := cur.asHeader()
	cmp := compareKeySlice(key, depth, h.prefixBytes())
	if cmp < 0 {
		return leftmostLeafOf(cur, 0)
	}
	if cmp > 0 {
		return iterator{}
	}

	depth += h.prefixLength()
	if depth >= len(key) {
		// key ends exactly at this node's prefix boundary: the
		// smallest entry at or under cur is the ceiling, whether
		// that's cur's own terminal or its leftmost real child.
		return leftmostLeafOf(cur, 0)
	}
	keyByte := discriminatorByte(key, depth)
	childPos := findChildOf(cur, keyByte)
	if !childPos.isEnd() {
		if res := ceilingAt(childPos, key, depth+1); !res.isEnd() {
			return res
		}
	}
	next := nextChildAfterByte(cur, int(keyByte))
	if next.isEnd() {
		return iterator{}
	}
	if next.node.tagOf() == typeLeaf {
		return next
	}
	return leftmostLeafOf(next.node, 0)
}

// floorAt is ceilingAt's mirror: the largest leaf at or under
// pos.node whose key is <= key.
func floorAt(pos iterator, key []byte, depth int) iterator {
	cur := pos.node
	if cur.isNil() {
		return iterator{}
	}
	if cur.tagOf() == typeLeaf {
		if bitwiseKey(cur.asLeaf().key).compare(bitwiseKey(key)) <= 0 {
			return pos
		}
		return iterator{}
	}

	h := cur.asHeader()
	cmp := compareKeySlice(key, depth, h.prefixBytes())
	if cmp > 0 {
		return rightmostLeafOf(cur)
	}
	if cmp < 0 {
		return iterator{}
	}

	depth += h.prefixLength()
	if depth >= len(key) {
		// key ends at or before this node's prefix boundary: no real
		// child qualifies (every one of them extends past key, making
		// it strictly greater), so only cur's own terminal — when it is
		// an exact match for key — can be the floor.
		if h.terminal != nil && h.terminal.matches(key) {
			return iterator{node: leafPtr(h.terminal), index: -1, parent: cur}
		}
		return iterator{}
	}
	keyByte := discriminatorByte(key, depth)
	childPos := findChildOf(cur, keyByte)
	if !childPos.isEnd() {
		if res := floorAt(childPos, key, depth+1); !res.isEnd() {
			return res
		}
	}
	prev := prevChildBeforeByte(cur, int(keyByte))
	if !prev.isEnd() {
		if prev.node.tagOf() == typeLeaf {
			return prev
		}
		return rightmostLeafOf(prev.node)
	}
	// No sibling before keyByte either: cur's own terminal (a strict
	// prefix of key, and thus smaller than every real child here) is
	// the last fallback.
	if h.terminal != nil {
		return iterator{node: leafPtr(h.terminal), index: -1, parent: cur}
	}
	return iterator{}
}
