package art

import "github.com/hideo55/go-popcount"

// firstSetBitIndex returns the bit position of the lowest set bit in
// mask, or -1 if mask is zero. This is the scalar ffs/ctz used by
// I4's "contains byte" search (inode4.findChild); it is built on
// popcount.Count the same way
// aglyzov-go-ds's veb/set.Has/Add turns a bitmap word into a rank:
// isolate the lowest set bit with mask & -mask (a power of two, or
// zero), then popcount.Count(bit-1) counts exactly the bits below it,
// which is its index.
func firstSetBitIndex(mask uint64) int {
	if mask == 0 {
		return -1
	}
	lowestSet := mask & -mask
	return int(popcount.Count(lowestSet - 1))
}

// containsByte implements the "contains byte" trick spec §4.3
// describes for I4's scalar find_child fallback: it returns a mask
// that is zero iff no byte of keys equals b, and whose lowest set bit
// is bit 7 of the first byte equal to b (n = number of packed key
// bytes, here 4). Bits above that byte may be set by the subtraction's
// borrow without a match, so only the lowest set bit is meaningful.
func containsByte(keys uint32, b byte) uint32 {
	word := keys ^ (uint32(b) * 0x01010101)
	// "haszero" trick: a zero byte in `word` is the byte that matched.
	return (word - 0x01010101) & ^word & 0x80808080
}
