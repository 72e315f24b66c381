package art

import "encoding/binary"

// bitwiseKey is the byte-random-access sequence spec §6 defines:
// size/at/shift_left/shift_right/equality plus a byte-lexicographic
// total order. It is a thin []byte wrapper — the core itself never
// constructs one directly, it only ever holds leaf keys and prefixes
// as plain []byte, but the typed maps' public APIs (typedmap.go) go
// through the Encode* adapters so user keys land in the core with the
// right total order.
type bitwiseKey []byte

func (k bitwiseKey) size() int { return len(k) }

func (k bitwiseKey) at(i int) byte { return k[i] }

func (k bitwiseKey) shiftLeft(b byte) bitwiseKey {
	return append(bitwiseKey{b}, k...)
}

func (k bitwiseKey) shiftLeftBytes(bs []byte) bitwiseKey {
	out := make(bitwiseKey, len(bs)+len(k))
	copy(out, bs)
	copy(out[len(bs):], k)
	return out
}

func (k bitwiseKey) shiftRight(n int) bitwiseKey { return k[n:] }

func (k bitwiseKey) equal(other bitwiseKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// compare returns a negative, zero, or positive value as k is less
// than, equal to, or greater than other, under pure byte-lexicographic
// order (spec §1: "The total order on bitwise keys is pure
// byte-lexicographic").
func (k bitwiseKey) compare(other bitwiseKey) int {
	n := len(k)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if k[i] != other[i] {
			if k[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return len(k) - len(other)
}

// EncodeInt64 converts a signed integer key into a bitwise key whose
// byte-lexicographic order matches the integer order. Flipping the
// sign bit turns two's-complement ordering into unsigned-byte
// ordering — the standard trick spec §1 calls out explicitly for
// signed keys.
func EncodeInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v)^(1<<63))
	return buf
}

// EncodeUint64 is a plain big-endian reinterpretation: unsigned
// integers are already ordered correctly byte-lexicographically.
func EncodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

// EncodeInt32/EncodeUint32 are the 32-bit counterparts of the above,
// for callers keying on narrower integers.
func EncodeInt32(v int32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(v)^(1<<31))
	return buf
}

func EncodeUint32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// DecodeInt64 and DecodeUint64 invert EncodeInt64/EncodeUint64, for
// callers that want their key back out of an iterator or dump.
func DecodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func DecodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// EncodeString and EncodeBytes are the identity conversion: Go strings
// and byte slices are already byte-lexicographically ordered.
func EncodeString(s string) []byte { return []byte(s) }

func EncodeBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
