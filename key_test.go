package art

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeInt64PreservesOrder(t *testing.T) {
	values := []int64{-100, -1, 0, 1, 100, -9223372036854775808, 9223372036854775807}
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	encoded := make([][]byte, len(values))
	for i, v := range values {
		encoded[i] = EncodeInt64(v)
	}
	sort.Slice(encoded, func(i, j int) bool { return bitwiseKey(encoded[i]).compare(bitwiseKey(encoded[j])) < 0 })

	for i, b := range encoded {
		assert.Equal(t, sorted[i], DecodeInt64(b))
	}
}

func TestEncodeUint64PreservesOrder(t *testing.T) {
	values := []uint64{0, 1, 100, 1 << 63, ^uint64(0)}
	sorted := append([]uint64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	encoded := make([][]byte, len(values))
	for i, v := range values {
		encoded[i] = EncodeUint64(v)
	}
	sort.Slice(encoded, func(i, j int) bool { return bitwiseKey(encoded[i]).compare(bitwiseKey(encoded[j])) < 0 })

	for i, b := range encoded {
		assert.Equal(t, sorted[i], DecodeUint64(b))
	}
}

func TestBitwiseKeyCompareIsLexicographic(t *testing.T) {
	assert.Equal(t, -1, bitwiseKey("a").compare(bitwiseKey("ab")))
	assert.Equal(t, 1, bitwiseKey("ab").compare(bitwiseKey("a")))
	assert.Equal(t, 0, bitwiseKey("x").compare(bitwiseKey("x")))
	assert.Equal(t, -1, bitwiseKey("a").compare(bitwiseKey("b")))
}

func TestEncodeInt64RandomOrderMatchesIntegerOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	n := 2000
	values := make([]int64, n)
	for i := range values {
		values[i] = r.Int63() - (r.Int63() % 2 * (1 << 62))
	}

	byEncoded := append([]int64(nil), values...)
	sort.Slice(byEncoded, func(i, j int) bool {
		return bitwiseKey(EncodeInt64(byEncoded[i])).compare(bitwiseKey(EncodeInt64(byEncoded[j]))) < 0
	})

	byInteger := append([]int64(nil), values...)
	sort.Slice(byInteger, func(i, j int) bool { return byInteger[i] < byInteger[j] })

	assert.Equal(t, byInteger, byEncoded)
}
