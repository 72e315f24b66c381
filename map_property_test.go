package art

import (
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapFakeData mirrors aglyzov-go-ds's qptrie seeded-fake-data
// property test: insert a large, deterministically-generated key set,
// shadow it in a plain Go map, then verify every key is retrievable
// and iteration stays sorted.
func TestMapFakeData(t *testing.T) {
	const (
		total = 100_000
		seed  = 1234567890
	)

	var (
		m     = NewMap()
		state = map[string]interface{}{}
		fake  = gofakeit.New(seed)
	)

	for i := 0; i < total; i++ {
		key := fake.HipsterSentence(3)
		val := fake.Name()
		m.Insert([]byte(key), val)
		state[key] = val
	}

	require.Equal(t, len(state), m.Size())

	for key, val := range state {
		got, ok := m.Search([]byte(key))
		require.True(t, ok, key)
		assert.Equal(t, val, got, key)
	}

	var prev []byte
	first := true
	m.Each(func(key []byte, value interface{}) bool {
		if !first {
			assert.LessOrEqual(t, bitwiseKey(prev).compare(bitwiseKey(key)), 0)
		}
		first = false
		prev = append([]byte(nil), key...)
		return true
	})
}

// TestMapFakeDataDeleteAll inserts then deletes a fake key set in a
// different order, checking the tree always empties out cleanly
// through every grow/shrink transition.
func TestMapFakeDataDeleteAll(t *testing.T) {
	const (
		total = 20_000
		seed  = 987654321
	)

	var (
		m    = NewMap()
		fake = gofakeit.New(seed)
		keys []string
		seen = map[string]bool{}
	)

	for len(keys) < total {
		k := fake.UUID()
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		m.Insert([]byte(k), len(keys))
	}
	require.Equal(t, total, m.Size())

	perm := rand.New(rand.NewSource(seed)).Perm(total)
	for _, idx := range perm {
		require.True(t, m.Delete([]byte(keys[idx])))
	}
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.root.isNil())
}
