package art

import "testing"

// FuzzMapInsertSearch inserts an arbitrary byte string into an empty
// map, checking that whatever was just inserted is always immediately
// found again.
func FuzzMapInsertSearch(f *testing.F) {
	for _, seed := range [][]byte{
		nil,
		{0},
		{0xFF},
		[]byte("hello"),
		[]byte("hello world"),
		{0, 0, 0},
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, key []byte) {
		m := NewMap()
		m.Insert(key, "v")
		v, ok := m.Search(key)
		if !ok || v != "v" {
			t.Fatalf("search(%x) = %v, %v; want \"v\", true", key, v, ok)
		}
	})
}

// FuzzMapInsertDeleteRoundTrip checks that inserting then deleting the
// same key restores the size from before the insert, leaves the key
// absent, and leaves the other key's value intact.
func FuzzMapInsertDeleteRoundTrip(f *testing.F) {
	f.Add([]byte("seed"), []byte("other"))

	f.Fuzz(func(t *testing.T, key, other []byte) {
		if len(key) == 0 || string(key) == string(other) {
			return
		}
		m := NewMap()
		m.Insert(other, "other")
		sizeBefore := m.Size()

		m.Insert(key, "k")
		if ok := m.Delete(key); !ok {
			t.Fatalf("Delete(%x) after Insert returned false", key)
		}
		if m.Size() != sizeBefore {
			t.Fatalf("size after insert+delete = %d, want %d", m.Size(), sizeBefore)
		}
		if _, ok := m.Search(key); ok {
			t.Fatalf("Search(%x) found a deleted key", key)
		}
		v, ok := m.Search(other)
		if !ok || v != "other" {
			t.Fatalf("unrelated key %x corrupted by insert+delete of %x", other, key)
		}
	})
}
