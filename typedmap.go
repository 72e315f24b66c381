package art

// StringMap, Int64Map, and Uint64Map wire the bitwise-key adapters
// (key.go) in front of the byte-keyed Map — a complete, usable
// instantiation of the adapter contract spec §1 assigns to an
// external collaborator, not just its interface.
type StringMap struct{ m *Map }

func NewStringMap() *StringMap { return &StringMap{m: NewMap()} }

func (s *StringMap) Insert(key string, value interface{}) bool { return s.m.Insert(EncodeString(key), value) }
func (s *StringMap) Search(key string) (interface{}, bool)     { return s.m.Search(EncodeString(key)) }
func (s *StringMap) Delete(key string) bool                    { return s.m.Delete(EncodeString(key)) }
func (s *StringMap) Size() int                                 { return s.m.Size() }

func (s *StringMap) Each(fn func(key string, value interface{}) bool) {
	s.m.Each(func(k []byte, v interface{}) bool { return fn(string(k), v) })
}

func (s *StringMap) Min() (key string, value interface{}, ok bool) {
	k, v, ok := s.m.Min()
	if !ok {
		return "", nil, false
	}
	return string(k), v, true
}

func (s *StringMap) Max() (key string, value interface{}, ok bool) {
	k, v, ok := s.m.Max()
	if !ok {
		return "", nil, false
	}
	return string(k), v, true
}

// Int64Map orders keys as signed 64-bit integers, using EncodeInt64's
// sign-bit flip so negative keys sort before positive ones.
type Int64Map struct{ m *Map }

func NewInt64Map() *Int64Map { return &Int64Map{m: NewMap()} }

func (s *Int64Map) Insert(key int64, value interface{}) bool {
	return s.m.Insert(EncodeInt64(key), value)
}
func (s *Int64Map) Search(key int64) (interface{}, bool) { return s.m.Search(EncodeInt64(key)) }
func (s *Int64Map) Delete(key int64) bool                { return s.m.Delete(EncodeInt64(key)) }
func (s *Int64Map) Size() int                             { return s.m.Size() }

func (s *Int64Map) Each(fn func(key int64, value interface{}) bool) {
	s.m.Each(func(k []byte, v interface{}) bool { return fn(DecodeInt64(k), v) })
}

func (s *Int64Map) Min() (key int64, value interface{}, ok bool) {
	k, v, ok := s.m.Min()
	if !ok {
		return 0, nil, false
	}
	return DecodeInt64(k), v, true
}

func (s *Int64Map) Max() (key int64, value interface{}, ok bool) {
	k, v, ok := s.m.Max()
	if !ok {
		return 0, nil, false
	}
	return DecodeInt64(k), v, true
}

// Uint64Map orders keys as unsigned 64-bit integers.
type Uint64Map struct{ m *Map }

func NewUint64Map() *Uint64Map { return &Uint64Map{m: NewMap()} }

func (s *Uint64Map) Insert(key uint64, value interface{}) bool {
	return s.m.Insert(EncodeUint64(key), value)
}
func (s *Uint64Map) Search(key uint64) (interface{}, bool) { return s.m.Search(EncodeUint64(key)) }
func (s *Uint64Map) Delete(key uint64) bool                { return s.m.Delete(EncodeUint64(key)) }
func (s *Uint64Map) Size() int                              { return s.m.Size() }

func (s *Uint64Map) Each(fn func(key uint64, value interface{}) bool) {
	s.m.Each(func(k []byte, v interface{}) bool { return fn(DecodeUint64(k), v) })
}

func (s *Uint64Map) Min() (key uint64, value interface{}, ok bool) {
	k, v, ok := s.m.Min()
	if !ok {
		return 0, nil, false
	}
	return DecodeUint64(k), v, true
}

func (s *Uint64Map) Max() (key uint64, value interface{}, ok bool) {
	k, v, ok := s.m.Max()
	if !ok {
		return 0, nil, false
	}
	return DecodeUint64(k), v, true
}
