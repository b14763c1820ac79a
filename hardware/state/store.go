// This file is part of GopherBK.
//
// GopherBK is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBK is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBK.  If not, see <https://www.gnu.org/licenses/>.

package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherbk/curated"
)

// Sentinel errors returned by the typed getter functions.
const (
	MissingKey = "state: missing key (%s)"
	WrongType  = "state: wrong type for key (%s): %T"
	WrongSize  = "state: wrong size for key (%s): %d instead of %d"
)

// Store is an opaque key-value container.
type Store struct {
	values map[string]any
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
	}
}

func (s *Store) String() string {
	b := strings.Builder{}
	for _, k := range s.Keys() {
		switch v := s.values[k].(type) {
		case []uint16:
			b.WriteString(fmt.Sprintf("%s: %d words\n", k, len(v)))
		default:
			b.WriteString(fmt.Sprintf("%s: %v\n", k, v))
		}
	}
	return b.String()
}

// Keys returns all keys in the store in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has returns true if the key is in the store.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete key from the store.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// SetUint16 stores a 16 bit value.
func (s *Store) SetUint16(key string, v uint16) {
	s.values[key] = v
}

// SetUint64 stores a 64 bit value.
func (s *Store) SetUint64(key string, v uint64) {
	s.values[key] = v
}

// SetInt stores an int value.
func (s *Store) SetInt(key string, v int) {
	s.values[key] = v
}

// SetBool stores a boolean value.
func (s *Store) SetBool(key string, v bool) {
	s.values[key] = v
}

// SetWords stores a copy of the slice of words.
func (s *Store) SetWords(key string, v []uint16) {
	c := make([]uint16, len(v))
	copy(c, v)
	s.values[key] = c
}

func get[T any](s *Store, key string) (T, error) {
	var zero T
	v, ok := s.values[key]
	if !ok {
		return zero, curated.Errorf(MissingKey, key)
	}
	t, ok := v.(T)
	if !ok {
		return zero, curated.Errorf(WrongType, key, v)
	}
	return t, nil
}

// Uint16 returns the 16 bit value for key.
func (s *Store) Uint16(key string) (uint16, error) {
	return get[uint16](s, key)
}

// Uint64 returns the 64 bit value for key.
func (s *Store) Uint64(key string) (uint64, error) {
	return get[uint64](s, key)
}

// Int returns the int value for key.
func (s *Store) Int(key string) (int, error) {
	return get[int](s, key)
}

// Bool returns the boolean value for key.
func (s *Store) Bool(key string) (bool, error) {
	return get[bool](s, key)
}

// Words returns the slice of words for key. The length of the slice must
// equal the expected length unless expected is negative. The returned slice
// is a copy.
func (s *Store) Words(key string, expected int) ([]uint16, error) {
	v, err := get[[]uint16](s, key)
	if err != nil {
		return nil, err
	}
	if expected >= 0 && len(v) != expected {
		return nil, curated.Errorf(WrongSize, key, len(v), expected)
	}
	c := make([]uint16, len(v))
	copy(c, v)
	return c, nil
}
