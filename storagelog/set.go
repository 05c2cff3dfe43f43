package storagelog

import (
	"bytes"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// Entry is a single flat storage slot
type Entry struct {
	Key   common.Hash
	Value common.Hash
}

// Set is an append-only mapping of flat storage keys to values that rejects
// duplicated keys and iterates in ascending key order.
type Set struct {
	keys   []common.Hash
	values map[common.Hash]common.Hash
}

// NewSet returns an empty Set
func NewSet() *Set {
	return &Set{
		values: make(map[common.Hash]common.Hash),
	}
}

// Insert adds key with value. Inserting a key twice fails with a *DuplicateKeyError
// and leaves the Set untouched.
func (s *Set) Insert(key, value common.Hash) error {
	if _, ok := s.values[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	pos, _ := slices.BinarySearchFunc(s.keys, key, compareKeys)
	s.keys = slices.Insert(s.keys, pos, key)
	s.values[key] = value
	return nil
}

// Get returns the value stored under key
func (s *Set) Get(key common.Hash) (common.Hash, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of entries
func (s *Set) Len() int {
	return len(s.keys)
}

// Entries returns a copy of the entries, ascending by key
func (s *Set) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, Entry{Key: k, Value: s.values[k]})
	}
	return entries
}

func compareKeys(a, b common.Hash) int {
	return bytes.Compare(a[:], b[:])
}
