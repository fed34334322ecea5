// Package memstore implements storage.Storage as a process-local, in-memory
// slot table. It replaces the original implementation's process-wide fake
// storage with an explicitly constructed, dependency-injected instance, per
// spec.md §9's "Global-state test fake" design note.
package memstore

import (
	"github.com/outofforest/nvram/storage"
)

type slot struct {
	present bool
	blob    []byte
}

func (s *slot) load() ([]byte, storage.Status) {
	if !s.present {
		return nil, storage.StatusNotFound
	}
	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, storage.StatusSuccess
}

func (s *slot) store(blob []byte) storage.Status {
	s.blob = append([]byte(nil), blob...)
	s.present = true
	return storage.StatusSuccess
}

func (s *slot) delete() storage.Status {
	if !s.present {
		return storage.StatusNotFound
	}
	s.present = false
	s.blob = nil
	return storage.StatusSuccess
}

// Store is an in-memory implementation of storage.Storage, useful for tests
// and for the CLI's "memory" backend.
type Store struct {
	header *slot
	spaces map[uint32]*slot
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		header: &slot{},
		spaces: make(map[uint32]*slot),
	}
}

// LoadHeader implements storage.Storage.
func (s *Store) LoadHeader() ([]byte, storage.Status) {
	return s.header.load()
}

// StoreHeader implements storage.Storage.
func (s *Store) StoreHeader(blob []byte) storage.Status {
	return s.header.store(blob)
}

// LoadSpace implements storage.Storage.
func (s *Store) LoadSpace(index uint32) ([]byte, storage.Status) {
	sl, ok := s.spaces[index]
	if !ok {
		return nil, storage.StatusNotFound
	}
	return sl.load()
}

// StoreSpace implements storage.Storage.
func (s *Store) StoreSpace(index uint32, blob []byte) storage.Status {
	sl, ok := s.spaces[index]
	if !ok {
		sl = &slot{}
		s.spaces[index] = sl
	}
	return sl.store(blob)
}

// DeleteSpace implements storage.Storage.
func (s *Store) DeleteSpace(index uint32) storage.Status {
	sl, ok := s.spaces[index]
	if !ok {
		return storage.StatusNotFound
	}
	return sl.delete()
}

// SpacePresent reports whether the store currently holds data for index,
// used by tests to assert on storage state directly rather than through
// the manager.
func (s *Store) SpacePresent(index uint32) bool {
	sl, ok := s.spaces[index]
	return ok && sl.present
}
