// Package faultinjector wraps a storage.Storage with per-call fault
// injection, so tests can simulate a crash between the two writes of the
// manager's two-phase create/delete protocol (spec.md §8, crash recovery
// laws).
package faultinjector

import (
	"github.com/outofforest/nvram/storage"
)

// Op identifies a single storage operation, for targeted fault injection.
type Op int

// Operations that can be faulted.
const (
	OpLoadHeader Op = iota
	OpStoreHeader
	OpLoadSpace
	OpStoreSpace
	OpDeleteSpace
)

// Injector wraps an underlying storage.Storage and fails the Nth matching
// call for each faulted Op exactly once (then reverts to passthrough),
// mimicking a single crash at a specific point in the protocol.
type Injector struct {
	underlying storage.Storage
	faults     map[Op]int
	counts     map[Op]int
}

// New wraps underlying with no faults configured.
func New(underlying storage.Storage) *Injector {
	return &Injector{
		underlying: underlying,
		faults:     make(map[Op]int),
		counts:     make(map[Op]int),
	}
}

// FailNth arranges for the n-th (1-based) call to op to return a storage
// error instead of reaching the underlying storage.
func (i *Injector) FailNth(op Op, n int) {
	i.faults[op] = n
}

func (i *Injector) shouldFail(op Op) bool {
	i.counts[op]++
	return i.faults[op] == i.counts[op]
}

// LoadHeader implements storage.Storage.
func (i *Injector) LoadHeader() ([]byte, storage.Status) {
	if i.shouldFail(OpLoadHeader) {
		return nil, storage.StatusStorageError
	}
	return i.underlying.LoadHeader()
}

// StoreHeader implements storage.Storage.
func (i *Injector) StoreHeader(blob []byte) storage.Status {
	if i.shouldFail(OpStoreHeader) {
		return storage.StatusStorageError
	}
	return i.underlying.StoreHeader(blob)
}

// LoadSpace implements storage.Storage.
func (i *Injector) LoadSpace(index uint32) ([]byte, storage.Status) {
	if i.shouldFail(OpLoadSpace) {
		return nil, storage.StatusStorageError
	}
	return i.underlying.LoadSpace(index)
}

// StoreSpace implements storage.Storage.
func (i *Injector) StoreSpace(index uint32, blob []byte) storage.Status {
	if i.shouldFail(OpStoreSpace) {
		return storage.StatusStorageError
	}
	return i.underlying.StoreSpace(index, blob)
}

// DeleteSpace implements storage.Storage.
func (i *Injector) DeleteSpace(index uint32) storage.Status {
	if i.shouldFail(OpDeleteSpace) {
		return storage.StatusStorageError
	}
	return i.underlying.DeleteSpace(index)
}
