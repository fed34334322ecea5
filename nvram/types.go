// Package nvram implements the core NVRAM manager: in-memory bookkeeping and
// the persistence protocol that guarantee crash-consistent creation and
// deletion of spaces, enforce access control, and multiplex the wire
// request/response union onto storage.
package nvram

import "github.com/outofforest/nvram/wire"

// Resource bounds, per spec.md §5.
const (
	// MaxSpaces is the maximum number of concurrently allocated spaces.
	MaxSpaces = 32
	// MaxSpaceSize is the maximum byte length of a single space's contents.
	MaxSpaceSize = 1024
	// MaxAuthSize is the maximum byte length of an authorization value.
	MaxAuthSize = 32
	// hashSize is the digest size produced by WRITE_EXTEND hashing (SHA-256).
	hashSize = 32
)

// kVersion is the current on-disk header format version. A stored header
// with a higher version is a fatal-for-init error (spec.md §3, §4.2).
const kVersion = 1

// Header flag bits.
const (
	flagDisableCreate = uint32(1) << 0
)

// Space flag bits.
const (
	flagWriteLocked = uint32(1) << 0
)

// header is the in-memory mirror of the persisted NvramHeader singleton.
type header struct {
	version          uint32
	flags            uint32
	allocatedIndices []uint32
	hasProvisional   bool
	provisionalIndex uint32
}

// space is the in-memory mirror of a persisted NvramSpace record.
type space struct {
	flags              uint32
	controls           uint32
	authorizationValue []byte
	contents           []byte
}

func (s *space) hasControl(c wire.Control) bool {
	return s.controls&(uint32(1)<<c) != 0
}

func (s *space) hasFlag(flag uint32) bool {
	return s.flags&flag != 0
}

func (s *space) setFlag(flag uint32) {
	s.flags |= flag
}

// spaceListEntry holds the transient, per-boot bookkeeping for one allocated
// space. Both locks start false each boot and are only ever toggled up by
// LockSpaceWrite/LockSpaceRead for BOOT_* controls (spec.md §3).
type spaceListEntry struct {
	index       uint32
	writeLocked bool
	readLocked  bool
}

// spaceRecord is the ephemeral per-operation aggregation of a space's
// transient and persistent state. It is never stored.
type spaceRecord struct {
	arrayIndex int
	transient  *spaceListEntry
	persistent space
}
