package nvram

import (
	"github.com/outofforest/nvram/storage"
)

// Initialize reconstructs in-memory state from the header and performs
// crash recovery over the header+per-space log (spec.md §4.2). It is
// idempotent: once it succeeds, it becomes a no-op. On failure it may be
// retried by a later Dispatch call, e.g. if the storage backend recovers.
func (m *Manager) Initialize() bool {
	if m.initialized {
		return true
	}

	h, status, err := persistenceLoadHeader(m.storage, m.logger)
	switch status {
	case storage.StatusStorageError:
		m.logger.Error("initialize: failed to load header", "error", err)
		return false
	case storage.StatusNotFound:
		// Fresh device: no header in storage yet. The first write will
		// create it.
		m.spaces = make([]spaceListEntry, 0, MaxSpaces)
		m.initialized = true
		return true
	}

	if h.version > kVersion {
		m.logger.Error("initialize: on-disk header version is newer than supported",
			"stored", h.version, "supported", kVersion)
		return false
	}

	provisionalInStorage := false
	if h.hasProvisional {
		_, spStatus, spErr := persistenceLoadSpace(m.storage, h.provisionalIndex, m.logger)
		switch spStatus {
		case storage.StatusStorageError:
			// Conservative: leave the slot marked as allocated rather than
			// risk reclaiming it while its true state is unknown.
			m.logger.Error("initialize: failed to load provisional space, keeping it allocated",
				"index", h.provisionalIndex, "error", spErr)
			provisionalInStorage = true
		case storage.StatusNotFound:
			provisionalInStorage = false
		case storage.StatusSuccess:
			provisionalInStorage = true
		}
	}

	if len(h.allocatedIndices) > MaxSpaces {
		m.logger.Error("initialize: too many allocated spaces in header",
			"count", len(h.allocatedIndices), "max", MaxSpaces)
		return false
	}

	m.spaces = make([]spaceListEntry, 0, MaxSpaces)
	provisionalIsMember := false
	for _, index := range h.allocatedIndices {
		if h.hasProvisional && h.provisionalIndex == index {
			provisionalIsMember = true
			if !provisionalInStorage {
				// Half-created space: header line written, data never
				// landed. Pretend it was never created.
				m.logger.Info("initialize: dropping half-created provisional space", "index", index)
				continue
			}
		}

		m.spaces = append(m.spaces, spaceListEntry{index: index})
	}

	if h.hasProvisional && !provisionalIsMember && provisionalInStorage {
		// The header already dropped the index (delete's first phase) but
		// its data remains: half-deleted space. Destroy it now.
		m.logger.Info("initialize: completing deletion of half-deleted provisional space",
			"index", h.provisionalIndex)
		switch persistenceDeleteSpace(m.storage, h.provisionalIndex, m.logger) {
		case storage.StatusStorageError:
			m.logger.Error("initialize: failed to delete half-deleted provisional space",
				"index", h.provisionalIndex)
			return false
		case storage.StatusNotFound:
			m.logger.Error("initialize: provisional space absent on deletion",
				"index", h.provisionalIndex)
			return false
		}
	}

	m.disableCreate = h.flags&flagDisableCreate != 0
	m.initialized = true

	if h.hasProvisional {
		// Best effort: clear the provisional marker so a later boot does
		// not have to redo this reconciliation. Failure here is non-fatal.
		if persistenceStoreHeader(m.storage, header{
			flags:            h.flags,
			allocatedIndices: m.allocatedIndicesSnapshot(),
		}, m.logger) != storage.StatusSuccess {
			m.logger.Warn("initialize: failed to write clean header after reconciliation")
		}
	}

	return true
}

func (m *Manager) allocatedIndicesSnapshot() []uint32 {
	out := make([]uint32, len(m.spaces))
	for i, entry := range m.spaces {
		out[i] = entry.index
	}
	return out
}
