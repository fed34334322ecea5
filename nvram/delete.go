package nvram

import (
	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

// deleteSpace implements spec.md §4.4.
func (m *Manager) deleteSpace(req wire.DeleteSpaceRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	record, result := m.loadSpaceRecord(req.Index)
	if result != wire.ResultSuccess {
		return wire.Response{Result: result}
	}

	if accessResult := m.checkWriteAccess(record, req.AuthorizationValue); accessResult != wire.ResultSuccess {
		return wire.Response{Result: accessResult}
	}

	if headerResult := m.writeHeaderWithoutIndex(req.Index); headerResult != wire.ResultSuccess {
		return wire.Response{Result: headerResult}
	}

	if persistenceDeleteSpace(m.storage, req.Index, m.logger) != storage.StatusSuccess {
		m.logger.Error("failed to delete space data; will be retried at next initialize", "index", req.Index)
		// Membership already dropped from the header. At next boot
		// Initialize will find the provisional index absent from the
		// header's allocated list but still present in storage, and retry
		// the deletion.
		m.spaces = append(m.spaces[:record.arrayIndex], m.spaces[record.arrayIndex+1:]...)
		return wire.Response{Result: wire.ResultInternalError}
	}

	m.spaces = append(m.spaces[:record.arrayIndex], m.spaces[record.arrayIndex+1:]...)

	// Best effort: clear the provisional marker now that the delete has
	// landed. Failure is non-fatal.
	if m.writeHeader(noProvisional()) != wire.ResultSuccess {
		m.logger.Warn("failed to clear provisional marker after delete", "index", req.Index)
	}

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.DeleteSpaceResponse{}}
}

// writeHeaderWithoutIndex writes the header with index removed from
// allocated_indices and marked provisional, without yet mutating m.spaces —
// step 1 of the two-phase delete protocol (spec.md §4.4).
func (m *Manager) writeHeaderWithoutIndex(index uint32) wire.Result {
	remaining := make([]uint32, 0, len(m.spaces))
	for _, entry := range m.spaces {
		if entry.index != index {
			remaining = append(remaining, entry.index)
		}
	}

	h := header{
		flags:            m.headerFlags(),
		allocatedIndices: remaining,
		hasProvisional:   true,
		provisionalIndex: index,
	}
	if persistenceStoreHeader(m.storage, h, m.logger) != storage.StatusSuccess {
		m.logger.Error("failed to store header for delete", "index", index)
		return wire.ResultInternalError
	}
	return wire.ResultSuccess
}
