package nvram

import (
	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

// createSpace implements spec.md §4.3. Validation order is load-bearing for
// externally visible error codes and must match the listing exactly.
func (m *Manager) createSpace(req wire.CreateSpaceRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	if m.disableCreate {
		return wire.Response{Result: wire.ResultOperationDisabled}
	}

	if m.findSpace(req.Index) != -1 {
		return wire.Response{Result: wire.ResultSpaceAlreadyExists}
	}

	if len(m.spaces)+1 > MaxSpaces {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	if req.Size > MaxSpaceSize {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	if len(req.AuthorizationValue) > MaxAuthSize {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	var controls uint32
	for _, c := range req.Controls {
		controls |= uint32(1) << c
	}
	if controls&^wire.SupportedControlsMask != 0 {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}
	if controls&(uint32(1)<<wire.ControlPersistentWriteLock) != 0 &&
		controls&(uint32(1)<<wire.ControlBootWriteLock) != 0 {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	// Tentatively mark the index as allocated.
	m.spaces = append(m.spaces, spaceListEntry{index: req.Index})

	sp := space{
		controls: controls,
		contents: make([]byte, req.Size),
	}
	if sp.hasControl(wire.ControlWriteAuthorization) || sp.hasControl(wire.ControlReadAuthorization) {
		sp.authorizationValue = append([]byte(nil), req.AuthorizationValue...)
	}

	result := m.writeHeader(withProvisional(req.Index))
	if result == wire.ResultSuccess {
		result = m.writeSpaceRecord(req.Index, sp)
	}
	if result != wire.ResultSuccess {
		// Roll back the in-memory append. The header, if it was written,
		// still lists the index as provisional; the next Initialize call
		// will reconcile storage against it.
		m.spaces = m.spaces[:len(m.spaces)-1]
		return wire.Response{Result: result}
	}

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.CreateSpaceResponse{}}
}

func (m *Manager) writeSpaceRecord(index uint32, sp space) wire.Result {
	if persistenceStoreSpace(m.storage, index, sp, m.logger) != storage.StatusSuccess {
		m.logger.Error("failed to store space", "index", index)
		return wire.ResultInternalError
	}
	return wire.ResultSuccess
}
