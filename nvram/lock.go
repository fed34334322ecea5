package nvram

import "github.com/outofforest/nvram/wire"

// lockSpaceWrite implements spec.md §4.9.
func (m *Manager) lockSpaceWrite(req wire.LockSpaceWriteRequest) wire.Response {
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

	switch {
	case record.persistent.hasControl(wire.ControlPersistentWriteLock):
		record.persistent.setFlag(flagWriteLocked)
		if writeResult := m.writeSpaceRecord(req.Index, record.persistent); writeResult != wire.ResultSuccess {
			return wire.Response{Result: writeResult}
		}
	case record.persistent.hasControl(wire.ControlBootWriteLock):
		record.transient.writeLocked = true
	default:
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.LockSpaceWriteResponse{}}
}

// lockSpaceRead implements spec.md §4.9. There is no persistent read lock.
func (m *Manager) lockSpaceRead(req wire.LockSpaceReadRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	record, result := m.loadSpaceRecord(req.Index)
	if result != wire.ResultSuccess {
		return wire.Response{Result: result}
	}

	if accessResult := m.checkReadAccess(record, req.AuthorizationValue); accessResult != wire.ResultSuccess {
		return wire.Response{Result: accessResult}
	}

	if !record.persistent.hasControl(wire.ControlBootReadLock) {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}
	record.transient.readLocked = true

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.LockSpaceReadResponse{}}
}
