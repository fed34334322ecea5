package nvram

import "github.com/outofforest/nvram/wire"

// getSpaceInfo implements spec.md §4.6. No access check.
func (m *Manager) getSpaceInfo(req wire.GetSpaceInfoRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	record, result := m.loadSpaceRecord(req.Index)
	if result != wire.ResultSuccess {
		return wire.Response{Result: result}
	}

	return wire.Response{
		Result: wire.ResultSuccess,
		Payload: wire.GetSpaceInfoResponse{
			Size:        uint64(len(record.persistent.contents)),
			Controls:    controlsList(record.persistent.controls),
			ReadLocked:  m.isReadLocked(record),
			WriteLocked: m.isWriteLocked(record),
		},
	}
}

// isReadLocked implements the read-lock rule of spec.md §4.6: true iff
// BOOT_READ_LOCK is set AND the transient read_locked flag is true.
func (m *Manager) isReadLocked(record *spaceRecord) bool {
	return record.persistent.hasControl(wire.ControlBootReadLock) && record.transient.readLocked
}

// isWriteLocked implements the write-lock rule of spec.md §4.6.
func (m *Manager) isWriteLocked(record *spaceRecord) bool {
	switch {
	case record.persistent.hasControl(wire.ControlPersistentWriteLock):
		return record.persistent.hasFlag(flagWriteLocked)
	case record.persistent.hasControl(wire.ControlBootWriteLock):
		return record.transient.writeLocked
	default:
		return false
	}
}

func controlsList(controls uint32) []wire.Control {
	var out []wire.Control
	for bit := wire.Control(0); bit < 32; bit++ {
		if controls&(uint32(1)<<bit) != 0 {
			out = append(out, bit)
		}
	}
	return out
}
