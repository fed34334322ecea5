package nvram

import (
	"crypto/sha256"

	"github.com/outofforest/nvram/wire"
)

// writeSpace implements spec.md §4.8. The header is never rewritten for
// writes: membership is unchanged, and a torn write leaves the space in an
// indeterminate but still-membership-correct state.
func (m *Manager) writeSpace(req wire.WriteSpaceRequest) wire.Response {
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

	newContents, invalidResult := computeNewContents(record.persistent, req.Buffer)
	if invalidResult != wire.ResultSuccess {
		return wire.Response{Result: invalidResult}
	}

	record.persistent.contents = newContents
	if writeResult := m.writeSpaceRecord(req.Index, record.persistent); writeResult != wire.ResultSuccess {
		return wire.Response{Result: writeResult}
	}

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.WriteSpaceResponse{}}
}

// computeNewContents implements the two write modes of spec.md §4.8.
func computeNewContents(sp space, buffer []byte) ([]byte, wire.Result) {
	if sp.hasControl(wire.ControlWriteExtend) {
		if len(sp.contents) != hashSize || len(buffer) != hashSize {
			return nil, wire.ResultInvalidParameter
		}
		digest := sha256.Sum256(append(append([]byte(nil), sp.contents...), buffer...))
		return digest[:], wire.ResultSuccess
	}

	fixedLen := len(sp.contents)
	if len(buffer) > fixedLen {
		return nil, wire.ResultInvalidParameter
	}
	padded := make([]byte, fixedLen)
	copy(padded, buffer)
	return padded, wire.ResultSuccess
}
