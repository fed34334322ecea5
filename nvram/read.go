package nvram

import "github.com/outofforest/nvram/wire"

// readSpace implements spec.md §4.7.
func (m *Manager) readSpace(req wire.ReadSpaceRequest) wire.Response {
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

	return wire.Response{
		Result:  wire.ResultSuccess,
		Payload: wire.ReadSpaceResponse{Buffer: append([]byte(nil), record.persistent.contents...)},
	}
}
