package nvram

import "github.com/outofforest/nvram/wire"

// disableCreateHandler implements spec.md §4.11.
func (m *Manager) disableCreateHandler(_ wire.DisableCreateRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	m.disableCreate = true
	if result := m.writeHeader(noProvisional()); result != wire.ResultSuccess {
		return wire.Response{Result: result}
	}

	return wire.Response{Result: wire.ResultSuccess, Payload: wire.DisableCreateResponse{}}
}
