package nvram

import "github.com/outofforest/nvram/wire"

// getInfo implements spec.md §4.5. No access check.
func (m *Manager) getInfo(_ wire.GetInfoRequest) wire.Response {
	if !m.Initialize() {
		return wire.Response{Result: wire.ResultInternalError}
	}

	spaceList := make([]uint32, len(m.spaces))
	for i, entry := range m.spaces {
		spaceList[i] = entry.index
	}

	return wire.Response{
		Result: wire.ResultSuccess,
		Payload: wire.GetInfoResponse{
			TotalSize:     uint64(MaxSpaceSize * MaxSpaces),
			AvailableSize: uint64(MaxSpaceSize * (MaxSpaces - len(m.spaces))),
			MaxSpaces:     MaxSpaces,
			SpaceList:     spaceList,
		},
	}
}
