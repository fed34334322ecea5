package nvram

import (
	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

// provisional is an explicit optional index, matching spec.md §9's guidance
// to model NvramHeader.provisional_index as a tagged variant rather than a
// sentinel value.
type provisional struct {
	valid bool
	index uint32
}

func noProvisional() provisional { return provisional{} }

func withProvisional(index uint32) provisional { return provisional{valid: true, index: index} }

// writeHeader persists the current in-memory membership and disable_create_
// state, with the given provisional marker.
func (m *Manager) writeHeader(p provisional) wire.Result {
	h := header{
		flags:            m.headerFlags(),
		allocatedIndices: m.allocatedIndicesSnapshot(),
		hasProvisional:   p.valid,
		provisionalIndex: p.index,
	}
	if persistenceStoreHeader(m.storage, h, m.logger) != storage.StatusSuccess {
		m.logger.Error("failed to store header")
		return wire.ResultInternalError
	}
	return wire.ResultSuccess
}

func (m *Manager) headerFlags() uint32 {
	if m.disableCreate {
		return flagDisableCreate
	}
	return 0
}
