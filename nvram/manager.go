package nvram

import (
	"log/slog"

	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

// Manager implements the core functionality of the access-controlled NVRAM
// backend. It keeps track of allocated spaces and their transient state,
// and dispatches requests to the appropriate handler. Manager assumes
// exactly one outstanding Dispatch call at a time (spec.md §5) — it holds
// no internal lock, and callers are responsible for serializing access.
type Manager struct {
	storage storage.Storage
	logger  *slog.Logger

	initialized   bool
	disableCreate bool

	spaces []spaceListEntry
}

// New returns a Manager backed by s. Initialize() runs lazily on first use.
func New(s storage.Storage, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		storage: s,
		logger:  logger,
	}
}

// Dispatch routes req to its handler and returns the matching response. Each
// handler first calls Initialize(); on failure the result is
// ResultInternalError with no payload set, per spec.md §4.1.
func (m *Manager) Dispatch(req wire.Request) wire.Response {
	if req.Payload == nil {
		return wire.Response{Result: wire.ResultInvalidParameter}
	}

	m.logger.Debug("nvram: dispatch", "command", req.Payload.Command())

	switch p := req.Payload.(type) {
	case wire.GetInfoRequest:
		return m.getInfo(p)
	case wire.CreateSpaceRequest:
		return m.createSpace(p)
	case wire.GetSpaceInfoRequest:
		return m.getSpaceInfo(p)
	case wire.DeleteSpaceRequest:
		return m.deleteSpace(p)
	case wire.DisableCreateRequest:
		return m.disableCreateHandler(p)
	case wire.WriteSpaceRequest:
		return m.writeSpace(p)
	case wire.ReadSpaceRequest:
		return m.readSpace(p)
	case wire.LockSpaceWriteRequest:
		return m.lockSpaceWrite(p)
	case wire.LockSpaceReadRequest:
		return m.lockSpaceRead(p)
	default:
		m.logger.Error("dispatch received unknown request payload", "type", req.Payload)
		return wire.Response{Result: wire.ResultInvalidParameter}
	}
}

func (m *Manager) findSpace(index uint32) int {
	for i := range m.spaces {
		if m.spaces[i].index == index {
			return i
		}
	}
	return -1
}

// loadSpaceRecord resolves index to its transient bookkeeping entry and
// loads its persistent record from storage. It returns ResultSpaceDoesNotExist
// if index is not allocated, and ResultInternalError if the index is
// allocated but its persistent record cannot be loaded or decoded — a
// noisy-failure policy that keeps the index allocated rather than risk a
// silent reuse clobbering extant data (spec.md §7).
func (m *Manager) loadSpaceRecord(index uint32) (*spaceRecord, wire.Result) {
	arrayIndex := m.findSpace(index)
	if arrayIndex == -1 {
		return nil, wire.ResultSpaceDoesNotExist
	}

	sp, status, err := persistenceLoadSpace(m.storage, index, m.logger)
	switch status {
	case storage.StatusSuccess:
		return &spaceRecord{
			arrayIndex: arrayIndex,
			transient:  &m.spaces[arrayIndex],
			persistent: sp,
		}, wire.ResultSuccess
	case storage.StatusNotFound:
		m.logger.Error("space present in header but missing from storage", "index", index)
		return nil, wire.ResultInternalError
	default:
		m.logger.Error("failed to load space", "index", index, "error", err)
		return nil, wire.ResultInternalError
	}
}
