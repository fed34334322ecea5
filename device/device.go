// Package device implements the thin, not-specified-in-detail shim that
// translates external hardware-device-style calls into nvram wire requests
// and back (spec.md §1, §4.12). It performs no policy logic of its own.
package device

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/outofforest/nvram/nvram"
	"github.com/outofforest/nvram/wire"
)

// Adapter exposes one method per HAL-style call, each a pure translation to
// and from nvram.Manager.Dispatch. It logs an entry line per call, mirroring
// the NVRAM_LOG_INFO call sites at the top of every handler.
type Adapter struct {
	manager *nvram.Manager
	logger  *slog.Logger
}

// New wraps manager. A nil logger falls back to slog.Default(), matching
// nvram.New's nil-tolerant logger construction.
func New(manager *nvram.Manager, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{manager: manager, logger: logger}
}

func resultError(result wire.Result) error {
	if result == wire.ResultSuccess {
		return nil
	}
	return errors.Errorf("nvram operation failed: %s", result)
}

// GetInfo reports aggregate space usage.
func (a *Adapter) GetInfo() (wire.GetInfoResponse, error) {
	a.logger.Info("device: get info")
	resp := a.manager.Dispatch(wire.Request{Payload: wire.GetInfoRequest{}})
	if err := resultError(resp.Result); err != nil {
		return wire.GetInfoResponse{}, err
	}
	info, _ := resp.Payload.(wire.GetInfoResponse)
	return info, nil
}

// CreateSpace creates a new space.
func (a *Adapter) CreateSpace(index uint32, size uint64, controls []wire.Control, auth []byte) error {
	a.logger.Info("device: create space", "index", index, "size", size)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.CreateSpaceRequest{
		Index:              index,
		Size:               size,
		Controls:           controls,
		AuthorizationValue: auth,
	}})
	return resultError(resp.Result)
}

// GetSpaceInfo queries a single space's metadata.
func (a *Adapter) GetSpaceInfo(index uint32) (wire.GetSpaceInfoResponse, error) {
	a.logger.Debug("device: get space info", "index", index)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.GetSpaceInfoRequest{Index: index}})
	if err := resultError(resp.Result); err != nil {
		return wire.GetSpaceInfoResponse{}, err
	}
	info, _ := resp.Payload.(wire.GetSpaceInfoResponse)
	return info, nil
}

// DeleteSpace deletes a space.
func (a *Adapter) DeleteSpace(index uint32, auth []byte) error {
	a.logger.Info("device: delete space", "index", index)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.DeleteSpaceRequest{
		Index:              index,
		AuthorizationValue: auth,
	}})
	return resultError(resp.Result)
}

// DisableCreate globally disables further CreateSpace calls.
func (a *Adapter) DisableCreate() error {
	a.logger.Info("device: disable create")
	resp := a.manager.Dispatch(wire.Request{Payload: wire.DisableCreateRequest{}})
	return resultError(resp.Result)
}

// WriteSpace writes (or extends) a space's contents.
func (a *Adapter) WriteSpace(index uint32, buffer, auth []byte) error {
	a.logger.Info("device: write space", "index", index, "len", len(buffer))
	resp := a.manager.Dispatch(wire.Request{Payload: wire.WriteSpaceRequest{
		Index:              index,
		Buffer:             buffer,
		AuthorizationValue: auth,
	}})
	return resultError(resp.Result)
}

// ReadSpace reads a space's contents.
func (a *Adapter) ReadSpace(index uint32, auth []byte) ([]byte, error) {
	a.logger.Debug("device: read space", "index", index)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.ReadSpaceRequest{
		Index:              index,
		AuthorizationValue: auth,
	}})
	if err := resultError(resp.Result); err != nil {
		return nil, err
	}
	read, _ := resp.Payload.(wire.ReadSpaceResponse)
	return read.Buffer, nil
}

// LockSpaceWrite sets a write lock on a space.
func (a *Adapter) LockSpaceWrite(index uint32, auth []byte) error {
	a.logger.Info("device: lock space write", "index", index)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.LockSpaceWriteRequest{
		Index:              index,
		AuthorizationValue: auth,
	}})
	return resultError(resp.Result)
}

// LockSpaceRead sets a read lock on a space.
func (a *Adapter) LockSpaceRead(index uint32, auth []byte) error {
	a.logger.Info("device: lock space read", "index", index)
	resp := a.manager.Dispatch(wire.Request{Payload: wire.LockSpaceReadRequest{
		Index:              index,
		AuthorizationValue: auth,
	}})
	return resultError(resp.Result)
}
