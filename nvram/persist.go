package nvram

import (
	"log/slog"

	"github.com/outofforest/nvram/persistence"
	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

func persistenceLoadHeader(s storage.Storage, logger *slog.Logger) (header, storage.Status, error) {
	rec, status, err := persistence.LoadHeader(s, logger)
	if status != storage.StatusSuccess {
		return header{}, status, err
	}
	return header{
		version:          rec.Version,
		flags:            rec.Flags,
		allocatedIndices: rec.AllocatedIndices,
		hasProvisional:   rec.HasProvisional,
		provisionalIndex: rec.ProvisionalIndex,
	}, status, nil
}

func persistenceStoreHeader(s storage.Storage, h header, logger *slog.Logger) storage.Status {
	return persistence.StoreHeader(s, wire.HeaderRecord{
		Version:          kVersion,
		Flags:            h.flags,
		AllocatedIndices: h.allocatedIndices,
		HasProvisional:   h.hasProvisional,
		ProvisionalIndex: h.provisionalIndex,
	}, logger)
}

func persistenceLoadSpace(s storage.Storage, index uint32, logger *slog.Logger) (space, storage.Status, error) {
	rec, status, err := persistence.LoadSpace(s, index, logger)
	if status != storage.StatusSuccess {
		return space{}, status, err
	}
	return space{
		flags:              rec.Flags,
		controls:           rec.Controls,
		authorizationValue: rec.AuthorizationValue,
		contents:           rec.Contents,
	}, status, nil
}

func persistenceStoreSpace(s storage.Storage, index uint32, sp space, logger *slog.Logger) storage.Status {
	return persistence.StoreSpace(s, index, wire.SpaceRecord{
		Flags:              sp.flags,
		Controls:           sp.controls,
		AuthorizationValue: sp.authorizationValue,
		Contents:           sp.contents,
	}, logger)
}

func persistenceDeleteSpace(s storage.Storage, index uint32, logger *slog.Logger) storage.Status {
	return persistence.DeleteSpace(s, index, logger)
}
