package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/nvram/persistence"
	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/storage/memstore"
	"github.com/outofforest/nvram/wire"
)

func TestHeaderRoundTrip(t *testing.T) {
	s := memstore.New()
	rec := wire.HeaderRecord{
		Version:          1,
		Flags:            1,
		AllocatedIndices: []uint32{2, 5},
		HasProvisional:   true,
		ProvisionalIndex: 5,
	}
	require.Equal(t, storage.StatusSuccess, persistence.StoreHeader(s, rec, nil))

	loaded, status, err := persistence.LoadHeader(s, nil)
	require.NoError(t, err)
	require.Equal(t, storage.StatusSuccess, status)
	require.Equal(t, rec, loaded)
}

func TestSpaceRoundTrip(t *testing.T) {
	s := memstore.New()
	rec := wire.SpaceRecord{
		Flags:              0,
		Controls:           1 << wire.ControlWriteExtend,
		AuthorizationValue: nil,
		Contents:           []byte("0123456789012345678901234567890x"),
	}
	require.Equal(t, storage.StatusSuccess, persistence.StoreSpace(s, 3, rec, nil))

	loaded, status, err := persistence.LoadSpace(s, 3, nil)
	require.NoError(t, err)
	require.Equal(t, storage.StatusSuccess, status)
	require.Equal(t, rec, loaded)
}

func TestLoadHeaderNotFound(t *testing.T) {
	s := memstore.New()
	_, status, err := persistence.LoadHeader(s, nil)
	require.NoError(t, err)
	require.Equal(t, storage.StatusNotFound, status)
}

// TestTrailingPaddingTolerated covers the case of a slot whose blob carries
// extra bytes appended after the true record, e.g. left over from an earlier,
// larger-capacity store into the same slot.
func TestTrailingPaddingTolerated(t *testing.T) {
	s := memstore.New()
	rec := wire.HeaderRecord{Version: 1, AllocatedIndices: []uint32{1}}
	require.Equal(t, storage.StatusSuccess, persistence.StoreHeader(s, rec, nil))

	raw, status := s.LoadHeader()
	require.Equal(t, storage.StatusSuccess, status)
	padded := append(append([]byte(nil), raw...), make([]byte, 10)...)
	require.Equal(t, storage.StatusSuccess, s.StoreHeader(padded))

	loaded, status, err := persistence.LoadHeader(s, nil)
	require.NoError(t, err)
	require.Equal(t, storage.StatusSuccess, status)
	require.Equal(t, rec, loaded)
}

func TestCorruptedChecksumIsStorageError(t *testing.T) {
	s := memstore.New()
	require.Equal(t, storage.StatusSuccess, persistence.StoreHeader(s, wire.HeaderRecord{Version: 1}, nil))

	raw, _ := s.LoadHeader()
	corrupted := append([]byte(nil), raw...)
	corrupted[len(corrupted)-1] ^= 0xFF
	require.Equal(t, storage.StatusSuccess, s.StoreHeader(corrupted))

	_, status, err := persistence.LoadHeader(s, nil)
	require.Error(t, err)
	require.Equal(t, storage.StatusStorageError, status)
}

func TestDeleteSpace(t *testing.T) {
	s := memstore.New()
	require.Equal(t, storage.StatusSuccess, persistence.StoreSpace(s, 1, wire.SpaceRecord{Contents: []byte("x")}, nil))
	require.Equal(t, storage.StatusSuccess, persistence.DeleteSpace(s, 1, nil))

	_, status, err := persistence.LoadSpace(s, 1, nil)
	require.NoError(t, err)
	require.Equal(t, storage.StatusNotFound, status)
}
