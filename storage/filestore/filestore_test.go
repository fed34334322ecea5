package filestore_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/storage/filestore"
)

func TestStoreAndLoadHeader(t *testing.T) {
	dir := t.TempDir()
	s, err := filestore.Open(dir)
	require.NoError(t, err)

	require.Equal(t, storage.StatusSuccess, s.StoreHeader([]byte("header-bytes")))

	loaded, status := s.LoadHeader()
	require.Equal(t, storage.StatusSuccess, status)
	require.Equal(t, []byte("header-bytes"), loaded)
}

func TestLoadHeaderNotFound(t *testing.T) {
	dir := t.TempDir()
	s, err := filestore.Open(dir)
	require.NoError(t, err)

	_, status := s.LoadHeader()
	require.Equal(t, storage.StatusNotFound, status)
}

func TestSpaceStoreLoadDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := filestore.Open(dir)
	require.NoError(t, err)

	require.Equal(t, storage.StatusSuccess, s.StoreSpace(7, []byte("space-bytes")))

	loaded, status := s.LoadSpace(7)
	require.Equal(t, storage.StatusSuccess, status)
	require.Equal(t, []byte("space-bytes"), loaded)

	require.Equal(t, storage.StatusSuccess, s.DeleteSpace(7))

	_, status = s.LoadSpace(7)
	require.Equal(t, storage.StatusNotFound, status)
}

func TestDeleteSpaceNotFound(t *testing.T) {
	dir := t.TempDir()
	s, err := filestore.Open(dir)
	require.NoError(t, err)

	status := s.DeleteSpace(1)
	require.Equal(t, storage.StatusNotFound, status)
}

// TestOpenReopensSameIdentity checks that re-opening a directory recovers the
// same stamped store identity instead of minting a new one.
func TestOpenReopensSameIdentity(t *testing.T) {
	dir := t.TempDir()
	s1, err := filestore.Open(dir)
	require.NoError(t, err)

	s2, err := filestore.Open(dir)
	require.NoError(t, err)

	require.Equal(t, s1.ID(), s2.ID())
}

// TestStoreLeavesNoTempFiles checks that the atomic write helper does not
// leak its staging file into the store directory on the success path.
func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := filestore.Open(dir)
	require.NoError(t, err)

	require.Equal(t, storage.StatusSuccess, s.StoreHeader([]byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "leaked temp file: %s", e.Name())
	}
}
