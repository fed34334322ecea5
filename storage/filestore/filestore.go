// Package filestore implements storage.Storage as one regular file per slot
// in a directory, grounded on the teacher's pkg/filedev wrapping of os.File
// with github.com/pkg/errors stack-preserving error wrapping.
package filestore

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/outofforest/nvram/storage"
)

const (
	headerFileName = "header.bin"
	lockFileName   = "lockid"
)

// Store is a directory-backed implementation of storage.Storage. Each slot
// store is written to a temporary file and then renamed into place, so a
// single slot's store is atomic against a crash mid-write.
type Store struct {
	dir string
	id  uuid.UUID
}

// Open opens (creating if necessary) a file-backed store rooted at dir. On
// first open it stamps a random store identity into a lock file; later opens
// read that identity back (see ID). The identity is not compared against
// anything, and Open does not prevent two processes from using the same
// directory at once.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.WithStack(err)
	}

	lockPath := filepath.Join(dir, lockFileName)
	existing, err := os.ReadFile(lockPath) //nolint:gosec // path constructed from caller-supplied dir
	switch {
	case err == nil:
		id, parseErr := uuid.Parse(string(existing))
		if parseErr != nil {
			return nil, errors.Wrap(parseErr, "lock file does not contain a valid store id")
		}
		return &Store{dir: dir, id: id}, nil
	case os.IsNotExist(err):
		id := uuid.New()
		if err := os.WriteFile(lockPath, []byte(id.String()), 0o600); err != nil {
			return nil, errors.WithStack(err)
		}
		return &Store{dir: dir, id: id}, nil
	default:
		return nil, errors.WithStack(err)
	}
}

// ID returns the random identity stamped into this store's lock file.
func (s *Store) ID() uuid.UUID {
	return s.id
}

func (s *Store) spacePath(index uint32) string {
	return filepath.Join(s.dir, "space-"+hex.EncodeToString(encodeIndex(index))+".bin")
}

func encodeIndex(index uint32) []byte {
	return []byte{byte(index >> 24), byte(index >> 16), byte(index >> 8), byte(index)}
}

func (s *Store) headerPath() string {
	return filepath.Join(s.dir, headerFileName)
}

func loadFile(path string) ([]byte, storage.Status) {
	data, err := os.ReadFile(path) //nolint:gosec // path constructed internally
	switch {
	case err == nil:
		return data, storage.StatusSuccess
	case os.IsNotExist(err):
		return nil, storage.StatusNotFound
	default:
		return nil, storage.StatusStorageError
	}
}

// storeFile writes blob to path atomically: write to a temp file in the same
// directory, fsync it, then rename over the destination.
func storeFile(path string, blob []byte) storage.Status {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return storage.StatusStorageError
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // best effort cleanup if rename fails below

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close() //nolint:errcheck
		return storage.StatusStorageError
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return storage.StatusStorageError
	}
	if err := tmp.Close(); err != nil {
		return storage.StatusStorageError
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return storage.StatusStorageError
	}
	return storage.StatusSuccess
}

func deleteFile(path string) storage.Status {
	err := os.Remove(path)
	switch {
	case err == nil:
		return storage.StatusSuccess
	case os.IsNotExist(err):
		return storage.StatusNotFound
	default:
		return storage.StatusStorageError
	}
}

// LoadHeader implements storage.Storage.
func (s *Store) LoadHeader() ([]byte, storage.Status) {
	return loadFile(s.headerPath())
}

// StoreHeader implements storage.Storage.
func (s *Store) StoreHeader(blob []byte) storage.Status {
	return storeFile(s.headerPath(), blob)
}

// LoadSpace implements storage.Storage.
func (s *Store) LoadSpace(index uint32) ([]byte, storage.Status) {
	return loadFile(s.spacePath(index))
}

// StoreSpace implements storage.Storage.
func (s *Store) StoreSpace(index uint32, blob []byte) storage.Status {
	return storeFile(s.spacePath(index), blob)
}

// DeleteSpace implements storage.Storage.
func (s *Store) DeleteSpace(index uint32) storage.Status {
	return deleteFile(s.spacePath(index))
}
