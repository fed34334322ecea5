// Package persistence provides typed load/store operations for the header
// and per-space records the NVRAM manager persists, built on top of the
// abstract storage.Storage slot interface and the wire codec. It is
// responsible for framing each record with an integrity checksum and for
// turning a decoding or checksum failure into the same storage.StatusStorageError
// outcome a torn write would produce, per spec.md §5: "a partially written
// slot reads as either the old value or a decoding failure, which is treated
// as StorageError".
package persistence

import (
	"crypto/sha256"
	"log/slog"

	"github.com/outofforest/photon"
	"github.com/pkg/errors"

	"github.com/outofforest/nvram/storage"
	"github.com/outofforest/nvram/wire"
)

// log returns logger, defaulting to slog.Default() when nil, mirroring the
// nil-tolerant logger construction in nvram.New.
func log(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// checksumPreamble is the fixed-size leading portion of every persisted
// frame: a checksum over the payload plus the payload's exact length. It is
// accessed through photon's zero-copy struct casting rather than manual
// offset arithmetic, matching the teacher's own framing of its singularity
// block checksum. The explicit length lets unframe locate the true end of
// the payload even when the stored blob has trailing padding appended by an
// earlier, larger-capacity store (spec.md §6.2).
type checksumPreamble struct {
	Checksum [sha256.Size]byte
	Length   uint32
}

const preambleSize = sha256.Size + 4 // len(checksumPreamble{}) once packed; verified by init below.

func init() {
	if sz := photon.NewFromValue(&checksumPreamble{}).B; len(sz) != preambleSize {
		panic("checksumPreamble size assumption violated")
	}
}

func checksum(payload []byte) [sha256.Size]byte {
	return sha256.Sum256(payload)
}

func frame(payload []byte) []byte {
	pre := photon.NewFromValue(&checksumPreamble{
		Checksum: checksum(payload),
		Length:   uint32(len(payload)),
	})
	out := make([]byte, 0, len(pre.B)+len(payload))
	out = append(out, pre.B...)
	out = append(out, payload...)
	return out
}

// unframe splits a stored blob into its payload, verifying the leading
// checksum and tolerating any trailing bytes beyond the recorded length. An
// error return always corresponds to a StatusStorageError from the caller's
// point of view.
func unframe(blob []byte) ([]byte, error) {
	if len(blob) < preambleSize {
		return nil, errors.Errorf("record too short: %d bytes", len(blob))
	}
	pre := photon.NewFromBytes[checksumPreamble](blob[:preambleSize])
	rest := blob[preambleSize:]
	if uint64(pre.V.Length) > uint64(len(rest)) {
		return nil, errors.Errorf("record length %d exceeds available %d bytes", pre.V.Length, len(rest))
	}
	payload := rest[:pre.V.Length]
	if got := checksum(payload); got != pre.V.Checksum {
		return nil, errors.Errorf("checksum mismatch: stored %x, computed %x", pre.V.Checksum, got)
	}
	return payload, nil
}

// LoadHeader loads and decodes the header record.
func LoadHeader(s storage.Storage, logger *slog.Logger) (wire.HeaderRecord, storage.Status, error) {
	l := log(logger)
	l.Debug("persistence: loading header")
	blob, status := s.LoadHeader()
	if status != storage.StatusSuccess {
		return wire.HeaderRecord{}, status, nil
	}
	payload, err := unframe(blob)
	if err != nil {
		l.Error("persistence: unframe header record failed", "error", err)
		return wire.HeaderRecord{}, storage.StatusStorageError, errors.Wrap(err, "unframe header record")
	}
	h, err := wire.DecodeHeaderRecord(payload)
	if err != nil {
		l.Error("persistence: decode header record failed", "error", err)
		return wire.HeaderRecord{}, storage.StatusStorageError, errors.Wrap(err, "decode header record")
	}
	return h, storage.StatusSuccess, nil
}

// StoreHeader encodes and stores the header record.
func StoreHeader(s storage.Storage, h wire.HeaderRecord, logger *slog.Logger) storage.Status {
	l := log(logger)
	l.Debug("persistence: storing header")
	status := s.StoreHeader(frame(wire.EncodeHeaderRecord(h)))
	if status != storage.StatusSuccess {
		l.Error("persistence: store header failed", "status", status)
	}
	return status
}

// LoadSpace loads and decodes the space record at index.
func LoadSpace(s storage.Storage, index uint32, logger *slog.Logger) (wire.SpaceRecord, storage.Status, error) {
	l := log(logger)
	l.Debug("persistence: loading space", "index", index)
	blob, status := s.LoadSpace(index)
	if status != storage.StatusSuccess {
		return wire.SpaceRecord{}, status, nil
	}
	payload, err := unframe(blob)
	if err != nil {
		l.Error("persistence: unframe space record failed", "index", index, "error", err)
		return wire.SpaceRecord{}, storage.StatusStorageError, errors.Wrap(err, "unframe space record")
	}
	sp, err := wire.DecodeSpaceRecord(payload)
	if err != nil {
		l.Error("persistence: decode space record failed", "index", index, "error", err)
		return wire.SpaceRecord{}, storage.StatusStorageError, errors.Wrap(err, "decode space record")
	}
	return sp, storage.StatusSuccess, nil
}

// StoreSpace encodes and stores the space record at index.
func StoreSpace(s storage.Storage, index uint32, sp wire.SpaceRecord, logger *slog.Logger) storage.Status {
	l := log(logger)
	l.Debug("persistence: storing space", "index", index)
	status := s.StoreSpace(index, frame(wire.EncodeSpaceRecord(sp)))
	if status != storage.StatusSuccess {
		l.Error("persistence: store space failed", "index", index, "status", status)
	}
	return status
}

// DeleteSpace deletes the space record at index.
func DeleteSpace(s storage.Storage, index uint32, logger *slog.Logger) storage.Status {
	l := log(logger)
	l.Debug("persistence: deleting space", "index", index)
	status := s.DeleteSpace(index)
	if status != storage.StatusSuccess {
		l.Error("persistence: delete space failed", "index", index, "status", status)
	}
	return status
}
