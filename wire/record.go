package wire

import (
	"github.com/pkg/errors"
)

// RecordTag discriminates the two kinds of record persisted to storage. The
// tag space is disjoint from Command so that a header blob can never decode
// successfully as a space record or vice versa.
type RecordTag uint8

// Record tags.
const (
	RecordTagHeader RecordTag = 200
	RecordTagSpace  RecordTag = 201
)

// HeaderRecord is the on-disk representation of NvramHeader.
type HeaderRecord struct {
	Version            uint32
	Flags              uint32
	AllocatedIndices   []uint32
	HasProvisional     bool
	ProvisionalIndex   uint32
}

// SpaceRecord is the on-disk representation of NvramSpace.
type SpaceRecord struct {
	Flags              uint32
	Controls           uint32
	AuthorizationValue []byte
	Contents           []byte
}

// EncodeHeaderRecord encodes a header record for storage.
func EncodeHeaderRecord(h HeaderRecord) []byte {
	e := &encoder{}
	e.byte(byte(RecordTagHeader))
	e.uint32(h.Version)
	e.uint32(h.Flags)
	e.uint32Vector(h.AllocatedIndices)
	e.bool(h.HasProvisional)
	e.uint32(h.ProvisionalIndex)
	return e.buf
}

// DecodeHeaderRecord decodes a header record. It returns an error if the
// leading tag does not identify a header record, which the persistence layer
// surfaces as a storage error (record-type mismatch).
func DecodeHeaderRecord(data []byte) (HeaderRecord, error) {
	d := &decoder{buf: data}
	tag, err := d.byte()
	if err != nil {
		return HeaderRecord{}, err
	}
	if RecordTag(tag) != RecordTagHeader {
		return HeaderRecord{}, errors.Errorf("record tag mismatch: expected header (%d), got %d", RecordTagHeader, tag)
	}
	var h HeaderRecord
	if h.Version, err = d.uint32(); err != nil {
		return HeaderRecord{}, err
	}
	if h.Flags, err = d.uint32(); err != nil {
		return HeaderRecord{}, err
	}
	if h.AllocatedIndices, err = d.uint32Vector(); err != nil {
		return HeaderRecord{}, err
	}
	if h.HasProvisional, err = d.boolean(); err != nil {
		return HeaderRecord{}, err
	}
	if h.ProvisionalIndex, err = d.uint32(); err != nil {
		return HeaderRecord{}, err
	}
	return h, nil
}

// EncodeSpaceRecord encodes a space record for storage.
func EncodeSpaceRecord(s SpaceRecord) []byte {
	e := &encoder{}
	e.byte(byte(RecordTagSpace))
	e.uint32(s.Flags)
	e.uint32(s.Controls)
	e.blob(s.AuthorizationValue)
	e.blob(s.Contents)
	return e.buf
}

// DecodeSpaceRecord decodes a space record. It returns an error if the
// leading tag does not identify a space record.
func DecodeSpaceRecord(data []byte) (SpaceRecord, error) {
	d := &decoder{buf: data}
	tag, err := d.byte()
	if err != nil {
		return SpaceRecord{}, err
	}
	if RecordTag(tag) != RecordTagSpace {
		return SpaceRecord{}, errors.Errorf("record tag mismatch: expected space (%d), got %d", RecordTagSpace, tag)
	}
	var s SpaceRecord
	if s.Flags, err = d.uint32(); err != nil {
		return SpaceRecord{}, err
	}
	if s.Controls, err = d.uint32(); err != nil {
		return SpaceRecord{}, err
	}
	if s.AuthorizationValue, err = d.blob(); err != nil {
		return SpaceRecord{}, err
	}
	if s.Contents, err = d.blob(); err != nil {
		return SpaceRecord{}, err
	}
	return s, nil
}
