package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// encoder accumulates a byte-level encoding of a message. Fields are written
// in a fixed order per command; there is no explicit per-field tag, matching
// the teacher's own "raw bytes plus checksum" persistence style rather than a
// self-describing marshalling format.
type encoder struct {
	buf []byte
}

func (e *encoder) byte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *encoder) bool(v bool) {
	if v {
		e.byte(1)
	} else {
		e.byte(0)
	}
}

func (e *encoder) uint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
}

func (e *encoder) uint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
}

func (e *encoder) blob(b []byte) {
	e.uint32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *encoder) uint32Vector(v []uint32) {
	e.uint32(uint32(len(v)))
	for _, x := range v {
		e.uint32(x)
	}
}

func (e *encoder) controlVector(v []Control) {
	e.uint32(uint32(len(v)))
	for _, x := range v {
		e.byte(byte(x))
	}
}

// decoder consumes a byte-level encoding produced by encoder. It never fails
// due to trailing bytes left unread after the last field of a message has
// been consumed: the caller simply stops reading, which is how the codec
// tolerates padding appended by an earlier, larger-capacity store.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) need(n int) error {
	if d.pos+n > len(d.buf) {
		return errors.Errorf("truncated message: need %d bytes at offset %d, have %d", n, d.pos, len(d.buf))
	}
	return nil
}

func (d *decoder) byte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) boolean() (bool, error) {
	b, err := d.byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *decoder) uint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) uint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return v, nil
}

func (d *decoder) blob() ([]byte, error) {
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}
	if err := d.need(int(n)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	copy(b, d.buf[d.pos:d.pos+int(n)])
	d.pos += int(n)
	return b, nil
}

func (d *decoder) uint32Vector() ([]uint32, error) {
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}
	v := make([]uint32, n)
	for i := range v {
		x, err := d.uint32()
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}

func (d *decoder) controlVector() ([]Control, error) {
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}
	v := make([]Control, n)
	for i := range v {
		b, err := d.byte()
		if err != nil {
			return nil, err
		}
		v[i] = Control(b)
	}
	return v, nil
}

// EncodeRequest encodes req to its wire representation.
func EncodeRequest(req Request) ([]byte, error) {
	if req.Payload == nil {
		return nil, errors.New("request has no payload")
	}
	e := &encoder{}
	e.byte(byte(req.Payload.Command()))
	if err := encodeRequestPayload(e, req.Payload); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// DecodeRequest decodes a Request from data. Trailing bytes are ignored.
func DecodeRequest(data []byte) (Request, error) {
	d := &decoder{buf: data}
	tag, err := d.byte()
	if err != nil {
		return Request{}, err
	}
	payload, err := decodeRequestPayload(d, Command(tag))
	if err != nil {
		return Request{}, err
	}
	return Request{Payload: payload}, nil
}

// EncodeResponse encodes resp to its wire representation.
func EncodeResponse(resp Response) ([]byte, error) {
	e := &encoder{}
	if resp.Payload == nil {
		// Payload-less responses still need a command tag to round-trip;
		// the zero command value is never used by any handler and signals
		// "no payload" to DecodeResponse.
		e.byte(0)
		e.byte(byte(resp.Result))
		return e.buf, nil
	}
	e.byte(byte(resp.Payload.Command()))
	e.byte(byte(resp.Result))
	if err := encodeResponsePayload(e, resp.Payload); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// DecodeResponse decodes a Response from data. Trailing bytes are ignored.
func DecodeResponse(data []byte) (Response, error) {
	d := &decoder{buf: data}
	tag, err := d.byte()
	if err != nil {
		return Response{}, err
	}
	resultByte, err := d.byte()
	if err != nil {
		return Response{}, err
	}
	resp := Response{Result: Result(resultByte)}
	if tag == 0 {
		return resp, nil
	}
	payload, err := decodeResponsePayload(d, Command(tag))
	if err != nil {
		return Response{}, err
	}
	resp.Payload = payload
	return resp, nil
}

func encodeRequestPayload(e *encoder, payload RequestPayload) error {
	switch p := payload.(type) {
	case GetInfoRequest:
	case CreateSpaceRequest:
		e.uint32(p.Index)
		e.uint64(p.Size)
		e.controlVector(p.Controls)
		e.blob(p.AuthorizationValue)
	case GetSpaceInfoRequest:
		e.uint32(p.Index)
	case DeleteSpaceRequest:
		e.uint32(p.Index)
		e.blob(p.AuthorizationValue)
	case DisableCreateRequest:
	case WriteSpaceRequest:
		e.uint32(p.Index)
		e.blob(p.Buffer)
		e.blob(p.AuthorizationValue)
	case ReadSpaceRequest:
		e.uint32(p.Index)
		e.blob(p.AuthorizationValue)
	case LockSpaceWriteRequest:
		e.uint32(p.Index)
		e.blob(p.AuthorizationValue)
	case LockSpaceReadRequest:
		e.uint32(p.Index)
		e.blob(p.AuthorizationValue)
	default:
		return errors.Errorf("unknown request payload type %T", payload)
	}
	return nil
}

func decodeRequestPayload(d *decoder, cmd Command) (RequestPayload, error) {
	switch cmd {
	case CommandGetInfo:
		return GetInfoRequest{}, nil
	case CommandCreateSpace:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		size, err := d.uint64()
		if err != nil {
			return nil, err
		}
		controls, err := d.controlVector()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return CreateSpaceRequest{Index: index, Size: size, Controls: controls, AuthorizationValue: auth}, nil
	case CommandGetSpaceInfo:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		return GetSpaceInfoRequest{Index: index}, nil
	case CommandDeleteSpace:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return DeleteSpaceRequest{Index: index, AuthorizationValue: auth}, nil
	case CommandDisableCreate:
		return DisableCreateRequest{}, nil
	case CommandWriteSpace:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		buf, err := d.blob()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return WriteSpaceRequest{Index: index, Buffer: buf, AuthorizationValue: auth}, nil
	case CommandReadSpace:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return ReadSpaceRequest{Index: index, AuthorizationValue: auth}, nil
	case CommandLockSpaceWrite:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return LockSpaceWriteRequest{Index: index, AuthorizationValue: auth}, nil
	case CommandLockSpaceRead:
		index, err := d.uint32()
		if err != nil {
			return nil, err
		}
		auth, err := d.blob()
		if err != nil {
			return nil, err
		}
		return LockSpaceReadRequest{Index: index, AuthorizationValue: auth}, nil
	default:
		return nil, errors.Errorf("unknown request command tag %d", cmd)
	}
}

func encodeResponsePayload(e *encoder, payload ResponsePayload) error {
	switch p := payload.(type) {
	case GetInfoResponse:
		e.uint64(p.TotalSize)
		e.uint64(p.AvailableSize)
		e.uint32(p.MaxSpaces)
		e.uint32Vector(p.SpaceList)
	case CreateSpaceResponse:
	case GetSpaceInfoResponse:
		e.uint64(p.Size)
		e.controlVector(p.Controls)
		e.bool(p.ReadLocked)
		e.bool(p.WriteLocked)
	case DeleteSpaceResponse:
	case DisableCreateResponse:
	case WriteSpaceResponse:
	case ReadSpaceResponse:
		e.blob(p.Buffer)
	case LockSpaceWriteResponse:
	case LockSpaceReadResponse:
	default:
		return errors.Errorf("unknown response payload type %T", payload)
	}
	return nil
}

func decodeResponsePayload(d *decoder, cmd Command) (ResponsePayload, error) {
	switch cmd {
	case CommandGetInfo:
		total, err := d.uint64()
		if err != nil {
			return nil, err
		}
		avail, err := d.uint64()
		if err != nil {
			return nil, err
		}
		maxSpaces, err := d.uint32()
		if err != nil {
			return nil, err
		}
		spaceList, err := d.uint32Vector()
		if err != nil {
			return nil, err
		}
		return GetInfoResponse{TotalSize: total, AvailableSize: avail, MaxSpaces: maxSpaces, SpaceList: spaceList}, nil
	case CommandCreateSpace:
		return CreateSpaceResponse{}, nil
	case CommandGetSpaceInfo:
		size, err := d.uint64()
		if err != nil {
			return nil, err
		}
		controls, err := d.controlVector()
		if err != nil {
			return nil, err
		}
		readLocked, err := d.boolean()
		if err != nil {
			return nil, err
		}
		writeLocked, err := d.boolean()
		if err != nil {
			return nil, err
		}
		return GetSpaceInfoResponse{Size: size, Controls: controls, ReadLocked: readLocked, WriteLocked: writeLocked}, nil
	case CommandDeleteSpace:
		return DeleteSpaceResponse{}, nil
	case CommandDisableCreate:
		return DisableCreateResponse{}, nil
	case CommandWriteSpace:
		return WriteSpaceResponse{}, nil
	case CommandReadSpace:
		buf, err := d.blob()
		if err != nil {
			return nil, err
		}
		return ReadSpaceResponse{Buffer: buf}, nil
	case CommandLockSpaceWrite:
		return LockSpaceWriteResponse{}, nil
	case CommandLockSpaceRead:
		return LockSpaceReadResponse{}, nil
	default:
		return nil, errors.Errorf("unknown response command tag %d", cmd)
	}
}
