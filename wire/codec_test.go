package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/nvram/wire"
)

func TestRequestRoundTrip(t *testing.T) {
	cases := []wire.RequestPayload{
		wire.GetInfoRequest{},
		wire.CreateSpaceRequest{
			Index:              3,
			Size:               64,
			Controls:           []wire.Control{wire.ControlWriteAuthorization, wire.ControlBootReadLock},
			AuthorizationValue: []byte("secret"),
		},
		wire.GetSpaceInfoRequest{Index: 7},
		wire.DeleteSpaceRequest{Index: 7, AuthorizationValue: []byte("secret")},
		wire.DisableCreateRequest{},
		wire.WriteSpaceRequest{Index: 1, Buffer: []byte("payload"), AuthorizationValue: nil},
		wire.ReadSpaceRequest{Index: 1, AuthorizationValue: []byte("pw")},
		wire.LockSpaceWriteRequest{Index: 2, AuthorizationValue: []byte("pw")},
		wire.LockSpaceReadRequest{Index: 2, AuthorizationValue: []byte("pw")},
	}

	for _, payload := range cases {
		encoded, err := wire.EncodeRequest(wire.Request{Payload: payload})
		require.NoError(t, err)

		decoded, err := wire.DecodeRequest(encoded)
		require.NoError(t, err)
		require.Equal(t, payload, decoded.Payload)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	cases := []wire.Response{
		{Result: wire.ResultSuccess, Payload: wire.GetInfoResponse{
			TotalSize:     1024,
			AvailableSize: 512,
			MaxSpaces:     32,
			SpaceList:     []uint32{1, 2, 3},
		}},
		{Result: wire.ResultSuccess, Payload: wire.CreateSpaceResponse{}},
		{Result: wire.ResultSuccess, Payload: wire.GetSpaceInfoResponse{
			Size:        16,
			Controls:    []wire.Control{wire.ControlWriteExtend},
			ReadLocked:  true,
			WriteLocked: false,
		}},
		{Result: wire.ResultSuccess, Payload: wire.DeleteSpaceResponse{}},
		{Result: wire.ResultSuccess, Payload: wire.DisableCreateResponse{}},
		{Result: wire.ResultSuccess, Payload: wire.WriteSpaceResponse{}},
		{Result: wire.ResultSuccess, Payload: wire.ReadSpaceResponse{Buffer: []byte("data")}},
		{Result: wire.ResultSuccess, Payload: wire.LockSpaceWriteResponse{}},
		{Result: wire.ResultSuccess, Payload: wire.LockSpaceReadResponse{}},
		{Result: wire.ResultInternalError, Payload: nil},
	}

	for _, resp := range cases {
		encoded, err := wire.EncodeResponse(resp)
		require.NoError(t, err)

		decoded, err := wire.DecodeResponse(encoded)
		require.NoError(t, err)
		require.Equal(t, resp.Result, decoded.Result)
		require.Equal(t, resp.Payload, decoded.Payload)
	}
}

func TestDecodeRequestTrailingBytesIgnored(t *testing.T) {
	encoded, err := wire.EncodeRequest(wire.Request{Payload: wire.GetSpaceInfoRequest{Index: 5}})
	require.NoError(t, err)
	padded := append(append([]byte(nil), encoded...), 0, 0, 0, 9, 9, 9, 9, 9, 9, 9)

	decoded, err := wire.DecodeRequest(padded)
	require.NoError(t, err)
	require.Equal(t, wire.GetSpaceInfoRequest{Index: 5}, decoded.Payload)
}

func TestHeaderRecordRoundTrip(t *testing.T) {
	rec := wire.HeaderRecord{
		Version:          1,
		Flags:            1,
		AllocatedIndices: []uint32{0, 4, 9},
		HasProvisional:   true,
		ProvisionalIndex: 4,
	}
	decoded, err := wire.DecodeHeaderRecord(wire.EncodeHeaderRecord(rec))
	require.NoError(t, err)
	require.Equal(t, rec, decoded)
}

func TestSpaceRecordRoundTrip(t *testing.T) {
	rec := wire.SpaceRecord{
		Flags:              1,
		Controls:           1 << wire.ControlWriteAuthorization,
		AuthorizationValue: []byte("pw"),
		Contents:           []byte("stored contents"),
	}
	decoded, err := wire.DecodeSpaceRecord(wire.EncodeSpaceRecord(rec))
	require.NoError(t, err)
	require.Equal(t, rec, decoded)
}

func TestDecodeSpaceRecordRejectsHeaderTag(t *testing.T) {
	headerBytes := wire.EncodeHeaderRecord(wire.HeaderRecord{Version: 1})
	_, err := wire.DecodeSpaceRecord(headerBytes)
	require.Error(t, err)
}
