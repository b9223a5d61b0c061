package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSystemReqValidate(t *testing.T) {
	t.Run("integer segments pass", func(t *testing.T) {
		for _, tc := range []GetSystemReq{
			{MapID: "1", SystemID: "30000142"},
			{MapID: "-3", SystemID: "+7"},
			{MapID: "007", SystemID: "0"},
		} {
			assert.NoError(t, tc.Validate(), "%+v", tc)
		}
	})

	t.Run("empty segment is missing", func(t *testing.T) {
		req := GetSystemReq{MapID: "", SystemID: "30000142"}
		assert.ErrorIs(t, req.Validate(), ErrMissingParams)

		req = GetSystemReq{MapID: "1", SystemID: ""}
		assert.ErrorIs(t, req.Validate(), ErrMissingParams)
	})

	t.Run("non integer segment is invalid format", func(t *testing.T) {
		for _, bad := range []string{"abc", "12.5", "1e3", "0x1f", " 1", "1 ", "12abc", "99999999999999999999"} {
			req := GetSystemReq{MapID: bad, SystemID: "1"}
			assert.ErrorIs(t, req.Validate(), ErrInvalidFormat, "mapId %q", bad)

			req = GetSystemReq{MapID: "1", SystemID: bad}
			assert.ErrorIs(t, req.Validate(), ErrInvalidFormat, "systemId %q", bad)
		}
	})
}

func TestSystemRecordMarshalJSON(t *testing.T) {
	rec, err := NewSystemRecord(
		[]string{"systemId", "mapId", "alias", "description", "locked"},
		[]any{int64(30000142), int64(1), "Jita", nil, int64(0)},
	)
	require.NoError(t, err)

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	// Column order is kept, not sorted.
	assert.Equal(t, `{"systemId":30000142,"mapId":1,"alias":"Jita","description":null,"locked":0}`, string(b))

	v, ok := rec.Get("alias")
	assert.True(t, ok)
	assert.Equal(t, "Jita", v)
	_, ok = rec.Get("nope")
	assert.False(t, ok)
}

func TestSystemRecordEmbedsRawJSON(t *testing.T) {
	rec, err := NewSystemRecord([]string{"tags"}, []any{json.RawMessage(`{"a":[1,2]}`)})
	require.NoError(t, err)

	b, err := json.Marshal(SystemResponse{Success: true, Data: rec, Timestamp: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"tags":{"a":[1,2]}},"timestamp":"t"}`, string(b))
}

func TestNewSystemRecordMismatch(t *testing.T) {
	_, err := NewSystemRecord([]string{"a", "b"}, []any{1})
	assert.Error(t, err)
}
