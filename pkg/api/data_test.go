package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponse_Message(t *testing.T) {
	// The backend message wins over the fallback.
	resp := &Response{Code: 400, Body: JSON{"message": "X"}}
	require.Equal(t, "X", resp.Message("default message"))

	// Without a message field, the fallback is returned.
	resp = &Response{Code: 500, Body: JSON{"error": "boom"}}
	require.Equal(t, "default message", resp.Message("default message"))

	// An array body has no message field at all.
	resp = &Response{Code: 500, Body: Array{}}
	require.Equal(t, "default message", resp.Message("default message"))
}

func TestJSON_Get(t *testing.T) {
	body, err := bytesToJSON([]byte(`{"data":{"items":[{"id":"e1"},{"id":"e2"}],"total":2}}`))
	require.NoError(t, err)

	total, err := body.GetInt("data.total")
	require.NoError(t, err)
	require.Equal(t, 2, total)

	data, err := body.GetJSON("data")
	require.NoError(t, err)

	items, err := data.GetArray("items")
	require.NoError(t, err)
	require.Len(t, items, 2)

	id, err := items[1].GetString("id")
	require.NoError(t, err)
	require.Equal(t, "e2", id)

	_, err = body.GetString("data.missing")
	require.Error(t, err)
}

func TestBytesToArray(t *testing.T) {
	array, err := bytesToArray([]byte(`[{"id":"a"},{"id":"b"}]`))
	require.NoError(t, err)
	require.Len(t, array, 2)

	_, err = bytesToArray([]byte(`[1,2,3]`))
	require.Error(t, err)
}
