package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshalNativeArray(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["Black","White"]`), &list))
	assert.Equal(t, StringList{"Black", "White"}, list)
}

func TestStringListUnmarshalEncodedArray(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"[\"Black\",\"White\"]"`), &list))
	assert.Equal(t, StringList{"Black", "White"}, list)
}

func TestStringListUnmarshalMalformedYieldsEmpty(t *testing.T) {
	cases := []string{
		`"not an array"`,
		`"{broken"`,
		`42`,
		`{"a":1}`,
		`null`,
	}
	for _, raw := range cases {
		var list StringList
		require.NoError(t, json.Unmarshal([]byte(raw), &list), raw)
		assert.Empty(t, list, raw)
		assert.NotNil(t, list, raw)
	}
}

func TestStringListUnmarshalMixedArrayKeepsStrings(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["Black",3,null,"White"]`), &list))
	assert.Equal(t, StringList{"Black", "White"}, list)
}

func TestStringListScanRoundTrip(t *testing.T) {
	original := StringList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringListScanTolerance(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)

	require.NoError(t, list.Scan([]byte(`"[\"Red\"]"`)))
	assert.Equal(t, StringList{"Red"}, list)

	require.NoError(t, list.Scan(12.5))
	assert.Empty(t, list)
}

func TestStringListMarshalNeverNull(t *testing.T) {
	raw, err := json.Marshal(StringList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
