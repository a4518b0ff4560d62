package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_Primitives(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "tick:0000002A", `"tick:0000002A"`},
		{"int", 42, `42`},
		{"int64 negative", int64(-4294967295), `-4294967295`},
		{"uint32 max", uint32(4294967295), `4294967295`},
		{"bool", true, `true`},
		{"empty array", []any{}, `[]`},
		{"empty object", map[string]any{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestMarshalCanonical_SortedKeys(t *testing.T) {
	got, err := MarshalCanonical(map[string]any{
		"seq":  int64(1),
		"op":   "add",
		"tick": "tick:00000000",
		"b":    []any{"x", 2},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"b":["x",2],"op":"add","seq":1,"tick":"tick:00000000"}`, string(got))
}

func TestMarshalCanonical_UTF16KeyOrder(t *testing.T) {
	// U+1F600 encodes as a surrogate pair starting 0xD83D, which sorts
	// before U+FF5E in UTF-16 but after it in UTF-8.
	got, err := MarshalCanonical(map[string]any{
		"～":     1,
		"\U0001F600": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":2,\"～\":1}", string(got))
}

func TestMarshalCanonical_StringEscaping(t *testing.T) {
	got, err := MarshalCanonical("a\"b\\c\n<&>\u0001 ")
	require.NoError(t, err)
	assert.Equal(t, "\"a\\\"b\\\\c\\n<&>\\u0001 \"", string(got))
}

func TestMarshalCanonical_NFC(t *testing.T) {
	// "e" + combining acute accent normalizes to U+00E9.
	got, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(got))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.ErrorContains(t, err, "null")

	_, err = MarshalCanonical(1.5)
	assert.ErrorContains(t, err, "floats")

	_, err = MarshalCanonical(map[string]any{"x": []any{uint8(1)}})
	assert.ErrorContains(t, err, "unsupported type")
	assert.ErrorContains(t, err, `"x"`)
}
