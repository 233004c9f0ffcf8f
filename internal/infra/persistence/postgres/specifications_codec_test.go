package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSpecifications(t *testing.T) {
	t.Parallel()

	t.Run("nil map encodes to empty object", func(t *testing.T) {
		t.Parallel()

		encoded := encodeSpecifications(nil)
		assert.Equal(t, "{}", encoded)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		specs := map[string]string{"color": "black", "storage": "256GB"}

		decoded := decodeSpecifications(encodeSpecifications(specs))
		assert.Equal(t, specs, decoded)
	})
}

func TestDecodeSpecifications_Defensive(t *testing.T) {
	t.Parallel()

	// Corrupt or legacy rows must decode to an empty map, never an error
	// and never nil.
	cases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"garbage", "not json at all"},
		{"wrong shape", `["a","b"]`},
		{"nested values", `{"a":{"b":"c"}}`},
		{"null literal", "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			decoded := decodeSpecifications(tc.raw)
			require.NotNil(t, decoded)
			assert.Empty(t, decoded)
		})
	}
}
