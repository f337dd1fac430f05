package codec

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	testCases := []struct {
		name  string
		field []byte
		want  string
	}{
		{"terminated", []byte("sky\x00\x00\x00"), "sky"},
		{"garbage after terminator", []byte("sky\x00junk"), "sky"},
		{"empty", []byte{0, 'x', 'y'}, ""},
		{"windows-1252", []byte{'c', 'a', 'f', 0xE9, 0}, "café"},
		{"euro", []byte{0x80, 0}, "€"},
		{"undefined code page bytes", []byte{'a', 0x81, 0x8D, 0x8F, 0x90, 0x9D, 0}, "a\u0081\u008d\u008f\u0090\u009d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeText(tc.field)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeText_Unterminated(t *testing.T) {
	_, err := decodeText([]byte("ground"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldTooLong))
}

func TestText_RoundTripsEveryByte(t *testing.T) {
	for b := 1; b < 256; b++ {
		s, err := decodeText([]byte{byte(b), 0})
		require.NoError(t, err, "byte 0x%02X", b)
		assert.NotContains(t, s, "\uFFFD", "byte 0x%02X", b)

		enc, err := encodeText("name", s, 2)
		require.NoError(t, err, "byte 0x%02X", b)
		assert.Equal(t, []byte{byte(b)}, enc, "byte 0x%02X", b)
	}
}

func TestEncodeText(t *testing.T) {
	b, err := encodeText("name", "café", 10)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)

	_, err = encodeText("sky", "123456789", 10)
	assert.NoError(t, err)

	_, err = encodeText("sky", "1234567890", 10)
	assert.True(t, errors.Is(err, ErrFieldTooLong))

	_, err = encodeText("name", "€uro", 4)
	assert.True(t, errors.Is(err, ErrFieldTooLong), "euro sign is one byte, terminator makes five")

	_, err = encodeText("name", "日本", 10)
	assert.True(t, errors.Is(err, ErrInvalidText))

	_, err = encodeText("name", "a\x00b", 10)
	assert.True(t, errors.Is(err, ErrInvalidText))

	_, err = encodeText("name", string([]byte{'a', 0xFF}), 10)
	assert.True(t, errors.Is(err, ErrInvalidText))
}
