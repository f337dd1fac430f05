package codec

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/ssargent/elmalev/pkg/cursor"
)

// Text fields are stored in the game's Windows code page, NUL terminated
// inside a fixed-width field.
var textCharmap = charmap.Windows1252

// undefinedByte reports whether b has no assignment in Windows-1252. Such
// bytes map to the C1 control with the same value so they survive a round
// trip.
func undefinedByte(b byte) bool {
	switch b {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	}
	return false
}

// decodeText returns the text before the first NUL in field. Bytes after the
// terminator are ignored; a field without a terminator is rejected.
func decodeText(field []byte) (string, error) {
	i := bytes.IndexByte(field, 0)
	if i < 0 {
		return "", errors.Wrapf(ErrFieldTooLong, "unterminated %d-byte field", len(field))
	}

	var sb strings.Builder
	sb.Grow(i)
	for _, b := range field[:i] {
		if undefinedByte(b) {
			sb.WriteRune(rune(b))
			continue
		}
		sb.WriteRune(textCharmap.DecodeByte(b))
	}
	return sb.String(), nil
}

// encodeText converts s to its stored form and checks that it fits a field
// of the given width together with its terminator.
func encodeText(field, s string, width int) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errors.Wrapf(ErrInvalidText, "%s %q is not valid UTF-8", field, s)
	}

	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r == 0 {
			return nil, errors.Wrapf(ErrInvalidText, "%s %q contains NUL", field, s)
		}
		if r < utf8.RuneSelf || (r <= 0xFF && undefinedByte(byte(r))) {
			b = append(b, byte(r))
			continue
		}
		c, ok := textCharmap.EncodeRune(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidText, "%s %q: %U has no Windows-1252 byte", field, s, r)
		}
		b = append(b, c)
	}
	if len(b)+1 > width {
		return nil, errors.Wrapf(ErrFieldTooLong, "%s %q is %d bytes, field holds %d", field, s, len(b), width-1)
	}
	return b, nil
}

func readText(r *cursor.Reader, width int) (string, error) {
	field, err := r.ReadBytes(width)
	if err != nil {
		return "", err
	}
	return decodeText(field)
}

func writeText(w *cursor.Writer, field, s string, width int) error {
	b, err := encodeText(field, s, width)
	if err != nil {
		return err
	}
	w.WritePadded(b, width)
	return nil
}
