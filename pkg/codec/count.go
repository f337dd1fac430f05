package codec

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/elmalev/pkg/cursor"
)

// Polygon, object and picture counts are stored as doubles holding the count
// plus a fixed fraction.
const (
	PolygonCountOffset = 0.4643643
	ObjectCountOffset  = PolygonCountOffset
	PictureCountOffset = 0.2345672

	// MaxCount bounds any decoded section count.
	MaxCount = 65535

	countTolerance = 1e-3
)

// EncodeCount returns the stored form of n for a section using offset.
func EncodeCount(n int, offset float64) float64 {
	return float64(n) + offset
}

// DecodeCount recovers a count from its stored form.
func DecodeCount(v, offset float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidCount, "stored count %v", v)
	}
	raw := v - offset
	n := math.Round(raw)
	if math.Abs(raw-n) > countTolerance {
		return 0, errors.Wrapf(ErrInvalidCount, "stored count %v is not integral", v)
	}
	if n < 0 || n > MaxCount {
		return 0, errors.Wrapf(ErrInvalidCount, "count %v outside [0, %d]", n, MaxCount)
	}
	return int(n), nil
}

func readCount(r *cursor.Reader, offset float64) (int, error) {
	v, err := r.ReadF64()
	if err != nil {
		return 0, err
	}
	return DecodeCount(v, offset)
}

func writeCount(w *cursor.Writer, n int, offset float64) error {
	if n > MaxCount {
		return errors.Wrapf(ErrInvalidCount, "count %d exceeds %d", n, MaxCount)
	}
	w.WriteF64(EncodeCount(n, offset))
	return nil
}
