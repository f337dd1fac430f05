package codec

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/elmalev/pkg/cursor"
)

// Structural markers.
const (
	EndOfData int32 = 0x0067103A
	EndOfFile int32 = 0x00845D52
)

// Field widths and fixed offsets.
const (
	reservedSize    = 2
	integrityOffset = formatTagSize + reservedSize + 4

	NameSize        = 51
	LGRSize         = 16
	GroundSize      = 10
	SkySize         = 10
	PictureNameSize = 10

	headerSize  = integrityOffset + 4*8 + NameSize + LGRSize + GroundSize + SkySize
	vertexSize  = 16
	objectSize  = 8 + 8 + 4 + 4 + 4
	pictureSize = 3*PictureNameSize + 8 + 8 + 4 + 4
	trailerSize = 4 + Top10BlockSize + 4
)

// IntegrityMode selects where Encode takes integrity values from.
type IntegrityMode int

const (
	// IntegrityPreserve writes Level.Integrity unchanged.
	IntegrityPreserve IntegrityMode = iota
	// IntegrityRecompute computes fresh values from the level contents.
	IntegrityRecompute
)

// CodecConfig holds options for a LevelCodec.
type CodecConfig struct {
	Integrity IntegrityMode
	// VerifyIntegrity makes Decode fail when stored integrity values do not
	// match the level contents.
	VerifyIntegrity bool
	// Rand is used for recomputed integrity values. A non-nil Rand is not
	// safe for concurrent use, and neither is the codec holding it.
	Rand *rand.Rand
}

// LevelCodec decodes and encodes level files. The zero configuration is safe
// for concurrent use.
type LevelCodec struct {
	config CodecConfig
}

// NewLevelCodec creates a codec that preserves stored integrity values.
func NewLevelCodec() *LevelCodec {
	return &LevelCodec{}
}

// NewLevelCodecWithConfig creates a codec with the given options.
func NewLevelCodecWithConfig(config CodecConfig) *LevelCodec {
	return &LevelCodec{config: config}
}

var defaultCodec = NewLevelCodec()

// Decode parses a level file with the default codec.
func Decode(data []byte) (*Level, error) {
	return defaultCodec.Decode(data)
}

// Encode serializes a level with the default codec.
func Encode(l *Level) ([]byte, error) {
	return defaultCodec.Encode(l)
}

// Decode parses a complete level file. Bytes after the end-of-file marker are
// ignored. Text fields must be NUL terminated within their width, so every
// level Decode accepts can be encoded again.
func (c *LevelCodec) Decode(data []byte) (*Level, error) {
	r := cursor.NewReader(data)
	l := &Level{}

	tag, err := r.ReadBytes(formatTagSize)
	if err != nil {
		return nil, errors.Wrap(err, "format tag")
	}
	format, ok := formatFromTag(tag)
	if !ok {
		return nil, errors.Wrapf(ErrUnrecognizedFormat, "tag %q", tag)
	}
	l.Format = format

	if err := r.Skip(reservedSize); err != nil {
		return nil, err
	}
	if l.Link, err = r.ReadI32(); err != nil {
		return nil, errors.Wrap(err, "link")
	}
	for i := range l.Integrity {
		if l.Integrity[i], err = r.ReadF64(); err != nil {
			return nil, errors.Wrap(err, "integrity")
		}
	}

	for _, f := range []struct {
		name  string
		dst   *string
		width int
	}{
		{"name", &l.Name, NameSize},
		{"lgr", &l.LGR, LGRSize},
		{"ground", &l.Ground, GroundSize},
		{"sky", &l.Sky, SkySize},
	} {
		if *f.dst, err = readText(r, f.width); err != nil {
			return nil, errors.Wrap(err, f.name)
		}
	}

	if l.Polygons, err = decodePolygons(r); err != nil {
		return nil, errors.Wrap(err, "polygons")
	}
	if l.Objects, err = decodeObjects(r); err != nil {
		return nil, errors.Wrap(err, "objects")
	}
	if l.Pictures, err = decodePictures(r); err != nil {
		return nil, errors.Wrap(err, "pictures")
	}

	if err := expectMarker(r, "end-of-data", EndOfData); err != nil {
		return nil, err
	}
	block, err := r.ReadBytes(Top10BlockSize)
	if err != nil {
		return nil, errors.Wrap(err, "leaderboard")
	}
	if l.Top10Single, l.Top10Multi, err = decodeTop10Block(block); err != nil {
		return nil, err
	}
	if err := expectMarker(r, "end-of-file", EndOfFile); err != nil {
		return nil, err
	}

	if c.config.VerifyIntegrity {
		if err := CheckIntegrity(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func expectMarker(r *cursor.Reader, name string, want int32) error {
	got, err := r.ReadI32()
	if err != nil {
		return errors.Wrapf(err, "%s marker", name)
	}
	if got != want {
		return &MarkerError{Marker: name, Expected: want, Actual: got}
	}
	return nil
}

// checkRecords fails early when n records of size bytes cannot fit in what
// is left of the buffer.
func checkRecords(r *cursor.Reader, n, size int) error {
	if n*size > r.Remaining() {
		return errors.Wrapf(ErrUnexpectedEOF, "%d records of %d bytes at offset %d, %d bytes left", n, size, r.Offset(), r.Remaining())
	}
	return nil
}

func decodePolygons(r *cursor.Reader) ([]Polygon, error) {
	n, err := readCount(r, PolygonCountOffset)
	if err != nil {
		return nil, err
	}
	if err := checkRecords(r, n, 8); err != nil {
		return nil, err
	}

	polygons := make([]Polygon, 0, n)
	for i := 0; i < n; i++ {
		grass, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		count, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, errors.Wrapf(ErrInvalidCount, "polygon %d has %d vertices", i, count)
		}
		if err := checkRecords(r, int(count), vertexSize); err != nil {
			return nil, err
		}

		p := Polygon{Grass: grass > 0, Vertices: make([]Position, count)}
		for j := range p.Vertices {
			if p.Vertices[j], err = readPosition(r); err != nil {
				return nil, err
			}
		}
		polygons = append(polygons, p)
	}
	return polygons, nil
}

func decodeObjects(r *cursor.Reader) ([]Object, error) {
	n, err := readCount(r, ObjectCountOffset)
	if err != nil {
		return nil, err
	}
	if err := checkRecords(r, n, objectSize); err != nil {
		return nil, err
	}

	objects := make([]Object, 0, n)
	for i := 0; i < n; i++ {
		var o Object
		if o.Position, err = readPosition(r); err != nil {
			return nil, err
		}
		kind, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		o.Type = ObjectType(kind)
		if !o.Type.valid() {
			return nil, errors.Wrapf(ErrUnrecognizedObjectType, "object %d has type %d", i, kind)
		}
		gravity, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		o.Gravity = Gravity(gravity)
		animation, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		o.Animation = animation + 1
		objects = append(objects, o)
	}
	return objects, nil
}

func decodePictures(r *cursor.Reader) ([]Picture, error) {
	n, err := readCount(r, PictureCountOffset)
	if err != nil {
		return nil, err
	}
	if err := checkRecords(r, n, pictureSize); err != nil {
		return nil, err
	}

	pictures := make([]Picture, 0, n)
	for i := 0; i < n; i++ {
		var p Picture
		if p.Name, err = readText(r, PictureNameSize); err != nil {
			return nil, err
		}
		if p.Texture, err = readText(r, PictureNameSize); err != nil {
			return nil, err
		}
		if p.Mask, err = readText(r, PictureNameSize); err != nil {
			return nil, err
		}
		if p.Position, err = readPosition(r); err != nil {
			return nil, err
		}
		if p.Distance, err = r.ReadI32(); err != nil {
			return nil, err
		}
		clip, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		p.Clip = Clip(clip)
		pictures = append(pictures, p)
	}
	return pictures, nil
}

func readPosition(r *cursor.Reader) (Position, error) {
	x, err := r.ReadF64()
	if err != nil {
		return Position{}, err
	}
	y, err := r.ReadF64()
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

// Size returns the encoded size of l in bytes.
func (l *Level) Size() int {
	size := headerSize + 3*8 + trailerSize
	for _, p := range l.Polygons {
		size += 8 + vertexSize*len(p.Vertices)
	}
	size += objectSize * len(l.Objects)
	size += pictureSize * len(l.Pictures)
	return size
}

// Encode serializes l. l is not modified; recomputed integrity values only
// appear in the output.
func (c *LevelCodec) Encode(l *Level) ([]byte, error) {
	tag := l.Format.Tag()
	if tag == "" {
		return nil, errors.Wrapf(ErrUnrecognizedFormat, "format %v", l.Format)
	}

	w := cursor.NewWriter(l.Size())
	w.WriteBytes([]byte(tag))
	w.WritePadded(nil, reservedSize)
	w.WriteI32(l.Link)
	// Integrity is patched once everything else has been written.
	for range l.Integrity {
		w.WriteF64(0)
	}

	for _, f := range []struct {
		name  string
		value string
		width int
	}{
		{"name", l.Name, NameSize},
		{"lgr", l.LGR, LGRSize},
		{"ground", l.Ground, GroundSize},
		{"sky", l.Sky, SkySize},
	} {
		if err := writeText(w, f.name, f.value, f.width); err != nil {
			return nil, err
		}
	}

	if err := encodePolygons(w, l.Polygons); err != nil {
		return nil, errors.Wrap(err, "polygons")
	}
	if err := encodeObjects(w, l.Objects); err != nil {
		return nil, errors.Wrap(err, "objects")
	}
	if err := encodePictures(w, l.Pictures); err != nil {
		return nil, errors.Wrap(err, "pictures")
	}

	w.WriteI32(EndOfData)
	block, err := encodeTop10Block(l.Top10Single, l.Top10Multi)
	if err != nil {
		return nil, err
	}
	w.WriteBytes(block)
	w.WriteI32(EndOfFile)

	integrity := l.Integrity
	if c.config.Integrity == IntegrityRecompute {
		integrity = ComputeIntegrity(l, c.config.Rand)
	}
	end := w.Offset()
	if err := w.Seek(integrityOffset); err != nil {
		return nil, err
	}
	for _, v := range integrity {
		w.WriteF64(v)
	}
	if err := w.Seek(end); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

func encodePolygons(w *cursor.Writer, polygons []Polygon) error {
	if err := writeCount(w, len(polygons), PolygonCountOffset); err != nil {
		return err
	}
	for _, p := range polygons {
		var grass int32
		if p.Grass {
			grass = 1
		}
		w.WriteI32(grass)
		w.WriteI32(int32(len(p.Vertices)))
		for _, v := range p.Vertices {
			w.WriteF64(v.X)
			w.WriteF64(v.Y)
		}
	}
	return nil
}

func encodeObjects(w *cursor.Writer, objects []Object) error {
	if err := writeCount(w, len(objects), ObjectCountOffset); err != nil {
		return err
	}
	for i, o := range objects {
		if !o.Type.valid() {
			return errors.Wrapf(ErrUnrecognizedObjectType, "object %d has type %d", i, int32(o.Type))
		}
		w.WriteF64(o.Position.X)
		w.WriteF64(o.Position.Y)
		w.WriteI32(int32(o.Type))
		w.WriteI32(int32(o.Gravity))
		w.WriteI32(o.Animation - 1)
	}
	return nil
}

func encodePictures(w *cursor.Writer, pictures []Picture) error {
	if err := writeCount(w, len(pictures), PictureCountOffset); err != nil {
		return err
	}
	for _, p := range pictures {
		if err := writeText(w, "picture name", p.Name, PictureNameSize); err != nil {
			return err
		}
		if err := writeText(w, "picture texture", p.Texture, PictureNameSize); err != nil {
			return err
		}
		if err := writeText(w, "picture mask", p.Mask, PictureNameSize); err != nil {
			return err
		}
		w.WriteF64(p.Position.X)
		w.WriteF64(p.Position.Y)
		w.WriteI32(p.Distance)
		w.WriteI32(int32(p.Clip))
	}
	return nil
}
