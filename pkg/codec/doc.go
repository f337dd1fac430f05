// Package codec reads and writes Elasto Mania level files.
//
// A level file is a fixed-layout little-endian binary record. The codec
// parses it into a Level and serializes a Level back into bytes that the
// game accepts.
//
// # File Format
//
//	[Tag(5)][Reserved(2)][Link(4)][Integrity(4x8)]
//	[Name(51)][LGR(16)][Ground(10)][Sky(10)]
//	[PolygonCount(8)][Polygons...]
//	[ObjectCount(8)][Objects...]
//	[PictureCount(8)][Pictures...]
//	[EndOfData(4)][Top10(688)][EndOfFile(4)]
//
// Fields:
//   - Tag: "POT14" for Elma levels, "POT06" for Across levels
//   - Link: random number shared with replays recorded on the level
//   - Integrity: four checksums over the level contents (see ComputeIntegrity)
//   - Name, LGR, Ground, Sky: NUL-terminated Windows-1252 text in fixed fields
//   - Counts: doubles holding count + a fixed fraction (see EncodeCount)
//   - Polygon: [Grass(4)][VertexCount(4)][X(8) Y(8)]...
//   - Object: [X(8)][Y(8)][Type(4)][Gravity(4)][Animation-1(4)]
//   - Picture: [Name(10)][Texture(10)][Mask(10)][X(8)][Y(8)][Distance(4)][Clip(4)]
//   - EndOfData: 0x0067103A
//   - Top10: single and multi-player best times, encrypted with CryptTop10
//   - EndOfFile: 0x00845D52
//
// # Usage
//
//	level, err := codec.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	level.Name = "Renamed"
//	out, err := codec.Encode(level)
//
// Encode preserves the stored integrity values by default. A codec created
// with IntegrityRecompute computes them from the level contents instead.
//
// # Error Handling
//
// Decoding and encoding either succeed completely or return an error wrapping
// one of the package sentinels (ErrUnexpectedEOF, ErrUnrecognizedFormat,
// ErrInvalidCount, ErrUnrecognizedObjectType, ErrMarkerMismatch,
// ErrInvalidLeaderboardCount, ErrFieldTooLong, ...). Marker failures carry a
// *MarkerError with the expected and actual values.
//
// # Thread Safety
//
// Codecs hold no mutable state unless configured with a *rand.Rand, so the
// default codec and the package-level Decode and Encode are safe for
// concurrent use.
package codec
