package codec

import (
	"testing"

	"github.com/ssargent/elmalev/pkg/cursor"
)

var fixtureIntegrity = [4]float64{
	-1148375.210607791,
	1164056.210607791,
	1162467.210607791,
	1162283.210607791,
}

// fixtureOffsets records where interesting fields of the fixture file live.
type fixtureOffsets struct {
	polygonCount int
	objectType   int // type of the first object
	animation    int // animation of the first object
	pictureCount int
	endOfData    int
	top10        int
	endOfFile    int
}

type fixtureObject struct {
	x, y      float64
	kind      int32
	gravity   int32
	animation int32 // stored value
}

var fixtureObjects = []fixtureObject{
	{-2, 1, 4, 0, 0},
	{10, 1.5, 1, 0, 0},
	{3, 2, 2, 0, 0},
	{4, 2, 2, 1, 3},
	{5, 2, 2, 2, 8},
	{6, 2, 2, 3, 0},
	{7, 2, 2, 4, 0},
	{8, 0.5, 3, 0, 0},
}

// buildFixture writes the "Rust test" level field by field without going
// through the encoder.
func buildFixture(t testing.TB) ([]byte, fixtureOffsets) {
	t.Helper()
	var off fixtureOffsets
	w := cursor.NewWriter(0)

	w.WriteBytes([]byte("POT14"))
	w.WriteBytes([]byte{0, 0})
	w.WriteI32(1524269776)
	for _, v := range fixtureIntegrity {
		w.WriteF64(v)
	}
	w.WritePadded([]byte("Rust test"), NameSize)
	w.WritePadded([]byte("default"), LGRSize)
	w.WritePadded([]byte("ground"), GroundSize)
	w.WritePadded([]byte("sky"), SkySize)

	off.polygonCount = w.Offset()
	w.WriteF64(2 + PolygonCountOffset)
	// ground
	w.WriteI32(0)
	w.WriteI32(4)
	for _, v := range [][2]float64{{-24, -8}, {24, -8}, {24, 2}, {-24, 2}} {
		w.WriteF64(v[0])
		w.WriteF64(v[1])
	}
	// grass
	w.WriteI32(1)
	w.WriteI32(3)
	for _, v := range [][2]float64{{-20, 1.8}, {0, 1.5}, {20, 1.8}} {
		w.WriteF64(v[0])
		w.WriteF64(v[1])
	}

	w.WriteF64(float64(len(fixtureObjects)) + ObjectCountOffset)
	for i, o := range fixtureObjects {
		w.WriteF64(o.x)
		w.WriteF64(o.y)
		if i == 0 {
			off.objectType = w.Offset()
		}
		w.WriteI32(o.kind)
		w.WriteI32(o.gravity)
		if i == 0 {
			off.animation = w.Offset()
		}
		w.WriteI32(o.animation)
	}

	off.pictureCount = w.Offset()
	w.WriteF64(2 + PictureCountOffset)
	w.WritePadded([]byte("barrel"), PictureNameSize)
	w.WritePadded(nil, PictureNameSize)
	w.WritePadded(nil, PictureNameSize)
	w.WriteF64(1)
	w.WriteF64(-3)
	w.WriteI32(600)
	w.WriteI32(1)
	w.WritePadded(nil, PictureNameSize)
	w.WritePadded([]byte("stone1"), PictureNameSize)
	w.WritePadded([]byte("maskbig"), PictureNameSize)
	w.WriteF64(-5)
	w.WriteF64(0.25)
	w.WriteI32(750)
	w.WriteI32(2)

	off.endOfData = w.Offset()
	w.WriteI32(EndOfData)

	off.top10 = w.Offset()
	block, err := CryptTop10(make([]byte, Top10BlockSize))
	if err != nil {
		t.Fatalf("CryptTop10 failed: %v", err)
	}
	w.WriteBytes(block)

	off.endOfFile = w.Offset()
	w.WriteI32(EndOfFile)

	return w.Bytes(), off
}

// sampleLevel returns a level using every kind of element.
func sampleLevel() *Level {
	l := NewLevel()
	l.Link = 0x1234ABCD
	l.Integrity = [4]float64{1, 2, 3, 4}
	l.Name = "Sample level"
	l.LGR = "across"
	l.Ground = "brick"
	l.Sky = "mysky"
	l.Polygons = []Polygon{
		{Vertices: []Position{{-10, -5}, {10, -5}, {10, 5}, {-10, 5}}},
		{Grass: true, Vertices: []Position{{-9, 4.5}, {9, 4.5}}},
	}
	l.Objects = []Object{
		{Position: Position{-8, 4}, Type: ObjectPlayer, Animation: 1},
		{Position: Position{8, 4}, Type: ObjectExit, Animation: 1},
		{Position: Position{0, 3}, Type: ObjectApple, Gravity: GravityUp, Animation: 9},
		{Position: Position{2, 3}, Type: ObjectKiller, Animation: 1},
	}
	l.Pictures = []Picture{
		{Name: "qfood1", Position: Position{1, 2}, Distance: 500, Clip: ClipSky},
		{Texture: "ground", Mask: "maskhor", Position: Position{-1, -2}, Distance: 400, Clip: ClipGround},
	}
	l.Top10Single = []Top10Entry{
		{Name1: "alice", Name2: "alice", Time: 1834},
		{Name1: "bob", Name2: "bob", Time: 1790},
	}
	l.Top10Multi = []Top10Entry{
		{Name1: "alice", Name2: "bob", Time: 2200},
	}
	return l
}
