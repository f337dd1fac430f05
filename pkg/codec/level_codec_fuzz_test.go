//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"reflect"
	"testing"
)

// FuzzLevelCodec_Decode feeds arbitrary bytes to the decoder. It must never
// panic, and anything it accepts must re-encode to a level that decodes the
// same way.
func FuzzLevelCodec_Decode(f *testing.F) {
	fixture, _ := buildFixture(f)
	sample, err := Encode(sampleLevel())
	if err != nil {
		f.Fatalf("Encode failed: %v", err)
	}

	// Add seed corpus
	f.Add(fixture)
	f.Add(sample)
	f.Add([]byte("POT14"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		level, err := Decode(data)
		if err != nil {
			return
		}

		encoded, err := Encode(level)
		if err != nil {
			t.Fatalf("Encode of decoded level failed: %v", err)
		}

		again, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode of re-encoded level failed: %v", err)
		}
		if !reflect.DeepEqual(level, again) && !hasNaN(level) {
			t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", again, level)
		}
		if len(encoded) > len(data) {
			t.Errorf("Re-encoded level grew from %d to %d bytes", len(data), len(encoded))
		}
	})
}

// FuzzCryptTop10 checks the cipher is an involution for arbitrary blocks.
func FuzzCryptTop10(f *testing.F) {
	f.Add(make([]byte, Top10BlockSize))
	f.Add(bytes.Repeat([]byte{0xFF}, Top10BlockSize))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != Top10BlockSize {
			t.Skip("Cipher only accepts full blocks")
		}
		once, err := CryptTop10(data)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := CryptTop10(once)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, twice) {
			t.Error("CryptTop10 is not its own inverse")
		}
	})
}

func hasNaN(l *Level) bool {
	isNaN := func(v float64) bool { return v != v }
	for _, v := range l.Integrity {
		if isNaN(v) {
			return true
		}
	}
	for _, p := range l.Polygons {
		for _, v := range p.Vertices {
			if isNaN(v.X) || isNaN(v.Y) {
				return true
			}
		}
	}
	for _, o := range l.Objects {
		if isNaN(o.Position.X) || isNaN(o.Position.Y) {
			return true
		}
	}
	for _, p := range l.Pictures {
		if isNaN(p.Position.X) || isNaN(p.Position.Y) {
			return true
		}
	}
	return false
}
