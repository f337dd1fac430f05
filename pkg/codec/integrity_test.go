package codec

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestIntegritySum(t *testing.T) {
	l := NewLevel()
	l.Polygons = []Polygon{{Vertices: []Position{{1, 2}, {3, 4}}}}
	l.Objects = []Object{{Position: Position{1, 1}, Type: ObjectPlayer}}
	l.Pictures = []Picture{{Position: Position{0.5, 0.5}}}

	// (1+2+3+4) + (1+1+4) + (0.5+0.5)
	assert.InDelta(t, 17*integrityScale, IntegritySum(l), 1e-9)
	assert.Equal(t, 0.0, IntegritySum(NewLevel()))
}

func TestComputeIntegrity_Windows(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	l := sampleLevel()

	for i := 0; i < 100; i++ {
		l.Integrity = ComputeIntegrity(l, r)
		sum := l.Integrity[0]

		assert.InDelta(t, IntegritySum(l), sum, 1e-9)
		assert.True(t, inWindow(l.Integrity[1], sum, integrityLow1, integritySpan1))
		assert.True(t, inWindow(l.Integrity[2], sum, integrityLow2, integritySpan2))
		assert.True(t, inWindow(l.Integrity[3], sum, integrityLow3, integritySpan3))
		assert.NoError(t, CheckIntegrity(l))
	}
}

func TestComputeIntegrity_GlobalSource(t *testing.T) {
	l := sampleLevel()
	l.Integrity = ComputeIntegrity(l, nil)
	assert.NoError(t, CheckIntegrity(l))
}

func TestCheckIntegrity_Failures(t *testing.T) {
	base := sampleLevel()
	base.Integrity = ComputeIntegrity(base, rand.New(rand.NewPCG(5, 6)))

	testCases := []struct {
		name   string
		modify func(l *Level)
	}{
		{"moved vertex", func(l *Level) { l.Polygons[0].Vertices[0].X += 1 }},
		{"changed object type", func(l *Level) { l.Objects[3].Type = ObjectApple }},
		{"second value", func(l *Level) { l.Integrity[1] += 10000 }},
		{"third value", func(l *Level) { l.Integrity[2] = integrityLow2 - 1 - l.Integrity[0] }},
		{"fourth value", func(l *Level) { l.Integrity[3] = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := base.Clone()
			tc.modify(l)
			assert.True(t, errors.Is(CheckIntegrity(l), ErrIntegrityMismatch))
		})
	}
}

func TestCheckIntegrity_UncheckedTopologyWindow(t *testing.T) {
	l := sampleLevel()
	l.Integrity = ComputeIntegrity(l, rand.New(rand.NewPCG(8, 9)))
	l.Integrity[2] = integrityLow2Unchecked + 100 - l.Integrity[0]

	assert.NoError(t, CheckIntegrity(l))
}

func TestCheckIntegrity_FixtureValues(t *testing.T) {
	sum := fixtureIntegrity[0]
	assert.True(t, inWindow(fixtureIntegrity[1], sum, integrityLow1, integritySpan1))
	assert.True(t, inWindow(fixtureIntegrity[2], sum, integrityLow2, integritySpan2))
	assert.True(t, inWindow(fixtureIntegrity[3], sum, integrityLow3, integritySpan3))
}
