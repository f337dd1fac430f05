package codec

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Integrity values as documented for the format: the first is a weighted sum
// of every coordinate and object code, the other three are that sum's
// negation shifted into a fixed window by a random amount.
const (
	integrityScale = 3247.764325643

	integrityLow1, integritySpan1 = 11877, 5871
	integrityLow2, integritySpan2 = 11877, 5871
	// Levels saved without a topology check use this window instead.
	integrityLow2Unchecked, integritySpan2Unchecked = 20961, 4982
	integrityLow3, integritySpan3                   = 12112, 6102

	integrityTolerance = 1e-6
)

// IntegritySum computes the first integrity value of l.
func IntegritySum(l *Level) float64 {
	var pol, obj, pic float64
	for _, p := range l.Polygons {
		for _, v := range p.Vertices {
			pol += v.X + v.Y
		}
	}
	for _, o := range l.Objects {
		obj += o.Position.X + o.Position.Y + float64(o.Type)
	}
	for _, p := range l.Pictures {
		pic += p.Position.X + p.Position.Y
	}
	return (pol + obj + pic) * integrityScale
}

// ComputeIntegrity returns fresh integrity values for l. r supplies the
// random shifts; nil uses the global source.
func ComputeIntegrity(l *Level, r *rand.Rand) [4]float64 {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	sum := IntegritySum(l)
	return [4]float64{
		sum,
		float64(intN(integritySpan1)+integrityLow1) - sum,
		float64(intN(integritySpan2)+integrityLow2) - sum,
		float64(intN(integritySpan3)+integrityLow3) - sum,
	}
}

func inWindow(v, sum float64, low, span int) bool {
	d := math.Round(v + sum)
	return d >= float64(low) && d < float64(low+span)
}

// CheckIntegrity verifies the stored integrity values of l against its
// contents.
func CheckIntegrity(l *Level) error {
	sum := IntegritySum(l)
	if math.Abs(l.Integrity[0]-sum) > integrityTolerance*math.Max(1, math.Abs(sum)) {
		return errors.Wrapf(ErrIntegrityMismatch, "sum %v, computed %v", l.Integrity[0], sum)
	}
	if !inWindow(l.Integrity[1], sum, integrityLow1, integritySpan1) {
		return errors.Wrapf(ErrIntegrityMismatch, "second value %v out of range", l.Integrity[1])
	}
	if !inWindow(l.Integrity[2], sum, integrityLow2, integritySpan2) &&
		!inWindow(l.Integrity[2], sum, integrityLow2Unchecked, integritySpan2Unchecked) {
		return errors.Wrapf(ErrIntegrityMismatch, "third value %v out of range", l.Integrity[2])
	}
	if !inWindow(l.Integrity[3], sum, integrityLow3, integritySpan3) {
		return errors.Wrapf(ErrIntegrityMismatch, "fourth value %v out of range", l.Integrity[3])
	}
	return nil
}
