package edm4hep

import (
	"math"
	"slices"
)

// Structural equality compares records field by field. Floating point
// fields compare by bit pattern, so every record equals itself even when
// it holds a NaN, and 0 and -0 differ.

// EqualTrackState reports whether two track states hold the same values.
func EqualTrackState(a, b TrackState) bool {
	return a.Location == b.Location &&
		sameFloat(a.D0, b.D0) &&
		sameFloat(a.Phi, b.Phi) &&
		sameFloat(a.Omega, b.Omega) &&
		sameFloat(a.Z0, b.Z0) &&
		sameFloat(a.TanLambda, b.TanLambda) &&
		slices.EqualFunc(a.CovMatrix[:], b.CovMatrix[:], sameFloat) &&
		slices.EqualFunc(a.ReferencePoint[:], b.ReferencePoint[:], sameFloat)
}

// EqualTrack reports whether two tracks hold the same values, track states
// included.
func EqualTrack(a, b Track) bool {
	return a.Type == b.Type &&
		sameFloat(a.Chi2, b.Chi2) &&
		a.Ndf == b.Ndf &&
		sameFloat(a.DEdx, b.DEdx) &&
		sameFloat(a.DEdxError, b.DEdxError) &&
		sameFloat(a.RadiusOfInnermostHit, b.RadiusOfInnermostHit) &&
		slices.EqualFunc(a.TrackStates, b.TrackStates, EqualTrackState)
}

// EqualParticleID reports whether two particle IDs hold the same values.
func EqualParticleID(a, b ParticleID) bool {
	return a.Type == b.Type &&
		a.PDG == b.PDG &&
		sameFloat(a.Likelihood, b.Likelihood) &&
		a.AlgorithmType == b.AlgorithmType &&
		slices.EqualFunc(a.Parameters, b.Parameters, sameFloat)
}

func sameFloat(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}
