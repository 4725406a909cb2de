package edm4hep

import "fmt"

// ObjectID addresses one record inside a named collection.
type ObjectID struct {
	Collection string `yaml:"collection"`
	Index      int    `yaml:"index"`
}

// String returns "collection#index".
func (id ObjectID) String() string {
	return fmt.Sprintf("%s#%d", id.Collection, id.Index)
}

// TrackState is a track parametrisation at a given location.
type TrackState struct {
	Location  int32   `yaml:"location"`
	D0        float32 `yaml:"d0"`
	Phi       float32 `yaml:"phi"`
	Omega     float32 `yaml:"omega"`
	Z0        float32 `yaml:"z0"`
	TanLambda float32 `yaml:"tanLambda"`
	// CovMatrix is the 5x5 symmetric covariance of (D0, Phi, Omega, Z0,
	// TanLambda), packed as the upper triangle in row-major order.
	CovMatrix      [15]float32 `yaml:"covMatrix"`
	ReferencePoint [3]float32  `yaml:"referencePoint"`
}

// Track is a reconstructed track with its ordered track states.
type Track struct {
	Type                 int32        `yaml:"type"`
	Chi2                 float32      `yaml:"chi2"`
	Ndf                  int32        `yaml:"ndf"`
	DEdx                 float32      `yaml:"dEdx"`
	DEdxError            float32      `yaml:"dEdxError"`
	RadiusOfInnermostHit float32      `yaml:"radiusOfInnermostHit"`
	TrackStates          []TrackState `yaml:"trackStates"`
}

// ParticleID is the output of a particle identification algorithm.
type ParticleID struct {
	Type          int32     `yaml:"type"`
	PDG           int32     `yaml:"pdg"`
	Likelihood    float32   `yaml:"likelihood"`
	AlgorithmType int32     `yaml:"algorithmType"`
	Parameters    []float32 `yaml:"parameters"`
}

// ReconstructedParticle is a particle candidate built from tracks and
// optionally identified by a ParticleID.
type ReconstructedParticle struct {
	Type     int32      `yaml:"type"`
	Momentum [3]float32 `yaml:"momentum"`
	Energy   float32    `yaml:"energy"`
	Mass     float32    `yaml:"mass"`
	Charge   float32    `yaml:"charge"`
	// CovMatrix is the 4x4 covariance of (px, py, pz, E) packed as the
	// lower triangle in row-major order.
	CovMatrix      [10]float32 `yaml:"covMatrix"`
	ReferencePoint [3]float32  `yaml:"referencePoint"`
	GoodnessOfPID  float32     `yaml:"goodnessOfPID"`

	ParticleIDUsed *ObjectID  `yaml:"particleIDUsed"`
	StartVertex    *ObjectID  `yaml:"startVertex"`
	Tracks         []ObjectID `yaml:"tracks"`
}

// Vertex is a reconstructed vertex.
type Vertex struct {
	Primary       bool       `yaml:"primary"`
	AlgorithmType int32      `yaml:"algorithmType"`
	Chi2          float32    `yaml:"chi2"`
	Probability   float32    `yaml:"probability"`
	Position      [3]float32 `yaml:"position"`
	// CovMatrix is a 4x4 symmetric covariance packed as the lower triangle.
	CovMatrix          [10]float32 `yaml:"covMatrix"`
	AssociatedParticle *ObjectID   `yaml:"associatedParticle"`
}
