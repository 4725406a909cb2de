package lcio

// Collection type names.
const (
	TypeTrack                 = "Track"
	TypeTrackState            = "TrackState"
	TypeParticleID            = "ParticleID"
	TypeReconstructedParticle = "ReconstructedParticle"
	TypeVertex                = "Vertex"
)

// TrackState is a track parametrisation at a given location.
type TrackState struct {
	Location  int32   `yaml:"location"`
	D0        float32 `yaml:"d0"`
	Phi       float32 `yaml:"phi"`
	Omega     float32 `yaml:"omega"`
	Z0        float32 `yaml:"z0"`
	TanLambda float32 `yaml:"tanLambda"`
	// CovMatrix is the 5x5 covariance packed as the lower triangle,
	// row-major: slots 0, 2, 5, 9 and 14 hold the variances.
	CovMatrix      [15]float32 `yaml:"covMatrix"`
	ReferencePoint [3]float32  `yaml:"referencePoint"`
}

// Track is a reconstructed track.
type Track struct {
	Type                 int32         `yaml:"type"`
	Chi2                 float32       `yaml:"chi2"`
	Ndf                  int32         `yaml:"ndf"`
	DEdx                 float32       `yaml:"dEdx"`
	DEdxError            float32       `yaml:"dEdxError"`
	RadiusOfInnermostHit float32       `yaml:"radiusOfInnermostHit"`
	TrackStates          []*TrackState `yaml:"trackStates"`
}

// AddTrackState appends a track state.
func (t *Track) AddTrackState(ts *TrackState) {
	t.TrackStates = append(t.TrackStates, ts)
}

// ParticleID is the result of a particle identification algorithm.
type ParticleID struct {
	Type          int32     `yaml:"type"`
	PDG           int32     `yaml:"pdg"`
	Likelihood    float32   `yaml:"likelihood"`
	AlgorithmType int32     `yaml:"algorithmType"`
	Parameters    []float32 `yaml:"parameters"`
}

// AddParameter appends one algorithm parameter.
func (p *ParticleID) AddParameter(v float32) {
	p.Parameters = append(p.Parameters, v)
}

// Vertex is a reconstructed vertex.
type Vertex struct {
	Primary       bool       `yaml:"primary"`
	AlgorithmType string     `yaml:"algorithmType"`
	Chi2          float32    `yaml:"chi2"`
	Probability   float32    `yaml:"probability"`
	Position      [3]float32 `yaml:"position"`
	// CovMatrix is packed as the lower triangle, row-major.
	CovMatrix          [10]float32            `yaml:"covMatrix"`
	AssociatedParticle *ReconstructedParticle `yaml:"-"`
}

// ReconstructedParticle is a particle candidate. The zero value is the
// empty placeholder written for unavailable source particles.
type ReconstructedParticle struct {
	Type     int32      `yaml:"type"`
	Momentum [3]float32 `yaml:"momentum"`
	Energy   float32    `yaml:"energy"`
	// CovMatrix is the (px, py, pz, E) covariance packed as the lower
	// triangle, row-major.
	CovMatrix      [10]float32 `yaml:"covMatrix"`
	Mass           float32     `yaml:"mass"`
	Charge         float32     `yaml:"charge"`
	ReferencePoint [3]float32  `yaml:"referencePoint"`
	GoodnessOfPID  float32     `yaml:"goodnessOfPID"`

	ParticleIDUsed *ParticleID `yaml:"particleIDUsed,omitempty"`
	StartVertex    *Vertex     `yaml:"startVertex,omitempty"`
	Tracks         []*Track    `yaml:"tracks,omitempty"`
}

// AddTrack links a track.
func (p *ReconstructedParticle) AddTrack(t *Track) {
	p.Tracks = append(p.Tracks, t)
}
