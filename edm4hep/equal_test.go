package edm4hep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"edm4hep2lcio/edm4hep"
)

func TestEqualTrack(t *testing.T) {
	base := edm4hep.Track{
		Type: 1, Chi2: 2.5, Ndf: 3,
		TrackStates: []edm4hep.TrackState{{Location: 1, D0: 0.5}},
	}

	same := base
	same.TrackStates = []edm4hep.TrackState{{Location: 1, D0: 0.5}}
	assert.True(t, edm4hep.EqualTrack(base, same))

	moreStates := base
	moreStates.TrackStates = append([]edm4hep.TrackState{}, base.TrackStates[0], edm4hep.TrackState{})
	assert.False(t, edm4hep.EqualTrack(base, moreStates))

	otherState := base
	otherState.TrackStates = []edm4hep.TrackState{{Location: 2, D0: 0.5}}
	assert.False(t, edm4hep.EqualTrack(base, otherState))
}

func TestEqualParticleID(t *testing.T) {
	a := edm4hep.ParticleID{PDG: 211, Likelihood: 0.7, Parameters: []float32{1, 2}}
	b := edm4hep.ParticleID{PDG: 211, Likelihood: 0.7, Parameters: []float32{1, 2}}
	assert.True(t, edm4hep.EqualParticleID(a, b))

	b.Parameters = []float32{2, 1}
	assert.False(t, edm4hep.EqualParticleID(a, b), "parameter order matters")

	b.Parameters = nil
	a.Parameters = []float32{}
	assert.True(t, edm4hep.EqualParticleID(a, b), "nil and empty parameter lists are equal")
}

func TestEqualIsReflexiveWithNaN(t *testing.T) {
	nan := float32(math.NaN())

	pid := edm4hep.ParticleID{Likelihood: nan, Parameters: []float32{1, nan}}
	assert.True(t, edm4hep.EqualParticleID(pid, pid))

	other := pid
	other.Parameters = []float32{1, 2}
	assert.False(t, edm4hep.EqualParticleID(pid, other))

	var state edm4hep.TrackState
	state.CovMatrix[3] = nan
	state.ReferencePoint[1] = nan

	track := edm4hep.Track{Chi2: nan, TrackStates: []edm4hep.TrackState{state}}
	assert.True(t, edm4hep.EqualTrack(track, track))

	copied := track
	copied.TrackStates = []edm4hep.TrackState{state}
	assert.True(t, edm4hep.EqualTrack(track, copied))
}

func TestEqualSignedZeroDiffers(t *testing.T) {
	a := edm4hep.TrackState{D0: 0}
	b := edm4hep.TrackState{D0: float32(math.Copysign(0, -1))}
	assert.False(t, edm4hep.EqualTrackState(a, b))
}
