package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/lcio"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// recordingStore accepts every event and remembers the last one.
type recordingStore struct {
	key   string
	event *lcio.Event
	calls int
}

func (r *recordingStore) Register(key string, ev *lcio.Event) error {
	r.key, r.event = key, ev
	r.calls++

	return nil
}

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Register(string, *lcio.Event) error { return errStoreDown }

func newTestConverter(opts ...Option) (*Converter, *recordingStore) {
	st := &recordingStore{}
	opts = append([]Option{WithClock(fixedClock)}, opts...)

	return New(st, opts...), st
}

func sampleTrack(seed float32) edm4hep.Track {
	var cov [15]float32
	for i := range cov {
		cov[i] = seed + float32(i+1)
	}

	return edm4hep.Track{
		Type:                 int32(seed),
		Chi2:                 seed * 2,
		Ndf:                  int32(seed) + 3,
		DEdx:                 seed / 10,
		DEdxError:            seed / 100,
		RadiusOfInnermostHit: seed + 0.5,
		TrackStates: []edm4hep.TrackState{
			{
				Location: 1, D0: seed + 0.1, Phi: seed + 0.2, Omega: seed + 0.3, Z0: seed + 0.4, TanLambda: seed + 0.5,
				CovMatrix:      cov,
				ReferencePoint: [3]float32{seed, seed + 1, seed + 2},
			},
			{Location: 2, D0: seed},
		},
	}
}

func ref(id edm4hep.ObjectID) *edm4hep.ObjectID { return &id }

// scenarioEvent has two tracks, one particle ID and one reconstructed
// particle referencing the particle ID and the second track.
func scenarioEvent(t *testing.T) *edm4hep.Event {
	t.Helper()

	ev := edm4hep.NewEvent()

	tracks := edm4hep.NewCollection("Tracks", sampleTrack(1), sampleTrack(2))
	pids := edm4hep.NewCollection("PIDs", edm4hep.ParticleID{PDG: 11, Likelihood: 0.9, Parameters: []float32{1, 2, 3}})
	vertices := edm4hep.NewCollection("Vertices", edm4hep.Vertex{Primary: true, AlgorithmType: 3})
	rps := edm4hep.NewCollection("RPs", edm4hep.ReconstructedParticle{
		Type:           11,
		Energy:         5,
		ParticleIDUsed: ref(pids.ID(0)),
		StartVertex:    ref(vertices.ID(0)),
		Tracks:         []edm4hep.ObjectID{tracks.ID(1)},
	})

	require.NoError(t, ev.AddTracks(tracks))
	require.NoError(t, ev.AddParticleIDs(pids))
	require.NoError(t, ev.AddVertices(vertices))
	require.NoError(t, ev.AddReconstructedParticles(rps))

	return ev
}

func triples(ts ...[3]string) []string {
	var out []string
	for _, t := range ts {
		out = append(out, t[0], t[1], t[2])
	}

	return out
}
