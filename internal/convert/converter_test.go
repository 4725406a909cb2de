package convert

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/diagnostic"
	"edm4hep2lcio/internal/logging"
	"edm4hep2lcio/internal/metrics"
	"edm4hep2lcio/internal/store"
	"edm4hep2lcio/lcio"
)

func TestConvertScenario(t *testing.T) {
	c, st := newTestConverter()

	res, err := c.Convert(scenarioEvent(t), requestAll)
	require.NoError(t, err)
	require.True(t, res.Diagnostics.IsValid())

	assert.Equal(t, 1, st.calls)
	assert.Equal(t, DefaultEventKey, st.key)
	assert.Same(t, res.Event, st.event)

	ev := res.Event
	assert.Equal(t, int32(DefaultRunNumber), ev.RunNumber)
	assert.Equal(t, fixedTime.UnixNano(), ev.TimeStamp)
	assert.Equal(t, []string{lcio.TypeTrack, lcio.TypeReconstructedParticle}, ev.CollectionNames())

	tracks, err := lcio.CollectionOf[lcio.Track](ev, lcio.TypeTrack)
	require.NoError(t, err)
	require.Equal(t, 2, tracks.Len())

	rps, err := lcio.CollectionOf[lcio.ReconstructedParticle](ev, lcio.TypeReconstructedParticle)
	require.NoError(t, err)
	require.Equal(t, 1, rps.Len())

	rp := rps.Element(0)
	require.NotNil(t, rp.ParticleIDUsed)
	assert.Equal(t, int32(11), rp.ParticleIDUsed.PDG)
	assert.Same(t, res.Session.ParticleIDs()[0], rp.ParticleIDUsed)

	require.Len(t, rp.Tracks, 1)
	assert.Same(t, tracks.Element(1), rp.Tracks[0])

	require.NotNil(t, rp.StartVertex)
	assert.Equal(t, "3", rp.StartVertex.AlgorithmType)
}

func TestConvertOutOfOrderLeavesTracksUnlinked(t *testing.T) {
	c, _ := newTestConverter()

	res, err := c.Convert(scenarioEvent(t), triples(
		[3]string{"ReconstructedParticle", "RPs", "_"},
		[3]string{"Track", "Tracks", "_"},
		[3]string{"ParticleID", "PIDs", "_"},
	))
	require.NoError(t, err)

	rps, err := lcio.CollectionOf[lcio.ReconstructedParticle](res.Event, lcio.TypeReconstructedParticle)
	require.NoError(t, err)

	rp := rps.Element(0)
	assert.Empty(t, rp.Tracks)
	assert.Nil(t, rp.ParticleIDUsed)

	tracks, err := lcio.CollectionOf[lcio.Track](res.Event, lcio.TypeTrack)
	require.NoError(t, err)
	assert.Equal(t, 2, tracks.Len(), "tracks are still converted")

	assert.True(t, res.Diagnostics.IsValid())
	require.Len(t, res.Diagnostics.Warnings, 2)
	assert.Equal(t, diagnostic.CodeUnresolvedReference, res.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "ParticleID", res.Diagnostics.Warnings[0].EntityType)
	assert.Equal(t, "Track", res.Diagnostics.Warnings[1].EntityType)
	assert.Equal(t, "Tracks", res.Diagnostics.Warnings[1].Collection)
}

func TestConvertMalformedRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	c, st := newTestConverter(WithMetrics(rec))

	res, err := c.Convert(scenarioEvent(t), []string{"Track", "Tracks", "_", "ParticleID"})
	require.ErrorIs(t, err, ErrMalformedRequest)
	assert.Nil(t, res)

	assert.Zero(t, st.calls)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.Converted.WithLabelValues(lcio.TypeTrack)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Requests.WithLabelValues(metrics.StatusMalformed)), 0)
}

func TestConvertUnrecognizedTypeIsSkipped(t *testing.T) {
	var logs bytes.Buffer
	c, _ := newTestConverter(WithLogger(logging.NewTextLogger(&logs, slog.LevelDebug)))

	res, err := c.Convert(scenarioEvent(t), triples(
		[3]string{"Trak", "Tracks", "_"},
		[3]string{"Track", "Tracks", "_"},
	))
	require.NoError(t, err)

	require.Len(t, res.Diagnostics.Errors, 1)
	d, _ := res.Diagnostics.FirstError()
	assert.Equal(t, diagnostic.CodeUnrecognizedType, d.Code)
	assert.Equal(t, "Trak", d.EntityType)
	assert.Equal(t, "Tracks", d.Collection)
	assert.Equal(t, []string{"Track"}, d.Suggestions)

	assert.Len(t, res.Session.Tracks(), 2, "the following triple still runs")
	assert.Contains(t, logs.String(), "type=Trak")
}

func TestConvertMissingCollection(t *testing.T) {
	c, _ := newTestConverter()

	res, err := c.Convert(scenarioEvent(t), triples(
		[3]string{"Track", "Tracks", "_"},
		[3]string{"ParticleID", "Missing", "_"},
	))
	require.NoError(t, err)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeCollectionNotFound, res.Diagnostics.Errors[0].Code)
	assert.Len(t, res.Session.Tracks(), 2)
}

func TestConvertStoreFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	c := New(failingStore{}, WithClock(fixedClock), WithMetrics(rec))

	res, err := c.Convert(scenarioEvent(t), requestAll)
	require.ErrorIs(t, err, ErrStoreRegistration)
	require.ErrorIs(t, err, errStoreDown)
	assert.Nil(t, res)

	assert.InDelta(t, 1, testutil.ToFloat64(rec.Requests.WithLabelValues(metrics.StatusStoreFailed)), 0)
}

func TestConvertOptions(t *testing.T) {
	mem := store.NewMemory()
	c := New(mem, WithClock(fixedClock), WithRunNumber(7), WithEventKey("/Event/Custom"))

	_, err := c.Convert(scenarioEvent(t), requestAll)
	require.NoError(t, err)

	ev, err := mem.Retrieve("/Event/Custom")
	require.NoError(t, err)
	assert.Equal(t, int32(7), ev.RunNumber)

	_, err = c.Convert(scenarioEvent(t), requestAll)
	require.ErrorIs(t, err, ErrStoreRegistration)
	require.ErrorIs(t, err, store.ErrAlreadyRegistered)
}

func TestConvertSessionsAreIndependent(t *testing.T) {
	c, _ := newTestConverter()

	first, err := c.Convert(scenarioEvent(t), requestAll[:3])
	require.NoError(t, err)

	// a second request converting only particles must not see the tracks
	// converted by the first one
	second, err := c.Convert(scenarioEvent(t), requestAll[6:])
	require.NoError(t, err)

	assert.NotEqual(t, first.Session.ID, second.Session.ID)
	assert.Len(t, first.Session.Tracks(), 2)
	assert.Empty(t, second.Session.Tracks())
	assert.Empty(t, second.Session.ReconstructedParticles()[0].Tracks)
}

func TestConvertMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	c, _ := newTestConverter(WithMetrics(rec))

	ev := scenarioEvent(t)
	rps, err := ev.ReconstructedParticles("RPs")
	require.NoError(t, err)
	rps.Append(edm4hep.ReconstructedParticle{Tracks: []edm4hep.ObjectID{{Collection: "Tracks", Index: 0}}})

	// particle IDs are not requested, so the used-ID reference misses
	_, err = c.Convert(ev, triples(
		[3]string{"Track", "Tracks", "_"},
		[3]string{"ReconstructedParticle", "RPs", "_"},
	))
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(rec.Converted.WithLabelValues(lcio.TypeTrack)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.Converted.WithLabelValues(lcio.TypeReconstructedParticle)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Converted.WithLabelValues(lcio.TypeVertex)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Unresolved.WithLabelValues(lcio.TypeParticleID)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.Unresolved.WithLabelValues(lcio.TypeTrack)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.Requests.WithLabelValues(metrics.StatusOK)), 0)
}

func TestSessionRelease(t *testing.T) {
	c, _ := newTestConverter()

	s := dispatchTokens(t, c, scenarioEvent(t), requestAll)
	require.Len(t, s.Tracks(), 2)

	s.Release()

	assert.Zero(t, s.TrackAssociations().Len())
	assert.Empty(t, s.Tracks())
	assert.Empty(t, s.ReconstructedParticles())
}

func TestNewPanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestConvertNonFiniteValuesToFile(t *testing.T) {
	fs, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	track := sampleTrack(1)
	track.Chi2 = float32(math.Inf(1))
	track.TrackStates[0].CovMatrix[0] = float32(math.NaN())

	ev := edm4hep.NewEvent()
	require.NoError(t, ev.AddTracks(edm4hep.NewCollection("Tracks", track)))

	c := New(fs, WithClock(fixedClock))
	_, err = c.Convert(ev, requestAll[:3])
	require.NoError(t, err)

	snap, err := fs.Load(DefaultEventKey)
	require.NoError(t, err)

	var got []lcio.Track
	require.NoError(t, snap.Collections[0].Elements.Decode(&got))
	require.Len(t, got, 1)
	assert.True(t, math.IsInf(float64(got[0].Chi2), 1))
	assert.True(t, math.IsNaN(float64(got[0].TrackStates[0].CovMatrix[0])))
}
