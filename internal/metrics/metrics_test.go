package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObjectConverted("Track")
	r.ObjectConverted("Track")
	r.PlaceholderCreated("Track")
	r.ReferenceUnresolved("ParticleID")
	r.Request(StatusOK)

	assert.InDelta(t, 2, testutil.ToFloat64(r.Converted.WithLabelValues("Track")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Placeholders.WithLabelValues("Track")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Unresolved.WithLabelValues("ParticleID")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Requests.WithLabelValues(StatusOK)), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.ObjectConverted("Track")
		r.PlaceholderCreated("Track")
		r.ReferenceUnresolved("Track")
		r.Request(StatusStoreFailed)
	})
}
