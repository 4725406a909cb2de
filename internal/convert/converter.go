package convert

import (
	"errors"
	"fmt"
	"time"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/diagnostic"
	"edm4hep2lcio/internal/logging"
	"edm4hep2lcio/internal/metrics"
	"edm4hep2lcio/lcio"
)

const (
	// DefaultEventKey is where the assembled event is registered.
	DefaultEventKey = "/Event/LCEvent"
	// DefaultRunNumber is stamped on every assembled event.
	DefaultRunNumber = 1
)

// ErrStoreRegistration wraps a failure of the store to accept the event.
var ErrStoreRegistration = errors.New("failed to store the converted event")

// Provider supplies source collections by name and dereferences source
// references. *edm4hep.Event implements it.
type Provider interface {
	Tracks(name string) (*edm4hep.Collection[edm4hep.Track], error)
	ParticleIDs(name string) (*edm4hep.Collection[edm4hep.ParticleID], error)
	ReconstructedParticles(name string) (*edm4hep.Collection[edm4hep.ReconstructedParticle], error)

	Track(id edm4hep.ObjectID) (edm4hep.Track, bool)
	ParticleID(id edm4hep.ObjectID) (edm4hep.ParticleID, bool)
	Vertex(id edm4hep.ObjectID) (edm4hep.Vertex, bool)
}

// Store receives the assembled event.
type Store interface {
	Register(key string, ev *lcio.Event) error
}

// Converter runs conversion requests. It holds configuration only; all
// per-request state lives in a Session, so a Converter may be reused.
type Converter struct {
	store   Store
	logger  *logging.Logger
	metrics *metrics.Recorder
	clock   func() time.Time

	runNumber        int32
	eventKey         string
	resolution       ResolutionMode
	trackCovariance  TrackCovarianceMode
	vertexAlgorithms map[int32]string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *logging.Logger) Option {
	return func(c *Converter) {
		if l == nil {
			l = logging.NoopLogger()
		}
		c.logger = l
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// WithClock sets the clock used for the event timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithRunNumber sets the run number stamped on the event.
func WithRunNumber(n int32) Option {
	return func(c *Converter) {
		c.runNumber = n
	}
}

// WithEventKey sets the store key of the event.
func WithEventKey(key string) Option {
	return func(c *Converter) {
		if key != "" {
			c.eventKey = key
		}
	}
}

// WithResolution sets the reference resolution mode.
func WithResolution(m ResolutionMode) Option {
	return func(c *Converter) {
		c.resolution = m
	}
}

// WithTrackCovariance sets how track state covariances are carried over.
func WithTrackCovariance(m TrackCovarianceMode) Option {
	return func(c *Converter) {
		c.trackCovariance = m
	}
}

// WithVertexAlgorithms sets names for vertex algorithm codes. Codes
// missing from the table are written as decimal numbers.
func WithVertexAlgorithms(names map[int32]string) Option {
	return func(c *Converter) {
		c.vertexAlgorithms = names
	}
}

// New creates a Converter registering its events in store.
func New(store Store, opts ...Option) *Converter {
	if store == nil {
		panic("convert: store cannot be nil")
	}

	c := &Converter{
		store:     store,
		logger:    logging.NoopLogger(),
		clock:     time.Now,
		runNumber: DefaultRunNumber,
		eventKey:  DefaultEventKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Result is the outcome of a successful Convert.
type Result struct {
	Event       *lcio.Event
	Session     *Session
	Diagnostics diagnostic.Diagnostics
}

// Convert runs a whole request: validation, conversion of every triple,
// assembly and registration. Problems with single triples end up in the
// result diagnostics; only a malformed request or a store failure is
// returned as an error.
func (c *Converter) Convert(p Provider, tokens []string) (*Result, error) {
	c.logger.Info("converting EDM4hep to LCIO requested collections")

	reqs, err := ParseRequests(tokens)
	if err != nil {
		c.logger.Error("rejected conversion request", "error", err)
		c.metrics.Request(metrics.StatusMalformed)

		return nil, err
	}

	s := c.Dispatch(p, reqs)

	ev, err := c.Assemble(s)
	if err != nil {
		s.Release()
		return nil, err
	}

	s.log.Info("registering converted EDM4hep to LCIO event", "key", c.eventKey)

	if err := c.store.Register(c.eventKey, ev); err != nil {
		s.log.LogRegistration(c.eventKey, err)
		s.Release()
		c.metrics.Request(metrics.StatusStoreFailed)

		return nil, fmt.Errorf("%w: %w", ErrStoreRegistration, err)
	}

	s.log.LogRegistration(c.eventKey, nil)
	c.metrics.Request(metrics.StatusOK)

	return &Result{
		Event:       ev,
		Session:     s,
		Diagnostics: s.Diagnostics,
	}, nil
}

// countObject records one destination object, telling conversions of
// available records apart from placeholders.
func (c *Converter) countObject(kind string, available bool) {
	if available {
		c.metrics.ObjectConverted(kind)
		return
	}

	c.metrics.PlaceholderCreated(kind)
}
