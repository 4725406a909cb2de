package edm4hep

import (
	"errors"
	"fmt"
)

var (
	// ErrCollectionNotFound is returned when no collection of the requested
	// kind is registered under a name.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrDuplicateCollection is returned when a name is already taken.
	ErrDuplicateCollection = errors.New("duplicate collection name")
)

// Event is a set of named source collections. It resolves ObjectIDs to
// records and hands out collections by kind and name.
type Event struct {
	tracks      map[string]*Collection[Track]
	particleIDs map[string]*Collection[ParticleID]
	particles   map[string]*Collection[ReconstructedParticle]
	vertices    map[string]*Collection[Vertex]
	names       map[string]struct{}
}

// NewEvent creates an empty event.
func NewEvent() *Event {
	return &Event{
		tracks:      make(map[string]*Collection[Track]),
		particleIDs: make(map[string]*Collection[ParticleID]),
		particles:   make(map[string]*Collection[ReconstructedParticle]),
		vertices:    make(map[string]*Collection[Vertex]),
		names:       make(map[string]struct{}),
	}
}

func (e *Event) claim(name string) error {
	if _, taken := e.names[name]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateCollection, name)
	}

	e.names[name] = struct{}{}

	return nil
}

// AddTracks registers a track collection.
func (e *Event) AddTracks(c *Collection[Track]) error {
	if err := e.claim(c.Name()); err != nil {
		return err
	}

	e.tracks[c.Name()] = c

	return nil
}

// AddParticleIDs registers a particle ID collection.
func (e *Event) AddParticleIDs(c *Collection[ParticleID]) error {
	if err := e.claim(c.Name()); err != nil {
		return err
	}

	e.particleIDs[c.Name()] = c

	return nil
}

// AddReconstructedParticles registers a reconstructed particle collection.
func (e *Event) AddReconstructedParticles(c *Collection[ReconstructedParticle]) error {
	if err := e.claim(c.Name()); err != nil {
		return err
	}

	e.particles[c.Name()] = c

	return nil
}

// AddVertices registers a vertex collection.
func (e *Event) AddVertices(c *Collection[Vertex]) error {
	if err := e.claim(c.Name()); err != nil {
		return err
	}

	e.vertices[c.Name()] = c

	return nil
}

// Tracks returns the track collection registered under name.
func (e *Event) Tracks(name string) (*Collection[Track], error) {
	return lookup(e.tracks, "Track", name)
}

// ParticleIDs returns the particle ID collection registered under name.
func (e *Event) ParticleIDs(name string) (*Collection[ParticleID], error) {
	return lookup(e.particleIDs, "ParticleID", name)
}

// ReconstructedParticles returns the reconstructed particle collection
// registered under name.
func (e *Event) ReconstructedParticles(name string) (*Collection[ReconstructedParticle], error) {
	return lookup(e.particles, "ReconstructedParticle", name)
}

// Track dereferences id. It reports false for unknown collections,
// out-of-range indices and unavailable slots.
func (e *Event) Track(id ObjectID) (Track, bool) {
	return deref(e.tracks, id)
}

// ParticleID dereferences id.
func (e *Event) ParticleID(id ObjectID) (ParticleID, bool) {
	return deref(e.particleIDs, id)
}

// Vertex dereferences id.
func (e *Event) Vertex(id ObjectID) (Vertex, bool) {
	return deref(e.vertices, id)
}

func lookup[T any](m map[string]*Collection[T], kind, name string) (*Collection[T], error) {
	c, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s collection %q", ErrCollectionNotFound, kind, name)
	}

	return c, nil
}

func deref[T any](m map[string]*Collection[T], id ObjectID) (T, bool) {
	c, ok := m[id.Collection]
	if !ok {
		var zero T
		return zero, false
	}

	return c.At(id.Index)
}
