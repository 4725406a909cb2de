package convert

import (
	"github.com/google/uuid"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/arena"
	"edm4hep2lcio/internal/diagnostic"
	"edm4hep2lcio/internal/logging"
	"edm4hep2lcio/lcio"
)

// Session is the state of one conversion request. Destination objects
// live in per-kind arenas until the event takes them over; association
// lists refer to them by handle.
type Session struct {
	ID          string
	Diagnostics diagnostic.Diagnostics

	tracks      arena.Arena[lcio.Track]
	particleIDs arena.Arena[lcio.ParticleID]
	particles   arena.Arena[lcio.ReconstructedParticle]
	vertices    arena.Arena[lcio.Vertex]

	trackList      AssociationList[edm4hep.Track]
	particleIDList AssociationList[edm4hep.ParticleID]
	particleList   AssociationList[edm4hep.ReconstructedParticle]

	log *logging.Logger
}

func newSession(log *logging.Logger) *Session {
	id := uuid.NewString()

	return &Session{
		ID:  id,
		log: log.WithRequest(id),
	}
}

// TrackAssociations returns the Track association list.
func (s *Session) TrackAssociations() *AssociationList[edm4hep.Track] {
	return &s.trackList
}

// ParticleIDAssociations returns the ParticleID association list.
func (s *Session) ParticleIDAssociations() *AssociationList[edm4hep.ParticleID] {
	return &s.particleIDList
}

// ReconstructedParticleAssociations returns the ReconstructedParticle
// association list.
func (s *Session) ReconstructedParticleAssociations() *AssociationList[edm4hep.ReconstructedParticle] {
	return &s.particleList
}

// Tracks returns converted tracks in association order.
func (s *Session) Tracks() []*lcio.Track {
	return resolveAll(&s.tracks, &s.trackList)
}

// ParticleIDs returns converted particle IDs in association order.
func (s *Session) ParticleIDs() []*lcio.ParticleID {
	return resolveAll(&s.particleIDs, &s.particleIDList)
}

// ReconstructedParticles returns converted reconstructed particles in
// association order, placeholders included.
func (s *Session) ReconstructedParticles() []*lcio.ReconstructedParticle {
	return resolveAll(&s.particles, &s.particleList)
}

// reportUnresolved records a reference that found no converted
// counterpart. The reference stays unlinked.
func (s *Session) reportUnresolved(kind EntityKind, ref edm4hep.ObjectID) {
	s.log.LogUnresolved(kind.String(), ref.String())
	s.Diagnostics.AddWarning(diagnostic.CodeUnresolvedReference,
		"reference left unlinked: "+ref.String(), kind.String(), ref.Collection)
}

// Release drops every object built during the session.
func (s *Session) Release() {
	s.trackList.release()
	s.particleIDList.release()
	s.particleList.release()

	s.tracks.Release()
	s.particleIDs.Release()
	s.particles.Release()
	s.vertices.Release()
}

func resolveAll[D, S any](a *arena.Arena[D], list *AssociationList[S]) []*D {
	out := make([]*D, 0, list.Len())
	for _, assoc := range list.Entries() {
		out = append(out, a.Get(assoc.Dest))
	}

	return out
}
