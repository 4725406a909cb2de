package convert

import (
	"edm4hep2lcio/lcio"
)

// Assemble builds the destination event from a session: one Track and one
// ReconstructedParticle collection in association order, stamped with the
// run number and the current time. Particle IDs and vertices are reachable
// only through the particles that link them.
func (c *Converter) Assemble(s *Session) (*lcio.Event, error) {
	ev := lcio.NewEvent()
	ev.RunNumber = c.runNumber
	ev.TimeStamp = c.clock().UnixNano()

	tracks := lcio.NewCollection[lcio.Track](lcio.TypeTrack)
	for _, tr := range s.Tracks() {
		tracks.AddElement(tr)
	}

	if err := ev.AddCollection(lcio.TypeTrack, tracks); err != nil {
		return nil, err
	}

	particles := lcio.NewCollection[lcio.ReconstructedParticle](lcio.TypeReconstructedParticle)
	for _, rp := range s.ReconstructedParticles() {
		particles.AddElement(rp)
	}

	if err := ev.AddCollection(lcio.TypeReconstructedParticle, particles); err != nil {
		return nil, err
	}

	return ev, nil
}
