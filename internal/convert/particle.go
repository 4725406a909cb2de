package convert

import (
	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/covariance"
	"edm4hep2lcio/lcio"
)

const fourVector = 4

// convertReconstructedParticles converts every slot of a reconstructed
// particle collection. Unavailable slots still yield an empty placeholder
// so that positions match the source.
func (c *Converter) convertReconstructedParticles(p Provider, s *Session, name string) error {
	coll, err := p.ReconstructedParticles(name)
	if err != nil {
		return err
	}

	for i := 0; i < coll.Len(); i++ {
		h, dst := s.particles.New()

		src, ok := coll.At(i)
		if ok {
			c.fillReconstructedParticle(p, s, dst, src)
		}

		s.particleList.Append(Association[edm4hep.ReconstructedParticle]{
			Dest:      h,
			Source:    src,
			SourceID:  coll.ID(i),
			Available: ok,
		})
		c.countObject(lcio.TypeReconstructedParticle, ok)
	}

	s.log.LogCollection(KindReconstructedParticle.String(), name, coll.Len())

	return nil
}

func (c *Converter) fillReconstructedParticle(p Provider, s *Session, dst *lcio.ReconstructedParticle, src edm4hep.ReconstructedParticle) {
	dst.Type = src.Type
	dst.Momentum = src.Momentum
	dst.Energy = src.Energy
	// both models pack the 4-vector covariance as a row-major lower triangle
	covariance.ToLower(covariance.FromLower(fourVector, src.CovMatrix[:]), dst.CovMatrix[:])
	dst.Mass = src.Mass
	dst.Charge = src.Charge
	dst.ReferencePoint = src.ReferencePoint
	dst.GoodnessOfPID = src.GoodnessOfPID

	if ref := src.ParticleIDUsed; ref != nil {
		c.linkParticleIDUsed(p, s, dst, *ref)
	}

	if ref := src.StartVertex; ref != nil {
		if vtx, ok := p.Vertex(*ref); ok {
			dst.StartVertex = c.convertVertex(s, vtx)
		}
	}

	for _, ref := range src.Tracks {
		c.linkTracks(p, s, dst, ref)
	}
}

// linkParticleIDUsed links the first converted particle ID matching ref.
func (c *Converter) linkParticleIDUsed(p Provider, s *Session, dst *lcio.ReconstructedParticle, ref edm4hep.ObjectID) {
	target, ok := p.ParticleID(ref)
	if !ok {
		return
	}

	r := resolver[edm4hep.ParticleID]{mode: c.resolution, equal: edm4hep.EqualParticleID}

	h, found := r.First(&s.particleIDList, ref, target)
	if !found {
		s.reportUnresolved(KindParticleID, ref)
		c.metrics.ReferenceUnresolved(lcio.TypeParticleID)

		return
	}

	dst.ParticleIDUsed = s.particleIDs.Get(h)
}

// linkTracks links every converted track matching ref. By value, equal
// duplicates all get linked.
func (c *Converter) linkTracks(p Provider, s *Session, dst *lcio.ReconstructedParticle, ref edm4hep.ObjectID) {
	target, ok := p.Track(ref)
	if !ok {
		return
	}

	r := resolver[edm4hep.Track]{mode: c.resolution, equal: edm4hep.EqualTrack}

	handles := r.All(&s.trackList, ref, target)
	if len(handles) == 0 {
		s.reportUnresolved(KindTrack, ref)
		c.metrics.ReferenceUnresolved(lcio.TypeTrack)

		return
	}

	for _, h := range handles {
		dst.AddTrack(s.tracks.Get(h))
	}
}
