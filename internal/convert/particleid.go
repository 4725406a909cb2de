package convert

import (
	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/lcio"
)

func (c *Converter) convertParticleIDs(p Provider, s *Session, name string) error {
	coll, err := p.ParticleIDs(name)
	if err != nil {
		return err
	}

	for i := 0; i < coll.Len(); i++ {
		h, dst := s.particleIDs.New()

		src, ok := coll.At(i)
		if ok {
			dst.Type = src.Type
			dst.PDG = src.PDG
			dst.Likelihood = src.Likelihood
			dst.AlgorithmType = src.AlgorithmType

			for _, v := range src.Parameters {
				dst.AddParameter(v)
			}
		}

		s.particleIDList.Append(Association[edm4hep.ParticleID]{
			Dest:      h,
			Source:    src,
			SourceID:  coll.ID(i),
			Available: ok,
		})
		c.countObject(lcio.TypeParticleID, ok)
	}

	s.log.LogCollection(KindParticleID.String(), name, coll.Len())

	return nil
}
