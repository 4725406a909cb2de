package convert

import (
	"edm4hep2lcio/internal/diagnostic"
)

// Dispatch runs the converters for reqs in order and returns the session
// holding the results. A triple that fails (unrecognized type, missing
// collection) is reported in the session diagnostics and skipped; earlier
// conversions are kept.
//
// Track and ParticleID requests must precede the ReconstructedParticle
// requests that refer to them; otherwise those references stay unlinked.
func (c *Converter) Dispatch(p Provider, reqs []Request) *Session {
	s := newSession(c.logger)

	for _, req := range reqs {
		c.dispatch(p, s, req)
	}

	return s
}

func (c *Converter) dispatch(p Provider, s *Session, req Request) {
	var err error

	switch req.Kind {
	case KindTrack:
		err = c.convertTracks(p, s, req.Collection)
	case KindParticleID:
		err = c.convertParticleIDs(p, s, req.Collection)
	case KindReconstructedParticle:
		err = c.convertReconstructedParticles(p, s, req.Collection)
	default:
		c.reportUnrecognized(s, req)
		return
	}

	if err != nil {
		s.log.LogMissingCollection(req.Kind.String(), req.Collection, err)
		s.Diagnostics.AddError(diagnostic.CodeCollectionNotFound, err.Error(), req.TypeName, req.Collection)
	}
}

func (c *Converter) reportUnrecognized(s *Session, req Request) {
	suggestion, ok := SuggestTypeName(req.TypeName)

	s.log.LogUnrecognized(req.TypeName, req.Collection, suggestion)

	d := s.Diagnostics.AddError(diagnostic.CodeUnrecognizedType,
		"error trying to convert requested type", req.TypeName, req.Collection)
	if ok {
		d.Suggestions = []string{suggestion}
	}
}
