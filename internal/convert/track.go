package convert

import (
	"fmt"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/covariance"
	"edm4hep2lcio/lcio"
)

const trackParams = 5

// TrackCovarianceMode selects which track state covariance terms are
// carried over.
type TrackCovarianceMode int

const (
	// TrackCovarianceDiagonal keeps the five variances and zeroes the rest.
	TrackCovarianceDiagonal TrackCovarianceMode = iota
	// TrackCovarianceFull keeps all fifteen terms.
	TrackCovarianceFull
)

// String returns the configuration name of the mode.
func (m TrackCovarianceMode) String() string {
	switch m {
	case TrackCovarianceDiagonal:
		return "diagonal"
	case TrackCovarianceFull:
		return "full"
	default:
		return fmt.Sprintf("TrackCovarianceMode(%d)", int(m))
	}
}

// ParseTrackCovarianceMode parses "diagonal" or "full". Empty means
// diagonal.
func ParseTrackCovarianceMode(s string) (TrackCovarianceMode, error) {
	switch s {
	case "", "diagonal":
		return TrackCovarianceDiagonal, nil
	case "full":
		return TrackCovarianceFull, nil
	default:
		return 0, fmt.Errorf("unknown track covariance mode %q", s)
	}
}

// convertTracks converts every slot of a track collection, appending to the
// session's track association list in source order.
func (c *Converter) convertTracks(p Provider, s *Session, name string) error {
	coll, err := p.Tracks(name)
	if err != nil {
		return err
	}

	for i := 0; i < coll.Len(); i++ {
		h, dst := s.tracks.New()

		src, ok := coll.At(i)
		if ok {
			c.fillTrack(dst, src)
		}

		s.trackList.Append(Association[edm4hep.Track]{
			Dest:      h,
			Source:    src,
			SourceID:  coll.ID(i),
			Available: ok,
		})
		c.countObject(lcio.TypeTrack, ok)
	}

	s.log.LogCollection(KindTrack.String(), name, coll.Len())

	return nil
}

func (c *Converter) fillTrack(dst *lcio.Track, src edm4hep.Track) {
	dst.Type = src.Type
	dst.Chi2 = src.Chi2
	dst.Ndf = src.Ndf
	dst.DEdx = src.DEdx
	dst.DEdxError = src.DEdxError
	dst.RadiusOfInnermostHit = src.RadiusOfInnermostHit

	for _, st := range src.TrackStates {
		dst.AddTrackState(c.convertTrackState(st))
		c.metrics.ObjectConverted(lcio.TypeTrackState)
	}
}

// convertTrackState repacks the covariance from the source upper triangle
// into the destination lower triangle. In diagonal mode only the variances
// survive.
func (c *Converter) convertTrackState(src edm4hep.TrackState) *lcio.TrackState {
	ts := &lcio.TrackState{
		Location:       src.Location,
		D0:             src.D0,
		Phi:            src.Phi,
		Omega:          src.Omega,
		Z0:             src.Z0,
		TanLambda:      src.TanLambda,
		ReferencePoint: src.ReferencePoint,
	}

	cov := covariance.FromUpper(trackParams, src.CovMatrix[:])
	if c.trackCovariance == TrackCovarianceDiagonal {
		cov = covariance.Diagonal(cov)
	}

	covariance.ToLower(cov, ts.CovMatrix[:])

	return ts
}
