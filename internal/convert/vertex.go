package convert

import (
	"strconv"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/covariance"
	"edm4hep2lcio/internal/diagnostic"
	"edm4hep2lcio/lcio"
)

const vertexCovDim = 4

// convertVertex builds a new destination vertex for one particle. The
// vertex's associated particle is not linked.
func (c *Converter) convertVertex(s *Session, src edm4hep.Vertex) *lcio.Vertex {
	_, dst := s.vertices.New()

	dst.Primary = src.Primary
	dst.AlgorithmType = c.vertexAlgorithm(src.AlgorithmType)
	dst.Chi2 = src.Chi2
	dst.Probability = src.Probability
	dst.Position = src.Position
	covariance.ToLower(covariance.FromLower(vertexCovDim, src.CovMatrix[:]), dst.CovMatrix[:])

	if ref := src.AssociatedParticle; ref != nil {
		s.log.Debug("vertex associated particle left unlinked", "ref", ref.String())
		s.Diagnostics.AddInfo(diagnostic.CodeUnlinkedReference,
			"vertex associated particle left unlinked: "+ref.String(), lcio.TypeVertex, ref.Collection)
	}

	c.metrics.ObjectConverted(lcio.TypeVertex)

	return dst
}

// vertexAlgorithm names an algorithm code from the configured table, or
// writes the code as a decimal number.
func (c *Converter) vertexAlgorithm(code int32) string {
	if name, ok := c.vertexAlgorithms[code]; ok {
		return name
	}

	return strconv.Itoa(int(code))
}
