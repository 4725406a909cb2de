package convert

import "edm4hep2lcio/internal/match"

//go:generate go tool stringer -type=EntityKind -trimprefix=Kind -output=kind_string.go

// EntityKind names a convertible source entity type.
type EntityKind int

const (
	_ EntityKind = iota // zero value is an unrecognized type

	KindTrack
	KindParticleID
	KindReconstructedParticle
)

// collectionAliases are the collection type names accepted besides the
// short entity names.
var collectionAliases = map[string]EntityKind{
	"edm4hep::TrackCollection":                 KindTrack,
	"edm4hep::ParticleIDCollection":            KindParticleID,
	"edm4hep::ReconstructedParticleCollection": KindReconstructedParticle,
}

// KnownTypeNames lists the entity type names a request may use.
func KnownTypeNames() []string {
	return []string{
		KindTrack.String(),
		KindParticleID.String(),
		KindReconstructedParticle.String(),
	}
}

// ParseEntityKind maps a requested entity type name to its kind. Both the
// short names (Track) and the collection type names
// (edm4hep::TrackCollection) are accepted; matching is exact.
func ParseEntityKind(name string) (EntityKind, bool) {
	switch name {
	case KindTrack.String():
		return KindTrack, true
	case KindParticleID.String():
		return KindParticleID, true
	case KindReconstructedParticle.String():
		return KindReconstructedParticle, true
	}

	kind, ok := collectionAliases[name]

	return kind, ok
}

// SuggestTypeName returns the known entity type name closest to name.
func SuggestTypeName(name string) (string, bool) {
	return match.Suggest(name, KnownTypeNames(), match.DefaultThreshold)
}
