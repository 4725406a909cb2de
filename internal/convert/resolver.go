package convert

import (
	"fmt"

	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/arena"
)

// ResolutionMode selects how source references find their destination
// counterparts.
type ResolutionMode int

const (
	// ResolveByValue scans for structurally equal source records.
	ResolveByValue ResolutionMode = iota
	// ResolveByIdentity looks up the referenced ObjectID.
	ResolveByIdentity
)

// String returns the configuration name of the mode.
func (m ResolutionMode) String() string {
	switch m {
	case ResolveByValue:
		return "value"
	case ResolveByIdentity:
		return "identity"
	default:
		return fmt.Sprintf("ResolutionMode(%d)", int(m))
	}
}

// ParseResolutionMode parses "value" or "identity". Empty means value.
func ParseResolutionMode(s string) (ResolutionMode, error) {
	switch s {
	case "", "value":
		return ResolveByValue, nil
	case "identity":
		return ResolveByIdentity, nil
	default:
		return 0, fmt.Errorf("unknown resolution mode %q", s)
	}
}

// resolver finds destination handles for a referenced source record.
type resolver[S any] struct {
	mode  ResolutionMode
	equal func(a, b S) bool
}

// First returns the destination of the first association matching the
// reference. Later duplicates are ignored.
func (r resolver[S]) First(list *AssociationList[S], id edm4hep.ObjectID, target S) (arena.Handle, bool) {
	if r.mode == ResolveByIdentity {
		i, ok := list.byID[id]
		if !ok {
			return arena.Invalid, false
		}

		return list.entries[i].Dest, true
	}

	for _, a := range list.entries {
		if a.Available && r.equal(a.Source, target) {
			return a.Dest, true
		}
	}

	return arena.Invalid, false
}

// All returns the destinations of every association matching the
// reference, in list order. By identity this is at most one.
func (r resolver[S]) All(list *AssociationList[S], id edm4hep.ObjectID, target S) []arena.Handle {
	if r.mode == ResolveByIdentity {
		if h, ok := r.First(list, id, target); ok {
			return []arena.Handle{h}
		}

		return nil
	}

	var out []arena.Handle
	for _, a := range list.entries {
		if a.Available && r.equal(a.Source, target) {
			out = append(out, a.Dest)
		}
	}

	return out
}
