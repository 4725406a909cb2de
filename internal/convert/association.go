package convert

import (
	"edm4hep2lcio/edm4hep"
	"edm4hep2lcio/internal/arena"
)

// Association pairs a destination object with the source record it was
// built from.
type Association[S any] struct {
	Dest     arena.Handle
	Source   S
	SourceID edm4hep.ObjectID
	// Available is false for placeholders built from empty source slots.
	Available bool
}

// AssociationList is an append-only, ordered list of associations of one
// entity kind. Its order equals source iteration order.
type AssociationList[S any] struct {
	entries []Association[S]
	byID    map[edm4hep.ObjectID]int
}

// Append adds an association.
func (l *AssociationList[S]) Append(a Association[S]) {
	if l.byID == nil {
		l.byID = make(map[edm4hep.ObjectID]int)
	}

	if _, seen := l.byID[a.SourceID]; !seen && a.Available {
		l.byID[a.SourceID] = len(l.entries)
	}

	l.entries = append(l.entries, a)
}

// Len returns the number of associations.
func (l *AssociationList[S]) Len() int {
	return len(l.entries)
}

// At returns association i.
func (l *AssociationList[S]) At(i int) Association[S] {
	return l.entries[i]
}

// Entries returns the associations in order.
func (l *AssociationList[S]) Entries() []Association[S] {
	return l.entries
}

func (l *AssociationList[S]) release() {
	l.entries = nil
	l.byID = nil
}
