// Package lcio defines the destination event model produced by the
// converter.
//
// Unlike the source model, relations are plain Go pointers: a
// ReconstructedParticle holds the *Track values it was built from. An Event
// owns named collections and carries run and time metadata.
package lcio
