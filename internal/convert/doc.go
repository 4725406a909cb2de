// Package convert turns source (EDM4hep) collections into a destination
// (LCIO) event.
//
// A conversion request is a flat list of string triples
// (entity type, source collection, destination name). The pipeline is:
//  1. Validate the triple grouping; a malformed request converts nothing.
//  2. For each triple, in order, run the matching converter. Each new
//     destination object is paired with the source record it was built
//     from in a per-kind association list.
//  3. Resolve references of reconstructed particles (particle ID used,
//     tracks) against the association lists filled by earlier triples.
//     Tracks and particle IDs must therefore be requested first.
//  4. Assemble Track and ReconstructedParticle collections into an event
//     and register it with the store.
//
// # Reference resolution
//
// The source model identifies records only by position, and that identity
// does not survive into the destination model. In the default
// ResolveByValue mode a reference is resolved by scanning the association
// list for a source record structurally equal to the referenced one: the
// first match wins for the particle ID used, every match is linked for
// tracks. ResolveByIdentity instead keys association entries by ObjectID
// and links exactly the referenced record.
//
// All state lives in a Session scoped to one request.
package convert
