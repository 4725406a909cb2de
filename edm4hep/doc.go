// Package edm4hep defines the source event model read by the converter.
//
// Records are plain values. A record is identified only by its position
// inside a named collection, expressed as an ObjectID. Relations between
// records (a reconstructed particle pointing at its tracks, for example)
// are stored as ObjectIDs and must be dereferenced through an Event.
//
// A collection slot may be empty: Collection.At reports such a slot as
// unavailable instead of handing out a zero record.
package edm4hep
