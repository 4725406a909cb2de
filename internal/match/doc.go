// Package match provides name normalization and Levenshtein distance for
// matching requested entity-type names against the known ones.
//
// Key functions:
//   - NormalizeTypeName: folds "edm4hep::TrackCollection", "track" and
//     "Track" onto the same key
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name for a misspelled request
package match
