// Package diagnostic provides structured warnings and errors collected
// while a conversion request runs.
//
// Findings that do not abort the request end up here:
//   - Unrecognized entity types, with the closest known name as a suggestion
//   - Source collections that cannot be found
package diagnostic
