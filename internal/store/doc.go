// Package store holds finished destination events under fixed keys.
//
// Memory keeps events in an ordered in-process map. File writes each event
// as a zstd-compressed JSON document into a directory. Both refuse to
// register a second event under a key that is already taken.
package store
