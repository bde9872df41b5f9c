// Package record defines the unified media description produced by every
// probing backend.
//
// Key types:
//   - Record: flat, comparable value holding container, video, and audio fields
//   - Field: the catalog of record keys, in presentation order
//   - Builder: the only way parsers populate a Record
//
// Builder.Build derives HaveVideo and HaveAudio from the populated fields, so a
// Record never claims a track it carries no data for. Records are values; a
// parser builds a fresh one per call and nothing mutates it afterwards.
package record
