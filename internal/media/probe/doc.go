// Package probe runs an external media inspection program against a file and
// normalizes what it reports into a record.Record.
//
// Two backends are understood: ffprobe, whose JSON output is mapped field by
// field, and mediainfo, whose `-f` text report is parsed section by section.
// The backend is chosen once when a Prober is built, either from an explicit
// executable path or by asking a Locator for the first ffprobe, then
// mediainfo, it can find.
//
// Probe never returns an error: a missing file or backend yields nil, and any
// failure after a backend was launched yields an empty record. Inspect returns
// the same record together with a diagnostic error that wraps one of the
// sentinel errors in this package.
package probe
