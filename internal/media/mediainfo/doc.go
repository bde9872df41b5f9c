// Package mediainfo extracts unified media records from the full-detail text
// report printed by `mediainfo -f`.
//
// The report is a sequence of titled sections ("General", "Video", "Audio #1",
// ...) separated by blank lines. Parse splits the report into sections, picks
// the General section and the first Video and Audio sections, and applies a
// table of field rules to each. Every rule is evaluated by Extract; a rule that
// does not match simply leaves its field absent.
//
// mediainfo reports durations in milliseconds. Duration rules convert them to
// seconds so records agree with the ffprobe backend.
package mediainfo
