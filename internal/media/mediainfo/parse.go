package mediainfo

import (
	"regexp"
	"strings"

	"mediaprobe/internal/media/record"
)

// Section is a titled block of a mediainfo report. Body holds every line of
// the block, title included, each terminated by a newline.
type Section struct {
	Title string
	Body  string
}

// Rule describes how one record field is read from a section. Patterns are
// tried in order and the first one that yields a value wins.
type Rule struct {
	Field     record.Field
	Patterns  []*regexp.Regexp
	Group     int
	Transform Transform
}

// Value shapes accepted after the colon of a report line.
const (
	textValue      = `([\p{L}\p{N}_\-\\/. ]+)`
	profileValue   = `([\p{L}\p{N}_\-\\/@. ]+)`
	codecWordValue = `([\p{L}\p{N}_\-\\/ ]+)`
	wholeValue     = `(\d+)(?:\.\d*)?`
	digitsValue    = `(\d+)`
	decimalValue   = `([\d.]+)`
)

func line(label, value string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + label + `[ \t]*:[ \t]*` + value + `[ \t]*$`)
}

func rule(field record.Field, transform Transform, patterns ...*regexp.Regexp) Rule {
	return Rule{Field: field, Patterns: patterns, Group: 1, Transform: transform}
}

var (
	generalTitle = regexp.MustCompile(`^General$`)
	videoTitle   = regexp.MustCompile(`^Video[\s#\d]*$`)
	audioTitle   = regexp.MustCompile(`^Audio[\s#\d]*$`)
)

// GeneralRules read container fields from the General section.
var GeneralRules = []Rule{
	rule(record.FieldContainer, TransformNone, line(`Format`, textValue)),
	rule(record.FieldFileSize, TransformNone, line(`File size`, wholeValue)),
	rule(record.FieldDuration, TransformPermille, line(`Duration`, wholeValue)),
	rule(record.FieldBitrate, TransformNone, line(`Overall bit rate`, wholeValue)),
}

// VideoRules read video fields from the first Video section.
var VideoRules = []Rule{
	rule(record.FieldVideoCodec, TransformNone, line(`Codec(?: ID)?`, textValue)),
	rule(record.FieldVideoCodecProfile, TransformNone, line(`Codec profile`, profileValue)),
	rule(record.FieldVideoDuration, TransformPermille, line(`Duration`, wholeValue)),
	rule(record.FieldVideoBitrate, TransformNone, line(`Bit rate`, digitsValue)),
	rule(record.FieldVideoWidth, TransformIntegral, line(`Width`, digitsValue)),
	rule(record.FieldVideoHeight, TransformIntegral, line(`Height`, digitsValue)),
	rule(record.FieldVideoAspectRatio, TransformNone, line(`Display aspect ratio`, decimalValue)),
	rule(record.FieldVideoFrameRate, TransformNone, line(`Frame rate`, decimalValue)),
	rule(record.FieldVideoFrameCount, TransformNone, line(`Frame count`, wholeValue)),
}

// AudioRules read audio fields from the first Audio section. Older mediainfo
// releases print no "Codec profile" for audio, so "Format profile" is the
// fallback.
var AudioRules = []Rule{
	rule(record.FieldAudioCodec, TransformLeadingWord, line(`Codec(?: ID)?`, codecWordValue)),
	rule(record.FieldAudioCodecProfile, TransformNone,
		line(`Codec profile`, profileValue),
		line(`Format profile`, profileValue),
	),
	rule(record.FieldAudioDuration, TransformPermille, line(`Duration`, wholeValue)),
	rule(record.FieldAudioBitrate, TransformNone, line(`Bit rate`, digitsValue)),
	rule(record.FieldAudioChannel, TransformIntegral, line(`Channel\(s\)`, digitsValue)),
	rule(record.FieldAudioSamplingRate, TransformLeadingNumber, line(`Sampling rate`, profileValue)),
	rule(record.FieldAudioFrameCount, TransformNone, line(`Frame count`, wholeValue)),
}

// Args returns the mediainfo argument list for name.
func Args(name string) []string {
	return []string{"-f", name}
}

// Parse converts a full mediainfo text report into a record. Missing sections
// and fields are omitted.
func Parse(report string) record.Record {
	var b record.Builder
	sections := Sections(report)
	if s, ok := FindSection(sections, generalTitle); ok {
		ApplyRules(&b, s.Body, GeneralRules)
	}
	if s, ok := FindSection(sections, videoTitle); ok {
		ApplyRules(&b, s.Body, VideoRules)
	}
	if s, ok := FindSection(sections, audioTitle); ok {
		ApplyRules(&b, s.Body, AudioRules)
	}
	return b.Build()
}

// ApplyRules evaluates rules against block and stores every value found.
func ApplyRules(b *record.Builder, block string, rules []Rule) {
	for _, r := range rules {
		for _, pattern := range r.Patterns {
			if value, ok := Extract(block, pattern, r.Group, r.Transform); ok {
				b.Set(r.Field, value)
				break
			}
		}
	}
}

// FindSection returns the first section whose title matches title.
func FindSection(sections []Section, title *regexp.Regexp) (Section, bool) {
	for _, s := range sections {
		if title.MatchString(s.Title) {
			return s, true
		}
	}
	return Section{}, false
}

// Sections splits a report into blank-line separated blocks. CRLF endings and
// a leading byte order mark are tolerated; the end of input closes the final
// block.
func Sections(report string) []Section {
	report = strings.TrimPrefix(report, "\ufeff")
	report = strings.ReplaceAll(report, "\r\n", "\n")
	report = strings.ReplaceAll(report, "\r", "\n")

	var (
		sections []Section
		current  strings.Builder
		title    string
	)
	flush := func() {
		if title != "" {
			sections = append(sections, Section{Title: title, Body: current.String()})
		}
		title = ""
		current.Reset()
	}
	for _, raw := range strings.Split(report, "\n") {
		if strings.TrimSpace(raw) == "" {
			flush()
			continue
		}
		if title == "" {
			title = strings.TrimRight(raw, " \t")
		}
		current.WriteString(raw)
		current.WriteByte('\n')
	}
	flush()
	return sections
}
