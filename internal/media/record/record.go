package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field names a single key of a Record.
type Field string

// Container fields.
const (
	FieldContainer Field = "container"
	FieldFileSize  Field = "fileSize"
	FieldDuration  Field = "duration"
	FieldBitrate   Field = "bitrate"
)

// Video fields.
const (
	FieldHaveVideo         Field = "haveVideo"
	FieldVideoCodec        Field = "videoCodec"
	FieldVideoCodecProfile Field = "videoCodecProfile"
	FieldVideoDuration     Field = "videoDuration"
	FieldVideoBitrate      Field = "videoBitrate"
	FieldVideoWidth        Field = "videoWidth"
	FieldVideoHeight       Field = "videoHeight"
	FieldVideoAspectRatio  Field = "videoAspectRatio"
	FieldVideoFrameRate    Field = "videoFrameRate"
	FieldVideoFrameCount   Field = "videoFrameCount"
)

// Audio fields.
const (
	FieldHaveAudio         Field = "haveAudio"
	FieldAudioCodec        Field = "audioCodec"
	FieldAudioCodecProfile Field = "audioCodecProfile"
	FieldAudioDuration     Field = "audioDuration"
	FieldAudioBitrate      Field = "audioBitrate"
	FieldAudioChannel      Field = "audioChannel"
	FieldAudioSamplingRate Field = "audioSamplingRate"
	FieldAudioFrameCount   Field = "audioFrameCount"
)

// Group identifies which part of the media a field describes.
type Group int

const (
	GroupContainer Group = iota
	GroupVideo
	GroupAudio
)

type fieldDef struct {
	field    Field
	group    Group
	integral bool
	marker   bool
}

// catalog lists every field in presentation order.
var catalog = []fieldDef{
	{field: FieldContainer, group: GroupContainer},
	{field: FieldFileSize, group: GroupContainer},
	{field: FieldDuration, group: GroupContainer},
	{field: FieldBitrate, group: GroupContainer},
	{field: FieldHaveVideo, group: GroupVideo, marker: true},
	{field: FieldVideoCodec, group: GroupVideo},
	{field: FieldVideoCodecProfile, group: GroupVideo},
	{field: FieldVideoDuration, group: GroupVideo},
	{field: FieldVideoBitrate, group: GroupVideo},
	{field: FieldVideoWidth, group: GroupVideo, integral: true},
	{field: FieldVideoHeight, group: GroupVideo, integral: true},
	{field: FieldVideoAspectRatio, group: GroupVideo},
	{field: FieldVideoFrameRate, group: GroupVideo},
	{field: FieldVideoFrameCount, group: GroupVideo},
	{field: FieldHaveAudio, group: GroupAudio, marker: true},
	{field: FieldAudioCodec, group: GroupAudio},
	{field: FieldAudioCodecProfile, group: GroupAudio},
	{field: FieldAudioDuration, group: GroupAudio},
	{field: FieldAudioBitrate, group: GroupAudio},
	{field: FieldAudioChannel, group: GroupAudio, integral: true},
	{field: FieldAudioSamplingRate, group: GroupAudio},
	{field: FieldAudioFrameCount, group: GroupAudio},
}

// Fields returns every known field in presentation order.
func Fields() []Field {
	out := make([]Field, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def.field)
	}
	return out
}

// GroupOf reports the group a field belongs to. Unknown fields report false.
func GroupOf(field Field) (Group, bool) {
	for _, def := range catalog {
		if def.field == field {
			return def.group, true
		}
	}
	return 0, false
}

// Record is the normalized description of a media file. Empty strings and
// false markers mean the field is absent. Integer fields are absent when zero
// unless a Builder stored an explicit zero.
type Record struct {
	Container string `json:"container,omitempty"`
	FileSize  string `json:"fileSize,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Bitrate   string `json:"bitrate,omitempty"`

	HaveVideo         bool   `json:"haveVideo,omitempty"`
	VideoCodec        string `json:"videoCodec,omitempty"`
	VideoCodecProfile string `json:"videoCodecProfile,omitempty"`
	VideoDuration     string `json:"videoDuration,omitempty"`
	VideoBitrate      string `json:"videoBitrate,omitempty"`
	VideoWidth        int    `json:"videoWidth,omitempty"`
	VideoHeight       int    `json:"videoHeight,omitempty"`
	VideoAspectRatio  string `json:"videoAspectRatio,omitempty"`
	VideoFrameRate    string `json:"videoFrameRate,omitempty"`
	VideoFrameCount   string `json:"videoFrameCount,omitempty"`

	HaveAudio         bool   `json:"haveAudio,omitempty"`
	AudioCodec        string `json:"audioCodec,omitempty"`
	AudioCodecProfile string `json:"audioCodecProfile,omitempty"`
	AudioDuration     string `json:"audioDuration,omitempty"`
	AudioBitrate      string `json:"audioBitrate,omitempty"`
	AudioChannel      int    `json:"audioChannel,omitempty"`
	AudioSamplingRate string `json:"audioSamplingRate,omitempty"`
	AudioFrameCount   string `json:"audioFrameCount,omitempty"`

	// zeros marks integer fields that were set to an explicit zero.
	zeros zeroMask
}

type zeroMask uint8

func zeroBit(field Field) zeroMask {
	switch field {
	case FieldVideoWidth:
		return 1 << 0
	case FieldVideoHeight:
		return 1 << 1
	case FieldAudioChannel:
		return 1 << 2
	}
	return 0
}

// Entry is a single present field of a Record.
type Entry struct {
	Field Field
	Value any
}

// Entries returns the present fields in catalog order. Markers are reported as
// true, integer fields as int, and everything else as string.
func (r Record) Entries() []Entry {
	var out []Entry
	for _, def := range catalog {
		if value, ok := r.value(def); ok {
			out = append(out, Entry{Field: def.field, Value: value})
		}
	}
	return out
}

// Map returns the present fields keyed by field name.
func (r Record) Map() map[string]any {
	out := make(map[string]any)
	for _, entry := range r.Entries() {
		out[string(entry.Field)] = entry.Value
	}
	return out
}

// Get returns the value of a single field and whether it is present.
func (r Record) Get(field Field) (any, bool) {
	for _, def := range catalog {
		if def.field == field {
			return r.value(def)
		}
	}
	return nil, false
}

// MarshalJSON writes the present fields as a JSON object in catalog order,
// using the same values as Entries.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range r.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(entry.Field))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IsEmpty reports whether no field is present.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// HasVideo reports whether any video field is populated.
func (r Record) HasVideo() bool {
	return r.anyIn(GroupVideo)
}

// HasAudio reports whether any audio field is populated.
func (r Record) HasAudio() bool {
	return r.anyIn(GroupAudio)
}

func (r Record) anyIn(group Group) bool {
	for _, def := range catalog {
		if def.group != group || def.marker {
			continue
		}
		if _, ok := r.value(def); ok {
			return true
		}
	}
	return false
}

func (r Record) value(def fieldDef) (any, bool) {
	rp := &r
	switch {
	case def.marker:
		if *rp.marker(def.field) {
			return true, true
		}
	case def.integral:
		if n := *rp.intField(def.field); n != 0 || r.zeros&zeroBit(def.field) != 0 {
			return n, true
		}
	default:
		if s := *rp.stringField(def.field); s != "" {
			return s, true
		}
	}
	return nil, false
}

func (r *Record) marker(field Field) *bool {
	if field == FieldHaveVideo {
		return &r.HaveVideo
	}
	return &r.HaveAudio
}

func (r *Record) intField(field Field) *int {
	switch field {
	case FieldVideoWidth:
		return &r.VideoWidth
	case FieldVideoHeight:
		return &r.VideoHeight
	default:
		return &r.AudioChannel
	}
}

func (r *Record) stringField(field Field) *string {
	switch field {
	case FieldContainer:
		return &r.Container
	case FieldFileSize:
		return &r.FileSize
	case FieldDuration:
		return &r.Duration
	case FieldBitrate:
		return &r.Bitrate
	case FieldVideoCodec:
		return &r.VideoCodec
	case FieldVideoCodecProfile:
		return &r.VideoCodecProfile
	case FieldVideoDuration:
		return &r.VideoDuration
	case FieldVideoBitrate:
		return &r.VideoBitrate
	case FieldVideoAspectRatio:
		return &r.VideoAspectRatio
	case FieldVideoFrameRate:
		return &r.VideoFrameRate
	case FieldVideoFrameCount:
		return &r.VideoFrameCount
	case FieldAudioCodec:
		return &r.AudioCodec
	case FieldAudioCodecProfile:
		return &r.AudioCodecProfile
	case FieldAudioDuration:
		return &r.AudioDuration
	case FieldAudioBitrate:
		return &r.AudioBitrate
	case FieldAudioSamplingRate:
		return &r.AudioSamplingRate
	case FieldAudioFrameCount:
		return &r.AudioFrameCount
	}
	return nil
}

// Builder accumulates fields for a single Record.
type Builder struct {
	rec Record
}

// Set stores value under field. Blank values, unknown fields, markers, and
// integer fields whose value does not parse are ignored. It reports whether
// the value was stored.
func (b *Builder) Set(field Field, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, def := range catalog {
		if def.field != field {
			continue
		}
		switch {
		case def.marker:
			return false
		case def.integral:
			n, err := strconv.Atoi(value)
			if err != nil {
				return false
			}
			*b.rec.intField(field) = n
			if n == 0 {
				b.rec.zeros |= zeroBit(field)
			} else {
				b.rec.zeros &^= zeroBit(field)
			}
		default:
			*b.rec.stringField(field) = value
		}
		return true
	}
	return false
}

// Has reports whether field has been set.
func (b *Builder) Has(field Field) bool {
	_, ok := b.rec.Get(field)
	return ok
}

// Build returns the accumulated Record with the track markers derived from
// the populated fields.
func (b *Builder) Build() Record {
	rec := b.rec
	rec.HaveVideo = rec.HasVideo()
	rec.HaveAudio = rec.HasAudio()
	return rec
}
