package ffprobe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mediaprobe/internal/media/record"
)

// Result represents the decoded output of an ffprobe inspection.
type Result struct {
	Streams []Stream     `json:"streams"`
	Format  *Format      `json:"format"`
	Error   *ReportError `json:"error"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index              Value `json:"index"`
	CodecName          Value `json:"codec_name"`
	CodecType          Value `json:"codec_type"`
	Profile            Value `json:"profile"`
	Duration           Value `json:"duration"`
	BitRate            Value `json:"bit_rate"`
	Width              Value `json:"width"`
	Height             Value `json:"height"`
	DisplayAspectRatio Value `json:"display_aspect_ratio"`
	RFrameRate         Value `json:"r_frame_rate"`
	NbReadFrames       Value `json:"nb_read_frames"`
	SampleRate         Value `json:"sample_rate"`
	Channels           Value `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   Value `json:"filename"`
	FormatName Value `json:"format_name"`
	Duration   Value `json:"duration"`
	Size       Value `json:"size"`
	BitRate    Value `json:"bit_rate"`
}

// ReportError is the object ffprobe prints for -show_error when it cannot
// read the input.
type ReportError struct {
	Code    int    `json:"code"`
	Message string `json:"string"`
}

func (e *ReportError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Sprintf("ffprobe reported error %d: %s", e.Code, msg)
}

// Value holds a scalar JSON value in its textual form. Strings keep their
// content, numbers keep their literal digits, and null, booleans, objects, and
// arrays decode as absent.
type Value string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*v = ""
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Value(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*v = Value(trimmed)
	}
	return nil
}

// String returns the textual value.
func (v Value) String() string {
	return string(v)
}

// Args returns the ffprobe argument list used to inspect path. countFrames
// asks ffprobe to decode every frame so nb_read_frames is reported.
func Args(path string, countFrames bool) []string {
	args := []string{
		"-loglevel", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"-show_error",
	}
	if countFrames {
		args = append(args, "-count_frames")
	}
	return append(args, "-i", path)
}

// Decode parses raw ffprobe JSON output.
func Decode(data []byte) (Result, error) {
	var result Result
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, errors.New("ffprobe parse: empty output")
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// FirstStream returns the position of the first stream whose codec_type
// matches kind, or -1 when there is none.
func (r Result) FirstStream(kind string) int {
	for i, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType.String(), kind) {
			return i
		}
	}
	return -1
}

// Normalize decodes an ffprobe report and maps it onto a record. Malformed
// output and reports carrying only an ffprobe error yield an empty record and
// a non-nil error.
func Normalize(data []byte) (record.Record, error) {
	result, err := Decode(data)
	if err != nil {
		return record.Record{}, err
	}
	if result.Format == nil && result.Error != nil {
		return record.Record{}, result.Error
	}
	return result.Record(), nil
}

// Record maps the decoded report onto a record. Only the first video and
// first audio stream contribute.
func (r Result) Record() record.Record {
	var b record.Builder

	if f := r.Format; f != nil {
		b.Set(record.FieldContainer, f.FormatName.String())
		b.Set(record.FieldFileSize, f.Size.String())
		b.Set(record.FieldDuration, f.Duration.String())
		b.Set(record.FieldBitrate, f.BitRate.String())
	}

	if idx := r.FirstStream("video"); idx >= 0 {
		s := r.Streams[idx]
		b.Set(record.FieldVideoCodec, s.CodecName.String())
		b.Set(record.FieldVideoCodecProfile, s.Profile.String())
		b.Set(record.FieldVideoDuration, s.Duration.String())
		b.Set(record.FieldVideoBitrate, s.BitRate.String())
		b.Set(record.FieldVideoWidth, s.Width.String())
		b.Set(record.FieldVideoHeight, s.Height.String())
		b.Set(record.FieldVideoAspectRatio, s.DisplayAspectRatio.String())
		b.Set(record.FieldVideoFrameRate, s.RFrameRate.String())
		b.Set(record.FieldVideoFrameCount, s.NbReadFrames.String())
	}

	if idx := r.FirstStream("audio"); idx >= 0 {
		s := r.Streams[idx]
		b.Set(record.FieldAudioCodec, s.CodecName.String())
		b.Set(record.FieldAudioCodecProfile, s.Profile.String())
		b.Set(record.FieldAudioDuration, s.Duration.String())
		b.Set(record.FieldAudioBitrate, s.BitRate.String())
		b.Set(record.FieldAudioChannel, s.Channels.String())
		b.Set(record.FieldAudioSamplingRate, s.SampleRate.String())
		b.Set(record.FieldAudioFrameCount, s.NbReadFrames.String())
	}

	return b.Build()
}
