package record_test

import (
	"encoding/json"
	"testing"

	"mediaprobe/internal/media/record"
)

func TestBuilderDerivesTrackMarkers(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldContainer, "matroska,webm")
	b.Set(record.FieldVideoCodec, "h264")

	rec := b.Build()
	if !rec.HaveVideo {
		t.Fatal("expected haveVideo to be set when a video field is populated")
	}
	if rec.HaveAudio {
		t.Fatal("expected haveAudio to stay unset without audio fields")
	}
	if rec.Container != "matroska,webm" {
		t.Fatalf("unexpected container: %q", rec.Container)
	}
}

func TestBuilderIgnoresBlankAndInvalidValues(t *testing.T) {
	var b record.Builder
	if b.Set(record.FieldVideoCodec, "   ") {
		t.Fatal("expected blank value to be ignored")
	}
	if b.Set(record.FieldVideoWidth, "wide") {
		t.Fatal("expected non-numeric width to be ignored")
	}
	if b.Set(record.FieldHaveAudio, "1") {
		t.Fatal("expected markers to be derived, not set")
	}
	if b.Set(record.Field("bogus"), "x") {
		t.Fatal("expected unknown field to be ignored")
	}
	rec := b.Build()
	if !rec.IsEmpty() {
		t.Fatalf("expected empty record, got %#v", rec)
	}
}

func TestBuilderParsesIntegralFields(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldVideoWidth, "1920")
	b.Set(record.FieldVideoHeight, " 1080 ")
	b.Set(record.FieldAudioChannel, "6")
	rec := b.Build()
	if rec.VideoWidth != 1920 || rec.VideoHeight != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", rec.VideoWidth, rec.VideoHeight)
	}
	if rec.AudioChannel != 6 {
		t.Fatalf("unexpected channel count: %d", rec.AudioChannel)
	}
	if !b.Has(record.FieldAudioChannel) {
		t.Fatal("expected builder to report audio channel as set")
	}
}

func TestMapOmitsAbsentFields(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldDuration, "12.345")
	b.Set(record.FieldAudioCodec, "aac")
	b.Set(record.FieldAudioChannel, "2")
	fields := b.Build().Map()

	want := map[string]any{
		"duration":     "12.345",
		"haveAudio":    true,
		"audioCodec":   "aac",
		"audioChannel": 2,
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d: %#v", len(want), len(fields), fields)
	}
	for key, value := range want {
		if fields[key] != value {
			t.Fatalf("field %s: got %#v want %#v", key, fields[key], value)
		}
	}
	if _, ok := fields["haveVideo"]; ok {
		t.Fatal("expected haveVideo to be absent")
	}
}

func TestEntriesFollowCatalogOrder(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldAudioCodec, "aac")
	b.Set(record.FieldVideoCodec, "hevc")
	b.Set(record.FieldContainer, "mov,mp4,m4a,3gp,3g2,mj2")

	entries := b.Build().Entries()
	got := make([]record.Field, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.Field)
	}
	want := []record.Field{
		record.FieldContainer,
		record.FieldHaveVideo,
		record.FieldVideoCodec,
		record.FieldHaveAudio,
		record.FieldAudioCodec,
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected entries: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestJSONUsesRecordKeys(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldFileSize, "1048576")
	b.Set(record.FieldVideoWidth, "640")

	data, err := json.Marshal(b.Build())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"fileSize":"1048576","haveVideo":true,"videoWidth":640}`
	if string(data) != want {
		t.Fatalf("unexpected JSON: got %s want %s", data, want)
	}
}

func TestGroupOf(t *testing.T) {
	group, ok := record.GroupOf(record.FieldAudioSamplingRate)
	if !ok || group != record.GroupAudio {
		t.Fatalf("expected audio group, got %v %v", group, ok)
	}
	if _, ok := record.GroupOf(record.Field("nope")); ok {
		t.Fatal("expected unknown field to report false")
	}
	if len(record.Fields()) != 22 {
		t.Fatalf("unexpected field count: %d", len(record.Fields()))
	}
}

func TestJSONMatchesMap(t *testing.T) {
	var b record.Builder
	b.Set(record.FieldContainer, "mov,mp4,m4a,3gp,3g2,mj2")
	b.Set(record.FieldVideoWidth, "1280")
	b.Set(record.FieldAudioCodec, "aac")
	b.Set(record.FieldAudioChannel, "2")
	rec := b.Build()

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	fields := rec.Map()
	if len(decoded) != len(fields) {
		t.Fatalf("JSON has %d keys, Map has %d: %s vs %#v", len(decoded), len(fields), data, fields)
	}
	for key, value := range fields {
		got := decoded[key]
		if n, ok := value.(int); ok {
			value = float64(n)
		}
		if got != value {
			t.Fatalf("field %s: JSON %#v, Map %#v", key, got, value)
		}
	}
	if fields["haveVideo"] != true || fields["haveAudio"] != true {
		t.Fatalf("expected boolean track markers, got %#v", fields)
	}
}

func TestBuilderKeepsExplicitZero(t *testing.T) {
	var b record.Builder
	if !b.Set(record.FieldVideoWidth, "0") {
		t.Fatal("expected zero width to be stored")
	}
	b.Set(record.FieldVideoHeight, "0")
	rec := b.Build()

	if rec.IsEmpty() {
		t.Fatal("expected record with zero dimensions to be non-empty")
	}
	if !rec.HaveVideo {
		t.Fatal("expected haveVideo when only zero dimensions are present")
	}
	if v, ok := rec.Get(record.FieldVideoWidth); !ok || v != 0 {
		t.Fatalf("expected videoWidth 0, got %#v (%v)", v, ok)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"haveVideo":true,"videoWidth":0,"videoHeight":0}`
	if string(data) != want {
		t.Fatalf("unexpected JSON: got %s want %s", data, want)
	}

	var later record.Builder
	later.Set(record.FieldVideoWidth, "0")
	later.Set(record.FieldVideoWidth, "720")
	if v, _ := later.Build().Get(record.FieldVideoWidth); v != 720 {
		t.Fatalf("expected later value to replace zero, got %#v", v)
	}
}

func TestLiteralRecordOmitsZeroIntegers(t *testing.T) {
	rec := record.Record{Container: "mp3"}
	if _, ok := rec.Get(record.FieldAudioChannel); ok {
		t.Fatal("expected unset audioChannel to be absent")
	}
}
