package mediainfo

import (
	"regexp"
	"testing"
)

func TestExtractPermille(t *testing.T) {
	pattern := line(`Duration`, wholeValue)
	cases := []struct {
		block string
		want  string
	}{
		{"Duration   : 12345\n", "12.345"},
		{"Duration   : 12000\n", "12.0"},
		{"Duration   : 5\n", "0.005"},
		{"Duration   : 1000\n", "1.0"},
		{"Duration   : 5935600.000\n", "5935.6"},
		{"Duration   : 0\n", "0.0"},
	}
	for _, tc := range cases {
		got, ok := Extract(tc.block, pattern, 1, TransformPermille)
		if !ok {
			t.Fatalf("Extract(%q) reported no match", tc.block)
		}
		if got != tc.want {
			t.Fatalf("Extract(%q) = %q, want %q", tc.block, got, tc.want)
		}
	}
}

func TestExtractSkipsHumanReadableLines(t *testing.T) {
	block := "Duration                                 : 1 h 38 min\nDuration                                 : 5935600\n"
	got, ok := Extract(block, line(`Duration`, wholeValue), 1, TransformPermille)
	if !ok || got != "5935.6" {
		t.Fatalf("expected raw millisecond line to be used, got %q (%v)", got, ok)
	}
}

func TestExtractIntegral(t *testing.T) {
	pattern := line(`Width`, digitsValue)
	got, ok := Extract("Width : 1 920 pixels\nWidth : 01920\n", pattern, 1, TransformIntegral)
	if !ok || got != "1920" {
		t.Fatalf("expected 1920, got %q (%v)", got, ok)
	}
	if _, ok := Extract("Width : 99999999999999999999999\n", pattern, 1, TransformIntegral); ok {
		t.Fatal("expected overflow to be rejected")
	}
}

func TestExtractLeadingTokens(t *testing.T) {
	codec, ok := Extract("Codec ID   : AAC LC\n", line(`Codec(?: ID)?`, codecWordValue), 1, TransformLeadingWord)
	if !ok || codec != "AAC" {
		t.Fatalf("expected AAC, got %q (%v)", codec, ok)
	}
	rate, ok := Extract("Sampling rate : 48.0 kHz\n", line(`Sampling rate`, profileValue), 1, TransformLeadingNumber)
	if !ok || rate != "48" {
		t.Fatalf("expected 48, got %q (%v)", rate, ok)
	}
}

func TestExtractUnmatched(t *testing.T) {
	if _, ok := Extract("Height : 1080\n", line(`Width`, digitsValue), 1, TransformNone); ok {
		t.Fatal("expected no match for missing label")
	}
	if _, ok := Extract("Width : wide\n", line(`Width`, digitsValue), 1, TransformNone); ok {
		t.Fatal("expected no match for non-numeric value")
	}
	if _, ok := Extract("Width : 10\n", line(`Width`, digitsValue), 2, TransformNone); ok {
		t.Fatal("expected out of range group to report false")
	}
	if _, ok := Extract("Width : 10\n", nil, 1, TransformNone); ok {
		t.Fatal("expected nil pattern to report false")
	}
}

func TestExtractLabelsAreAnchored(t *testing.T) {
	block := "Format profile : LC\nFormat/Info : Advanced Audio Codec\n"
	if _, ok := Extract(block, line(`Format`, textValue), 1, TransformNone); ok {
		t.Fatal("expected Format rule to ignore Format profile and Format/Info lines")
	}
	if _, ok := Extract("Maximum bit rate : 640000\n", line(`Bit rate`, digitsValue), 1, TransformNone); ok {
		t.Fatal("expected Bit rate rule to ignore Maximum bit rate")
	}
}

func TestExtractCustomGroup(t *testing.T) {
	pattern := regexp.MustCompile(`(?m)^Frame rate[ \t]*:[ \t]*(\d+)\.(\d+)$`)
	got, ok := Extract("Frame rate : 23.976\n", pattern, 2, TransformNone)
	if !ok || got != "976" {
		t.Fatalf("expected second group, got %q (%v)", got, ok)
	}
}

func TestPermilleRejectsNonDigits(t *testing.T) {
	if _, ok := permille("12a"); ok {
		t.Fatal("expected non-digit input to be rejected")
	}
	if _, ok := permille(""); ok {
		t.Fatal("expected empty input to be rejected")
	}
}
