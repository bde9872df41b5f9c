package mediainfo

import (
	"regexp"
	"strconv"
	"strings"
)

// Transform converts a captured value before it is stored.
type Transform int

const (
	// TransformNone keeps the captured text, trimmed.
	TransformNone Transform = iota
	// TransformPermille reads the captured digits as milliseconds and renders
	// decimal seconds.
	TransformPermille
	// TransformIntegral parses the captured digits as an integer.
	TransformIntegral
	// TransformLeadingWord keeps the first word of the captured text.
	TransformLeadingWord
	// TransformLeadingNumber keeps the first run of digits in the captured text.
	TransformLeadingNumber
)

var (
	leadingWord   = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	leadingNumber = regexp.MustCompile(`\d+`)
)

// Extract matches pattern against block and returns capture group group,
// converted by transform. It reports false when the pattern does not match,
// the group is out of range or empty, or the transform rejects the value.
func Extract(block string, pattern *regexp.Regexp, group int, transform Transform) (string, bool) {
	if pattern == nil || group < 0 || group > pattern.NumSubexp() {
		return "", false
	}
	match := pattern.FindStringSubmatch(block)
	if match == nil {
		return "", false
	}
	value := strings.TrimSpace(match[group])
	if value == "" {
		return "", false
	}
	return apply(transform, value)
}

func apply(transform Transform, value string) (string, bool) {
	switch transform {
	case TransformPermille:
		return permille(value)
	case TransformIntegral:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", false
		}
		return strconv.Itoa(n), true
	case TransformLeadingWord:
		word := leadingWord.FindString(value)
		return word, word != ""
	case TransformLeadingNumber:
		digits := leadingNumber.FindString(value)
		return digits, digits != ""
	default:
		return value, true
	}
}

// permille renders a millisecond count as seconds using exact decimal
// arithmetic: "12345" -> "12.345", "12000" -> "12.0", "5" -> "0.005".
func permille(digits string) (string, bool) {
	if digits == "" {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}
	whole := strings.TrimLeft(digits[:len(digits)-3], "0")
	if whole == "" {
		whole = "0"
	}
	frac := strings.TrimRight(digits[len(digits)-3:], "0")
	if frac == "" {
		frac = "0"
	}
	return whole + "." + frac, true
}
