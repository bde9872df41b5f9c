package logging

import "strings"

// FormatSubject builds the component/probe subject shown in console output.
// Probe IDs are shortened to their first eight characters.
func FormatSubject(component, probeID string) string {
	component = strings.TrimSpace(component)
	probeID = strings.TrimSpace(probeID)
	if len(probeID) > 8 {
		probeID = probeID[:8]
	}
	parts := make([]string, 0, 2)
	if component != "" {
		parts = append(parts, component)
	}
	if probeID != "" {
		parts = append(parts, "probe "+probeID)
	}
	return strings.Join(parts, " · ")
}
