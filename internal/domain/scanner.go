package domain

import (
	"strings"

	m "logguard.dev/pkg/logguard/internal/model"
)

// ScanLines audits a single file's lines for the profile's target call.
// Each line containing the call substring counts once; unguarded hits are
// recorded with their 1-based line number and trimmed text.
func ScanLines(lines []string, profile m.ScanProfile) m.FileResult {
	var result m.FileResult

	for i, line := range lines {
		if !strings.Contains(line, profile.Call) {
			continue
		}

		result.Total++

		if Guarded(lines, i, profile.Keyword, profile.Marker) {
			result.Guarded++
			continue
		}

		result.Unguarded++
		result.Occurrences = append(result.Occurrences, m.Occurrence{
			Line: i + 1,
			Text: strings.TrimSpace(line),
		})
	}

	return result
}

// SplitLines breaks file content into lines. A trailing newline does not
// produce a phantom empty line, so line numbers match editor display.
func SplitLines(content []byte) []string {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
