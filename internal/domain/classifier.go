// Package domain implements the audit logic: guard classification, the
// per-file scan and the end-to-end workflow.
package domain

import "strings"

// Guarded reports whether the target call at lines[index] sits inside a
// block opened by a line containing both the guard keyword and the guard
// marker. It walks the preceding lines backwards, tracking brace balance:
// the counter goes negative exactly while the walk is inside a block that
// still encloses the target line.
//
// This is a textual heuristic, not a parse. Braces are counted as raw
// characters per line, including braces inside string literals and
// comments; that approximation is intentional and must not be "fixed"
// into real lexing, which would change matched results.
func Guarded(lines []string, index int, keyword, marker string) bool {
	depth := 0

	for i := index - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])

		depth += strings.Count(line, "}") - strings.Count(line, "{")

		// A guard line counts only while the walk is strictly inside an
		// enclosing block. A guard whose block closed before the target
		// line is a sibling, not an ancestor.
		if depth < 0 && strings.Contains(line, keyword) && strings.Contains(line, marker) {
			return true
		}

		// Walked back out of every enclosing block without finding a
		// guard. The immediately-preceding line is exempt so that the
		// walk can enter the first enclosing block at all.
		if depth >= 0 && i < index-1 {
			break
		}
	}

	return false
}
