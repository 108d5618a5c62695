package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummaryMerge(t *testing.T) {
	summary := NewRunSummary()

	summary.Merge("src/a.ts", FileResult{Total: 3, Guarded: 2, Unguarded: 1,
		Occurrences: []Occurrence{{Line: 10, Text: "console.log(1);"}}})
	summary.Merge("src/b.ts", FileResult{Total: 2, Guarded: 2})

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Guarded)
	assert.Equal(t, 1, summary.Unguarded)
	assert.Equal(t, summary.Total, summary.Guarded+summary.Unguarded)

	// Only the file with unguarded occurrences is listed.
	assert.Len(t, summary.Files, 1)
	assert.Contains(t, summary.Files, Path("src/a.ts"))
}

func TestRunSummaryMergeOnZeroValue(t *testing.T) {
	var summary RunSummary

	summary.Merge("src/a.ts", FileResult{Total: 1, Unguarded: 1})

	assert.Len(t, summary.Files, 1)
}

func TestRunSummarySortedPaths(t *testing.T) {
	summary := NewRunSummary()
	summary.Merge("src/z.ts", FileResult{Total: 1, Unguarded: 1})
	summary.Merge("src/a.ts", FileResult{Total: 1, Unguarded: 1})
	summary.Merge("src/m.tsx", FileResult{Total: 1, Unguarded: 1})

	assert.Equal(t,
		[]Path{"src/a.ts", "src/m.tsx", "src/z.ts"},
		summary.SortedPaths(),
	)
}

func TestNewScanProfileDefaults(t *testing.T) {
	profile := NewScanProfile()

	assert.Equal(t, []Path{DefaultRoot}, profile.Paths)
	assert.Equal(t, "console.log", profile.Call)
	assert.Equal(t, "if", profile.Keyword)
	assert.Equal(t, "DEBUG_CONFIG", profile.Marker)
	assert.Equal(t, []string{".ts", ".tsx"}, profile.Extensions)
	assert.Empty(t, profile.Exclude)
}

func TestScanProfileMatchesExtension(t *testing.T) {
	profile := NewScanProfile()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{"ts file", "app.ts", true},
		{"tsx file", "panel.tsx", true},
		{"declaration file", "types.d.ts", true},
		{"markdown", "notes.md", false},
		{"suffix inside name only", "app.ts.bak", false},
		{"no extension", "Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.MatchesExtension(tt.file))
		})
	}
}
