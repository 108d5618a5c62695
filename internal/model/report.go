// Package model defines the data structures for the log guard audit.
package model

import "sort"

// Occurrence records one detected target-call line.
type Occurrence struct {
	Line int    `yaml:"line"` // 1-based line number
	Text string `yaml:"text"` // trimmed line content
}

// FileResult holds the audit counts for a single source file plus the
// unguarded occurrences in file order.
type FileResult struct {
	Total       int          `yaml:"total"`
	Guarded     int          `yaml:"guarded"`
	Unguarded   int          `yaml:"unguarded"`
	Occurrences []Occurrence `yaml:"occurrences,omitempty"`
}

// FileCount pairs a path with its audit counts, used for listings that
// cover every file with at least one occurrence.
type FileCount struct {
	Path      Path `yaml:"path"`
	Total     int  `yaml:"total"`
	Guarded   int  `yaml:"guarded"`
	Unguarded int  `yaml:"unguarded"`
}

// RunSummary aggregates results across all scanned files. Files holds only
// files with at least one unguarded occurrence.
type RunSummary struct {
	Total     int                 `yaml:"total"`
	Guarded   int                 `yaml:"guarded"`
	Unguarded int                 `yaml:"unguarded"`
	Files     map[Path]FileResult `yaml:"files,omitempty"`
}

// NewRunSummary returns an empty summary ready to accumulate file results.
func NewRunSummary() RunSummary {
	return RunSummary{Files: make(map[Path]FileResult)}
}

// Merge folds one file's result into the summary. Files without unguarded
// occurrences contribute to the totals but are not listed.
func (s *RunSummary) Merge(path Path, result FileResult) {
	s.Total += result.Total
	s.Guarded += result.Guarded
	s.Unguarded += result.Unguarded

	if result.Unguarded > 0 {
		if s.Files == nil {
			s.Files = make(map[Path]FileResult)
		}

		s.Files[path] = result
	}
}

// SortedPaths returns the listed file paths in ascending order for
// deterministic report output.
func (s RunSummary) SortedPaths() []Path {
	paths := make([]Path, 0, len(s.Files))
	for path := range s.Files {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}
