package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"

	"logguard.dev/pkg/logguard/internal/adapter"
	m "logguard.dev/pkg/logguard/internal/model"
)

// ScanArgs contains the arguments for an audit run.
type ScanArgs struct {
	Profile m.ScanProfile
}

// Workflow defines the audit operations exposed to the CLI layer.
type Workflow interface {
	// Scan audits every matching file under the profile's paths and
	// returns the aggregated summary.
	Scan(ctx context.Context, args ScanArgs) (m.RunSummary, error)

	// Count returns per-file counts for every file with at least one
	// occurrence, sorted by path.
	Count(ctx context.Context, args ScanArgs) ([]m.FileCount, error)
}

type workflow struct {
	adapter.SourceFSAdapter
}

// NewWorkflow creates a Workflow backed by the provided filesystem adapter.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter) Workflow {
	return &workflow{SourceFSAdapter: fsAdapter}
}

// Scan walks the tree and classifies each target call. Files are read and
// analyzed one at a time into a single owned accumulator; any read or
// decode failure aborts the whole run.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.RunSummary, error) {
	summary := m.NewRunSummary()

	err := w.eachFile(ctx, args.Profile, func(path m.Path, result m.FileResult) {
		summary.Merge(path, result)
	})
	if err != nil {
		return m.RunSummary{}, err
	}

	slog.Info("scan complete",
		"total", summary.Total,
		"guarded", summary.Guarded,
		"unguarded", summary.Unguarded,
		"files_with_unguarded", len(summary.Files),
	)

	return summary, nil
}

// Count collects per-file counts for every file containing the target call.
func (w *workflow) Count(ctx context.Context, args ScanArgs) ([]m.FileCount, error) {
	var counts []m.FileCount

	err := w.eachFile(ctx, args.Profile, func(path m.Path, result m.FileResult) {
		if result.Total == 0 {
			return
		}

		counts = append(counts, m.FileCount{
			Path:      path,
			Total:     result.Total,
			Guarded:   result.Guarded,
			Unguarded: result.Unguarded,
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Path < counts[j].Path })

	return counts, nil
}

// eachFile enumerates matching files and feeds each file's result to fn.
func (w *workflow) eachFile(ctx context.Context, profile m.ScanProfile, fn func(m.Path, m.FileResult)) error {
	excludes, err := compileExcludes(profile.Exclude)
	if err != nil {
		return err
	}

	files, err := w.collectFiles(profile, excludes)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := w.analyzeFile(path, profile)
		if err != nil {
			slog.Error("failed to analyze file", "path", path, "error", err)
			return fmt.Errorf("analyze %s: %w", path, err)
		}

		slog.Debug("analyzed file",
			"path", path,
			"total", result.Total,
			"unguarded", result.Unguarded,
		)

		fn(path, result)
	}

	return nil
}

// collectFiles walks each root recursively and returns matching files in
// walk order (lexical per root, roots in profile order).
func (w *workflow) collectFiles(profile m.ScanProfile, excludes []*regexp.Regexp) ([]m.Path, error) {
	var files []m.Path

	for _, root := range profile.Paths {
		err := w.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !profile.MatchesExtension(info.Name()) {
				return nil
			}

			if matchesAny(excludes, path) {
				return nil
			}

			files = append(files, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

// analyzeFile reads one file and audits its lines.
func (w *workflow) analyzeFile(path m.Path, profile m.ScanProfile) (m.FileResult, error) {
	content, err := w.ReadFile(path)
	if err != nil {
		return m.FileResult{}, err
	}

	return ScanLines(SplitLines(content), profile), nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
