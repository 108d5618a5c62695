package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "logguard.dev/pkg/logguard/internal/model"
)

// reportFileName is the file written inside the reports directory.
const reportFileName = "report.yaml"

// SavedReport is the persisted form of one audit run: the summary together
// with the profile that produced it.
type SavedReport struct {
	GeneratedAt time.Time     `yaml:"generated_at"`
	Profile     m.ScanProfile `yaml:"profile"`
	Summary     m.RunSummary  `yaml:"summary"`
}

// ReportStore persists audit summaries so they can be re-rendered later.
type ReportStore interface {
	SaveSummary(dir m.Path, report SavedReport) error
	LoadSummary(dir m.Path) (SavedReport, error)
}

// YAMLReportStore stores one report per directory as report.yaml.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveSummary writes the report into dir, creating the directory as needed.
func (s *YAMLReportStore) SaveSummary(dir m.Path, report SavedReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	content, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, content, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadSummary reads the report saved in dir.
func (s *YAMLReportStore) LoadSummary(dir m.Path) (SavedReport, error) {
	target := filepath.Join(string(dir), reportFileName)

	content, err := os.ReadFile(target)
	if err != nil {
		return SavedReport{}, fmt.Errorf("read report: %w", err)
	}

	var report SavedReport
	if err := yaml.Unmarshal(content, &report); err != nil {
		return SavedReport{}, fmt.Errorf("unmarshal report: %w", err)
	}

	return report, nil
}
