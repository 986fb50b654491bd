package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// LastRunFile is the report file name inside the output directory.
const LastRunFile = "last-run.yaml"

// ErrNoReport is returned when the output directory holds no run report yet.
var ErrNoReport = errors.New("no run report found")

// ReportStore persists the report of the last fix run.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReport(dir m.Path) (m.RunReport, error)
}

// YAMLReportStore keeps reports as YAML files.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to <dir>/last-run.yaml, creating dir as needed.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), LastRunFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads <dir>/last-run.yaml.
func (s *YAMLReportStore) LoadReport(dir m.Path) (m.RunReport, error) {
	path := filepath.Join(string(dir), LastRunFile)

	// #nosec G304 - path is built from the configured output dir
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m.RunReport{}, fmt.Errorf("%w in %s", ErrNoReport, dir)
		}

		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
