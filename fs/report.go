package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/qbank/ingest"
)

// ReportWriter writes run reports as indented JSON.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter that writes to path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Write replaces the file at the writer's path with report. The report is
// written to a temporary file in the same directory and renamed into place,
// so readers never see a partial report.
func (w *ReportWriter) Write(report *ingest.Report) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
