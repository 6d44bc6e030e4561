package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/qbank"
	"gopkg.in/yaml.v3"
)

// Exporter writes questions as markdown files, one per question, under
// baseDir/name/<category>/<slug>.md. Files go to a temporary directory that
// replaces the final one on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{baseDir: baseDir, name: name}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Path returns the directory the export is committed to.
func (e *Exporter) Path() string {
	return e.finalDir()
}

// Save writes q to the temporary directory.
func (e *Exporter) Save(ctx context.Context, q *qbank.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := FormatQuestion(q)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), qbank.Slugify(q.Category), q.Slug+".md")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the final directory with the saved files.
func (e *Exporter) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the saved files.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

type frontmatter struct {
	Title            string           `yaml:"title"`
	Slug             string           `yaml:"slug"`
	Category         string           `yaml:"category"`
	Difficulty       qbank.Difficulty `yaml:"difficulty"`
	DifficultySource qbank.Provenance `yaml:"difficultySource,omitempty"`
	Tags             []string         `yaml:"tags,flow"`
	Order            int              `yaml:"order"`
	ReadingTime      int              `yaml:"readingTime"`
	QualityScore     *int             `yaml:"qualityScore,omitempty"`
	LowConfidence    bool             `yaml:"lowConfidence,omitempty"`
}

// FormatQuestion renders q as markdown with YAML frontmatter. The body holds
// the question content followed by the answer under an "## Answer" heading.
func FormatQuestion(q *qbank.Question) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Title:            q.Title,
		Slug:             q.Slug,
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		DifficultySource: q.DifficultySource,
		Tags:             q.Tags,
		Order:            q.Order,
		ReadingTime:      q.ReadingTime,
		QualityScore:     q.QualityScore,
		LowConfidence:    q.LowConfidence,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n# ")
	b.WriteString(q.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(q.Content))
	b.WriteString("\n\n## Answer\n\n")
	b.WriteString(strings.TrimSpace(q.Answer))
	b.WriteString("\n")
	return b.String(), nil
}
