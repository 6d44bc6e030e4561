package qbank

import "strings"

// Mode selects how ingestion treats a slug that already exists in the catalog.
type Mode string

// Ingestion modes.
const (
	ModeCreateOnly Mode = "create-only"
	ModeUpsert     Mode = "upsert"
)

// Supported boundary depths and the default.
const (
	MinBoundaryDepth     = 2
	MaxBoundaryDepth     = 3
	DefaultBoundaryDepth = 3
)

// Config holds the inputs of one import run.
type Config struct {
	Sources       []Source         `yaml:"sources"`
	Mode          Mode             `yaml:"mode"`
	BoundaryDepth int              `yaml:"boundaryDepth"`
	Rules         *ClassifierRules `yaml:"rules,omitempty"`
}

// SetDefaults fills in zero-valued settings.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeCreateOnly
	}
	if c.BoundaryDepth == 0 {
		c.BoundaryDepth = DefaultBoundaryDepth
	}
}

// Validate returns an EINVALID error if the configuration cannot drive a run.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return Errorf(EINVALID, "at least one source required")
	}
	for i, src := range c.Sources {
		if strings.TrimSpace(src.Location) == "" {
			return Errorf(EINVALID, "source %d: location required", i+1)
		}
		if strings.TrimSpace(src.Category) == "" {
			return Errorf(EINVALID, "source %d (%s): category required", i+1, src.Location)
		}
	}
	switch c.Mode {
	case ModeCreateOnly, ModeUpsert:
	default:
		return Errorf(EINVALID, "unknown mode %q (want %s or %s)", c.Mode, ModeCreateOnly, ModeUpsert)
	}
	if c.BoundaryDepth < MinBoundaryDepth || c.BoundaryDepth > MaxBoundaryDepth {
		return Errorf(EINVALID, "boundary depth must be %d or %d, got %d", MinBoundaryDepth, MaxBoundaryDepth, c.BoundaryDepth)
	}
	if c.Rules != nil {
		if err := c.Rules.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseSource parses a "location=category" pair.
func ParseSource(s string) (Source, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return Source{}, Errorf(EINVALID, "source %q must have the form location=category", s)
	}
	return Source{
		Location: strings.TrimSpace(s[:i]),
		Category: strings.TrimSpace(s[i+1:]),
	}, nil
}
