// Package yaml loads run configuration and classifier rules from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/qbank"
	yamlv3 "gopkg.in/yaml.v3"
)

type rawConfig struct {
	Sources       []qbank.Source `yaml:"sources"`
	Mode          qbank.Mode     `yaml:"mode"`
	BoundaryDepth int            `yaml:"boundaryDepth"`
	Rules         yamlv3.Node    `yaml:"rules"`
}

// LoadConfig reads the run configuration at path. Defaults are applied but
// the result is not validated, so callers can add sources first.
func LoadConfig(path string) (*qbank.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qbank.Errorf(qbank.EINVALID, "read config: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a run configuration. Unknown fields and multiple
// documents are rejected. A rules section overrides the default classifier
// tables field by field.
func ParseConfig(data []byte) (*qbank.Config, error) {
	var raw rawConfig
	if err := decodeStrict(data, &raw); err != nil {
		return nil, err
	}

	cfg := &qbank.Config{
		Sources:       raw.Sources,
		Mode:          raw.Mode,
		BoundaryDepth: raw.BoundaryDepth,
	}
	if !raw.Rules.IsZero() {
		b, err := yamlv3.Marshal(&raw.Rules)
		if err != nil {
			return nil, qbank.Errorf(qbank.EINVALID, "parse yaml: rules: %v", err)
		}
		rules, err := ParseRules(b)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}
	cfg.SetDefaults()
	return cfg, nil
}

// LoadRules reads classifier rules from path.
func LoadRules(path string) (*qbank.ClassifierRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qbank.Errorf(qbank.EINVALID, "read rules: %v", err)
	}
	return ParseRules(data)
}

// ParseRules decodes classifier rules on top of the defaults and validates
// the result. A field present in data replaces the default entirely.
func ParseRules(data []byte) (*qbank.ClassifierRules, error) {
	rules := qbank.DefaultClassifierRules()
	if err := decodeStrict(data, rules); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func decodeStrict(data []byte, v any) error {
	decoder := yamlv3.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return qbank.Errorf(qbank.EINVALID, "parse yaml: %v", err)
	}
	var extra yamlv3.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return qbank.Errorf(qbank.EINVALID, "parse yaml: multiple documents are not supported")
		}
		return qbank.Errorf(qbank.EINVALID, "parse yaml: %v", err)
	}
	return nil
}
