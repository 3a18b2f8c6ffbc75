package opts

import (
	"os"

	"github.com/funvibe/javac-core/internal/lint"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional "javac-core.yaml" on-disk config, for driver
// integrations that prefer a config file over a long CLI invocation (e.g.
// a build-tool plugin). Its field set mirrors Options' CLI-derived one.
type FileConfig struct {
	Lint        []string `yaml:"lint"`
	Deprecation bool     `yaml:"deprecation"`
	NoWarn      bool     `yaml:"nowarn"`
	Werror      bool     `yaml:"werror"`
	MaxErrors   int      `yaml:"maxErrors"`
	MaxWarnings int      `yaml:"maxWarnings"`
	Doclint     []string `yaml:"doclint"`
}

// LoadFile reads and parses a javac-core.yaml config file at path.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// Merge applies a FileConfig as a base layer beneath o, so CLI flags
// (already applied to o) take precedence over file-provided settings.
func (o Options) Merge(fc FileConfig) Options {
	merged := o
	for _, name := range fc.Lint {
		if cat, ok := lint.CategoryByName(name); ok {
			merged.Lint = merged.Lint.Plus(cat)
		}
	}
	if fc.Deprecation {
		merged.Deprecation = true
	}
	if fc.NoWarn {
		merged.NoWarn = true
	}
	if fc.Werror {
		merged.Werror = true
	}
	if merged.MaxErrors == Default().MaxErrors && fc.MaxErrors != 0 {
		merged.MaxErrors = fc.MaxErrors
	}
	if merged.MaxWarnings == 0 && fc.MaxWarnings != 0 {
		merged.MaxWarnings = fc.MaxWarnings
	}
	if len(merged.DoclintSubopts) == 0 {
		merged.DoclintSubopts = fc.Doclint
	}
	return merged
}
