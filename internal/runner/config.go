package runner

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config carries default flag values loadable from a yaml file, so teams
// can pin their target languages and output conventions next to their
// specifications.
type Config struct {
	Generate []string `yaml:"generate"`
	Output   string   `yaml:"output"`
	Force    bool     `yaml:"force"`
}

// loadConfig reads a yaml config file and folds its values into opts,
// flag values taking precedence over file values.
func loadConfig(path string, opts *Options) error {
	bin, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return err
	}
	if len(opts.Generate) == 0 {
		opts.Generate = cfg.Generate
	}
	if opts.Output == defaultOutput && cfg.Output != "" {
		opts.Output = cfg.Output
	}
	if !opts.Force {
		opts.Force = cfg.Force
	}
	return nil
}
