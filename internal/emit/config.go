// Package emit drives the file-to-file emission path: read a serialized
// tree, print it, assemble the output (banner, runtime prelude) and write
// it out. The printer stays pure; everything with a failure mode lives
// here.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/chime/internal/config"
)

// FileConfig is the optional chime.yaml emit configuration. Every field
// may be omitted; flags override whatever the file sets.
type FileConfig struct {
	// Out is the output path. Empty means stdout.
	Out string `yaml:"out,omitempty"`

	// Runtime controls whether the runtime prelude is prepended.
	// A nil pointer means "not set" so a false in the file still wins
	// over the default.
	Runtime *bool `yaml:"runtime,omitempty"`

	// Banner is a verbatim line placed at the very top of the output,
	// usually a license or provenance comment.
	Banner string `yaml:"banner,omitempty"`
}

// LoadConfig reads and parses a chime.yaml file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses chime.yaml content from bytes. The path argument is
// used only for error messages.
func ParseConfig(data []byte, path string) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// FindConfig searches for a chime.yaml starting from dir and walking up
// to parent directories. Returns the path if found, or empty string and
// nil error if not.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Apply folds the file config into opts, filling only fields the caller
// left at their zero value.
func (c *FileConfig) Apply(opts *Options) {
	if opts.Out == "" {
		opts.Out = c.Out
	}
	if !opts.runtimeSet && c.Runtime != nil {
		opts.Runtime = *c.Runtime
	}
	if opts.Banner == "" {
		opts.Banner = c.Banner
	}
}
