package filespecs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/mtth/filespecs/internal/filter"
	"github.com/mtth/filespecs/internal/fspath"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".filespecs.yaml"

// Config captures defaults for an expansion, typically checked in next to the data it describes.
type Config struct {
	// Patterns expanded in addition to any supplied on the command line.
	Patterns []string `yaml:"patterns"`
	// Exclusion patterns, see filter.New.
	Exclude []string `yaml:"exclude"`
	// Base directory for relative patterns. Relative values are resolved against the directory
	// containing the configuration file.
	Base fspath.Local `yaml:"base"`
	// Whether ** matches across directory levels.
	Recursive bool `yaml:"recursive"`
}

var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ReadConfig parses the configuration at the given path. If the path is a directory, the default
// configuration file inside it is read.
func ReadConfig(fp fspath.Local) (*Config, error) {
	info, err := fileSystem.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, defaultConfigName)
	}
	data, err := afero.ReadFile(fileSystem, fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Base != "" {
		cfg.Base = fspath.ExpandHome(cfg.Base)
		if !filepath.IsAbs(cfg.Base) {
			cfg.Base = filepath.Join(filepath.Dir(fp), cfg.Base)
		}
	}
	slog.Debug("Read configuration.", dataAttrs(slog.String("path", fp), slog.Int("patterns", len(cfg.Patterns))))
	return &cfg, nil
}

// FindConfig reads the default configuration file in a directory, returning an empty configuration
// if there is none.
func FindConfig(dp fspath.Local) (*Config, error) {
	cfg, err := ReadConfig(dp)
	if errors.Is(err, ErrMissingConfig) {
		slog.Debug("No configuration found.", dataAttrs(slog.String("dir", dp)))
		return &Config{}, nil
	}
	return cfg, err
}

// Options returns the expander options corresponding to the configuration.
func (c *Config) Options() ([]Option, error) {
	pred, err := filter.New(c.Exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts := []Option{WithExclude(pred), WithRecursive(c.Recursive)}
	if c.Base != "" {
		opts = append(opts, WithBaseDir(c.Base))
	}
	return opts, nil
}
