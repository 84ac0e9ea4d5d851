// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/mdfix/pkg/markdown"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultFileNames are looked up, in order, when no config path is given.
var DefaultFileNames = []string{".mdfix.yaml", ".mdfix.yml", ".mdfix.hcl", ".mdfix.json"}

// DefaultExtensions are the document extensions collected from directories.
var DefaultExtensions = []string{".md"}

// 📚 Config represents the complete configuration
type Config struct {
	Extensions    []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Include       []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude       []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Workers       int      `json:"workers,omitempty" yaml:"workers,omitempty" hcl:"workers,optional"`
	BoldLineLimit int      `json:"bold_line_limit,omitempty" yaml:"bold_line_limit,omitempty" hcl:"bold_line_limit,optional"`
	DisplayWidth  int      `json:"display_width,omitempty" yaml:"display_width,omitempty" hcl:"display_width,optional"`
	DisabledRules []string `json:"disabled_rules,omitempty" yaml:"disabled_rules,omitempty" hcl:"disabled_rules,optional"`
	Backup        bool     `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`

	location string
}

// 🏭 Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path
	cfg.applyDefaults()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔦 Discover loads the first default config file found in dir, or the defaults
func Discover(ctx context.Context, dir string) (*Config, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Errorf("checking %s: %w", path, err)
		}
		return Load(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found, using defaults")
	return Default(), nil
}

// applyDefaults fills every unset field
func (cfg *Config) applyDefaults() {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.BoldLineLimit == 0 {
		cfg.BoldLineLimit = markdown.DefaultBoldLineLimit
	}
	if cfg.DisplayWidth == 0 {
		cfg.DisplayWidth = markdown.DefaultDisplayWidth
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.BoldLineLimit < 0 {
		return errors.Errorf("bold_line_limit must be positive, got %d", cfg.BoldLineLimit)
	}
	if cfg.DisplayWidth < 0 {
		return errors.Errorf("display_width must be positive, got %d", cfg.DisplayWidth)
	}

	// Normalize extensions
	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return errors.Errorf("extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	for _, pattern := range append(append([]string(nil), cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	for _, name := range cfg.DisabledRules {
		if _, ok := markdown.LookupRule(name); !ok {
			return errors.Errorf("disabled_rules: unknown rule %q", name)
		}
	}

	return nil
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🩹 Corrector builds the corrector described by the config
func (cfg *Config) Corrector() (*markdown.Corrector, error) {
	c, err := markdown.NewCorrector(markdown.Options{
		BoldLineLimit: cfg.BoldLineLimit,
		Disabled:      cfg.DisabledRules,
	})
	if err != nil {
		return nil, errors.Errorf("creating corrector: %w", err)
	}
	return c, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	source := cfg.location
	if source == "" {
		source = "defaults"
	}
	return fmt.Sprintf("%s: extensions=%s workers=%d disabled=%d", source, strings.Join(cfg.Extensions, ","), cfg.Workers, len(cfg.DisabledRules))
}
