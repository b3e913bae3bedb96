// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
)

// Environment variables that override config file values.
const (
	EnvContentDir   = "WORKSHOP_CONTENT_DIR"
	EnvKeywords     = "WORKSHOP_KEYWORDS"
	EnvTranslations = "WORKSHOP_TRANSLATIONS"
	EnvSourcesDir   = "WORKSHOP_SOURCES_DIR"
	EnvVerbose      = "WORKSHOP_VERBOSE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; an empty ContentDir means the embedded library.
type Config struct {
	// Paths
	ContentDir   string `json:"content_dir,omitempty"`  // Directory holding the content library files
	Keywords     string `json:"keywords,omitempty"`     // Keyword table overriding the library's keywords.yaml
	Translations string `json:"translations,omitempty"` // Prior-industry translation CSV
	SourcesDir   string `json:"sources_dir,omitempty"`  // Pathway source documents for packets
	Template     string `json:"template,omitempty"`     // Text template for previews

	Limits validation.Limits `json:"limits"`

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from WORKSHOP_* environment variables. Unset or
// empty variables leave the field alone.
func (c *Config) ApplyEnv() error {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.ContentDir, EnvContentDir)
	set(&c.Keywords, EnvKeywords)
	set(&c.Translations, EnvTranslations)
	set(&c.SourcesDir, EnvSourcesDir)

	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a boolean: %w", EnvVerbose, err)
		}
		c.Verbose = b
	}
	return nil
}

// Validate checks that configured paths exist and the limits are usable.
func (c *Config) Validate() error {
	dirs := map[string]string{"content_dir": c.ContentDir, "sources_dir": c.SourcesDir}
	for name, dir := range dirs {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("config error: %s not found: %s", name, dir)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: %s is not a directory: %s", name, dir)
		}
	}

	files := map[string]string{"keywords": c.Keywords, "translations": c.Translations, "template": c.Template}
	for name, path := range files {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	if err := c.Limits.MergeWithDefaults().Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Zero limits take the standard one-page values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ContentDir == "" {
		result.ContentDir = defaults.ContentDir
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Translations == "" {
		result.Translations = defaults.Translations
	}
	if result.SourcesDir == "" {
		result.SourcesDir = defaults.SourcesDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	if result.Limits == (validation.Limits{}) {
		result.Limits = defaults.Limits
	}
	result.Limits = result.Limits.MergeWithDefaults()

	// Bools cannot distinguish unset from false; CLI flags win for them.
	return result
}

// ContentSource resolves the library the loader should read: the content
// directory or the embedded library, with keyword and translation overrides.
func (c *Config) ContentSource() content.Source {
	var base content.Source = content.EmbeddedSource()
	if c.ContentDir != "" {
		base = content.DirSource{Dir: c.ContentDir}
	}

	files := make(map[string]string)
	if c.Keywords != "" {
		files[content.FileKeywords] = c.Keywords
	}
	if c.Translations != "" {
		files[content.FileTranslations] = c.Translations
	}
	if len(files) == 0 {
		return base
	}
	return content.OverlaySource{Base: base, Files: files}
}
