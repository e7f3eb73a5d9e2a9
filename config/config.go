/*
Package config sets up an orthography engine from a TOML configuration
file, including tracing.

Example configuration:

	[resources]
	dir = "resources"            # freq_uh.json, freq_ah.json, orthography_model.json, exceptions.txt
	strict = false               # fail on corrupt resources instead of degrading

	[classifier]
	threshold = 0.8

	[cleaner]
	variant = "rup"              # or "ron"

	[tracing]
	adapter = "go"
	destination = "stderr"

	[tracelevel]
	root = "Error"
	orthography = "Info"
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/orthography"
	"github.com/npillmayer/orthography/exceptions"
	"github.com/npillmayer/orthography/freqtable"
	"github.com/npillmayer/schuko"
)

// Default locations of resources.
const (
	DefaultResourceDir    = "resources"
	DefaultClassifierFile = "orthography_model.json"
)

// ResourcesConfig locates the persisted artifacts.
type ResourcesConfig struct {
	Dir            string `toml:"dir"`
	FreqSchwa      string `toml:"freq_schwa"`      // default: Dir/freq_uh.json
	FreqCircumflex string `toml:"freq_circumflex"` // default: Dir/freq_ah.json
	Classifier     string `toml:"classifier"`      // default: Dir/orthography_model.json
	Exceptions     string `toml:"exceptions"`      // default: Dir/exceptions.txt
	Strict         bool   `toml:"strict"`
}

// ClassifierConfig controls the trained classifier.
type ClassifierConfig struct {
	Threshold float64 `toml:"threshold"`
}

// CleanerConfig controls text cleaning.
type CleanerConfig struct {
	Variant string `toml:"variant"`
}

// TracingConfig selects the tracing adapter and output.
type TracingConfig struct {
	Adapter     string `toml:"adapter"`
	Destination string `toml:"destination"`
}

// Config aggregates the settings of an orthography engine.
//
// *Config implements schuko.Configuration, so it can configure tracing
// directly. Keys are dotted paths of the TOML file, e.g. "tracing.adapter"
// or "tracelevel.orthography".
type Config struct {
	Resources  ResourcesConfig   `toml:"resources"`
	Classifier ClassifierConfig  `toml:"classifier"`
	Cleaner    CleanerConfig     `toml:"cleaner"`
	Tracing    TracingConfig     `toml:"tracing"`
	TraceLevel map[string]string `toml:"tracelevel"`
}

var _ schuko.Configuration = (*Config)(nil)

// Default returns a configuration with all defaults applied.
func Default() Config {
	cfg := Config{
		Classifier: ClassifierConfig{Threshold: orthography.DefaultThreshold},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults populates zero values with defaults. A threshold outside of
// [0…1] is reset to the default.
func (c *Config) ApplyDefaults() {
	if c.Resources.Dir == "" {
		c.Resources.Dir = DefaultResourceDir
	}
	if c.Resources.FreqSchwa == "" {
		c.Resources.FreqSchwa = filepath.Join(c.Resources.Dir, freqtable.SchwaFile)
	}
	if c.Resources.FreqCircumflex == "" {
		c.Resources.FreqCircumflex = filepath.Join(c.Resources.Dir, freqtable.CircumflexFile)
	}
	if c.Resources.Classifier == "" {
		c.Resources.Classifier = filepath.Join(c.Resources.Dir, DefaultClassifierFile)
	}
	if c.Resources.Exceptions == "" {
		c.Resources.Exceptions = filepath.Join(c.Resources.Dir, exceptions.File)
	}
	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > 1 {
		c.Classifier.Threshold = orthography.DefaultThreshold
	}
	if c.Cleaner.Variant == "" {
		c.Cleaner.Variant = orthography.VariantAromanian.String()
	}
	if c.Tracing.Adapter == "" {
		c.Tracing.Adapter = "go"
	}
	if c.TraceLevel == nil {
		c.TraceLevel = make(map[string]string)
	}
	if _, ok := c.TraceLevel["root"]; !ok {
		c.TraceLevel["root"] = "Error"
	}
}

// LoadConfig reads a TOML configuration file. A missing file yields the
// default configuration. Settings absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	cfg.Resources = ResourcesConfig{}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg = Default()
			return cfg, nil
		}
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// --- schuko.Configuration --------------------------------------------------

// InitDefaults applies the defaults.
func (c *Config) InitDefaults() {
	c.ApplyDefaults()
}

// IsSet is true if key has a non-empty value.
func (c *Config) IsSet(key string) bool {
	return c.GetString(key) != ""
}

// GetString returns the value for a dotted key as a string.
func (c *Config) GetString(key string) string {
	if level, ok := strings.CutPrefix(key, "tracelevel."); ok {
		return c.TraceLevel[level]
	}
	switch key {
	case "tracing.adapter":
		return c.Tracing.Adapter
	case "tracing.destination":
		return c.Tracing.Destination
	case "resources.dir":
		return c.Resources.Dir
	case "resources.freq_schwa":
		return c.Resources.FreqSchwa
	case "resources.freq_circumflex":
		return c.Resources.FreqCircumflex
	case "resources.classifier":
		return c.Resources.Classifier
	case "resources.exceptions":
		return c.Resources.Exceptions
	case "resources.strict":
		return strconv.FormatBool(c.Resources.Strict)
	case "classifier.threshold":
		return strconv.FormatFloat(c.Classifier.Threshold, 'g', -1, 64)
	case "cleaner.variant":
		return c.Cleaner.Variant
	}
	return ""
}

// GetInt returns the value for key as an integer, 0 if it is not one.
func (c *Config) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

// GetBool returns the value for key as a boolean, false if it is not one.
func (c *Config) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

// IsInteractive is always false.
func (c *Config) IsInteractive() bool {
	return false
}
