// Package config loads engine settings from YAML or TOML and builds the
// prompt-processing components they describe.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
)

// Config is the engine configuration file.
type Config struct {
	Seed     int64  `yaml:"seed" toml:"seed"` // 0 seeds from the clock
	Author   string `yaml:"author" toml:"author"`
	Lexicon  string `yaml:"lexicon" toml:"lexicon"` // extra Russian→English YAML
	Phrases  string `yaml:"phrases" toml:"phrases"` // canonical|variant|...|category
	Dataset  string `yaml:"dataset" toml:"dataset"` // sqlite path, empty keeps datasets in memory
	LogLevel string `yaml:"log_level" toml:"log_level"`
	Group    Group  `yaml:"group" toml:"group"`
}

// Group configures group generation.
type Group struct {
	Easing string `yaml:"easing" toml:"easing"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Author:   cube.Author,
		LogLevel: "info",
		Group:    Group{Easing: "linear"},
	}
}

// Load reads a config file, choosing the decoder by extension. Missing fields
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension: %w", path, internalerr.ErrInvalidConfig)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	// Relative paths resolve against the config file's directory
	dir := filepath.Dir(path)
	cfg.Lexicon = resolve(dir, cfg.Lexicon)
	cfg.Phrases = resolve(dir, cfg.Phrases)
	cfg.Dataset = resolve(dir, cfg.Dataset)
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Author == "" {
		c.Author = def.Author
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Group.Easing == "" {
		c.Group.Easing = def.Group.Easing
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, internalerr.ErrInvalidConfig)
	}
	if _, ok := LookupEasing(c.Group.Easing); !ok {
		return fmt.Errorf("group.easing %q (want one of %s): %w",
			c.Group.Easing, strings.Join(EasingNames(), ", "), internalerr.ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Easing returns the configured group easing curve.
func (c Config) Easing() ease.TweenFunc {
	fn, ok := LookupEasing(c.Group.Easing)
	if !ok {
		return ease.Linear
	}
	return fn
}

// Loader returns a Loader for the dictionary files named by c.
func (c Config) Loader() *Loader {
	return &Loader{LexiconPath: c.Lexicon, PhrasesPath: c.Phrases}
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
}

var easingOrder = []string{"linear", "in-quad", "out-quad", "in-out-quad", "in-out-cubic", "in-out-sine"}

// LookupEasing maps a curve name to its tween function.
func LookupEasing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames lists the accepted curve names.
func EasingNames() []string {
	out := make([]string, len(easingOrder))
	copy(out, easingOrder)
	return out
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Dict represents the multi-token dictionary
type Dict struct {
	Entries []DictEntry
}

// DictEntry represents a dictionary entry
type DictEntry struct {
	Canonical string
	Variants  []string
	Category  string
}

// LoadDict loads the multi-token dictionary from a file
// Format: canonical|variant1|variant2|category
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dict := &Dict{Entries: []DictEntry{}}
	lines := strings.Split(string(data), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}

		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		dict.Entries = append(dict.Entries, DictEntry{
			Canonical: parts[0],
			Variants:  parts[1 : len(parts)-1],
			Category:  parts[len(parts)-1],
		})
	}

	return dict, nil
}
