// Package config loads hamtour settings from a TOML or YAML file.
//
// Settings are layered: Default() first, then the file given to Load, then
// whatever the caller overrides (the CLI applies flags last). Validate checks
// every enumerated field against the package that consumes it. Files ending
// in .yaml or .yml are read as YAML, anything else as TOML; both use the same
// keys.
//
// Example file:
//
//	hash       = "dhash"
//	mst        = "prim"
//	workers    = 8
//	refine     = "swap"
//	time_limit = "30s"
//	max_iters  = 50_000_000
//	seed       = 7
//	output     = "sorted"
//	link       = "hardlink"
//	extensions = ["png", "jpg"]
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamtour/phash"
	"github.com/katalvlaran/hamtour/prim_kruskal"
	"github.com/katalvlaran/hamtour/sink"
	"github.com/katalvlaran/hamtour/tsp"
	"github.com/katalvlaran/hamtour/walk"
)

// Sentinel errors for loading and validation.
var (
	// ErrUnknownKey is returned when the file contains keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned when a field holds an unsupported value.
	ErrInvalid = errors.New("config: invalid value")
)

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "hamtour-out"

// Duration is a time.Duration read from a TOML string such as "10s" or "1m30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of a sort run.
type Config struct {
	Hash        string   `toml:"hash" yaml:"hash"`               // ahash | dhash
	MST         string   `toml:"mst" yaml:"mst"`                 // prim | kruskal
	Workers     int      `toml:"workers" yaml:"workers"`         // prim scan goroutines, 0 = GOMAXPROCS
	Refine      string   `toml:"refine" yaml:"refine"`           // swap | 2opt
	TimeLimit   Duration `toml:"time_limit" yaml:"time_limit"`   // refine wall-clock budget
	MaxIters    int      `toml:"max_iters" yaml:"max_iters"`     // refine attempt budget
	Seed        int64    `toml:"seed" yaml:"seed"`               // refine RNG seed, 0 = fixed default
	Output      string   `toml:"output" yaml:"output"`           // output directory
	Link        string   `toml:"link" yaml:"link"`               // symlink | hardlink
	Concurrency int      `toml:"concurrency" yaml:"concurrency"` // hashing goroutines, 0 = GOMAXPROCS
	Extensions  []string `toml:"extensions" yaml:"extensions"`   // accepted file extensions
	Overwrite   bool     `toml:"overwrite" yaml:"overwrite"`     // replace existing output entries
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Hash:       phash.AHash.String(),
		MST:        prim_kruskal.MethodPrim,
		Refine:     tsp.RandomSwap.String(),
		TimeLimit:  Duration{tsp.DefaultTimeLimit},
		MaxIters:   tsp.DefaultMaxIters,
		Output:     DefaultOutput,
		Link:       sink.Symlink.String(),
		Extensions: append([]string(nil), walk.DefaultExtensions...),
	}
}

// Load decodes the file at path over Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		err = decodeTOML(path, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	return nil
}

// decodeYAML rejects unknown keys through KnownFields; an empty file keeps the defaults.
func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}

	return nil
}

// Validate checks enumerated fields and numeric ranges.
func (c Config) Validate() error {
	if _, err := phash.ParseMethod(c.Hash); err != nil {
		return fmt.Errorf("%w: hash: %v", ErrInvalid, err)
	}
	switch c.MST {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: mst %q (must be kruskal or prim)", ErrInvalid, c.MST)
	}
	if _, err := tsp.ParseAlgo(c.Refine); err != nil {
		return fmt.Errorf("%w: refine %q (must be swap or 2opt)", ErrInvalid, c.Refine)
	}
	if _, err := sink.ParseMode(c.Link); err != nil {
		return fmt.Errorf("%w: link: %v", ErrInvalid, err)
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Concurrency < 0:
		return fmt.Errorf("%w: concurrency %d", ErrInvalid, c.Concurrency)
	case c.Output == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalid)
	case len(c.Extensions) == 0:
		return fmt.Errorf("%w: extensions list is empty", ErrInvalid)
	}

	return nil
}
