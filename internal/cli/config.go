package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/protolab/protoboard/pkg/pipeline"
)

// Config is the on-disk CLI configuration, loaded from
// ~/.config/protoboard/config.toml. It carries named board profiles so
// recurring board dimensions do not have to be repeated as flags:
//
//	default_profile = "half"
//
//	[profile.half]
//	surface = "breadboard"
//	columns = 30
//
//	[profile.vero]
//	surface = "stripboard"
//	rows = 24
//	columns = 37
type Config struct {
	DefaultProfile string             `toml:"default_profile"`
	Profiles       map[string]Profile `toml:"profile"`
}

// Profile is a named set of board dimensions and placement limits.
// Zero fields keep the pipeline defaults.
type Profile struct {
	Surface       string `toml:"surface"`
	Rows          int    `toml:"rows"`
	Columns       int    `toml:"columns"`
	ColumnCeiling int    `toml:"column_ceiling"`
	Gap           int    `toml:"gap"`
	MaxPerType    int    `toml:"max_per_type"`
}

// loadConfig reads the config file at path. A missing file is not an error
// and yields an empty config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// profile resolves a profile by name, falling back to the config's default
// profile when name is empty. An empty name with no default returns the zero
// profile. The second return is the resolved name, used to scope cache keys
// per profile.
func (c Config) profile(name string) (Profile, string, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return Profile{}, "", nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, "", fmt.Errorf("unknown board profile %q", name)
	}
	return p, name, nil
}

// apply copies the profile's non-zero fields onto opts. Flags set after
// apply override the profile.
func (p Profile) apply(opts *pipeline.Options) {
	if p.Surface != "" {
		opts.Surface = p.Surface
	}
	if p.Rows > 0 {
		opts.Rows = p.Rows
	}
	if p.Columns > 0 {
		opts.Columns = p.Columns
	}
	if p.ColumnCeiling > 0 {
		opts.ColumnCeiling = p.ColumnCeiling
	}
	if p.Gap > 0 {
		opts.Gap = p.Gap
	}
	if p.MaxPerType > 0 {
		opts.MaxPerType = p.MaxPerType
	}
}
