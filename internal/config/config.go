package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	rotate "github.com/kei2100/rotatelog"
)

// Default values
const (
	DefaultMaxFileSize  = rotate.DefaultMaxSize
	DefaultMaxRotations = rotate.DefaultMaxRotations
	DefaultPermission   = rotate.DefaultPermission
	DefaultChunkSize    = rotate.DefaultChunkSize
)

// Config is the resolved configuration of rotatelog.
// It can be read from a TOML file:
//
//	output = "/var/log/app.log"
//	max_file_size = 10485760
//	max_rotations = 3
//	permission = 0o640
//	chunk_size = 8192
type Config struct {
	Output       string `toml:"output"`
	MaxFileSize  uint64 `toml:"max_file_size"`
	MaxRotations uint32 `toml:"max_rotations"`
	Permission   uint32 `toml:"permission"`
	ChunkSize    int    `toml:"chunk_size"`
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		MaxFileSize:  DefaultMaxFileSize,
		MaxRotations: DefaultMaxRotations,
		Permission:   DefaultPermission,
		ChunkSize:    DefaultChunkSize,
	}
}

// Load reads the TOML file at path on top of Default.
// Keys missing from the file keep their default value, unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate reports whether the configuration can be used
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("config: output is not set")
	}
	if uint64(c.MaxRotations) > uint64(math.MaxInt) {
		return fmt.Errorf("config: max rotations %d is out of range", c.MaxRotations)
	}
	if c.Permission > 0o777 {
		return fmt.Errorf("config: invalid permission %#o", c.Permission)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("config: invalid chunk size %d", c.ChunkSize)
	}
	return nil
}

// Options returns the rotate options of the configuration
func (c Config) Options() []rotate.OptionFunc {
	return []rotate.OptionFunc{
		rotate.WithMaxSize(c.MaxFileSize),
		rotate.WithMaxRotations(int(c.MaxRotations)),
		rotate.WithPermission(os.FileMode(c.Permission)),
		rotate.WithChunkSize(c.ChunkSize),
	}
}
