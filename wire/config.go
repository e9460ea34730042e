package wire

import (
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml"

	"github.com/arloliu/binstd/errs"
)

const (
	// DefaultMaxSize is the ceiling DefaultConfig applies to strings, arrays and maps.
	DefaultMaxSize = 16383
	// MaxLength is the largest length a varint32 prefix can carry.
	MaxLength = math.MaxInt32
)

// Config holds the ceilings applied to dynamic-length decodes.
//
// A dynamic length read from the input is rejected with *errs.RangeError when it
// is negative or exceeds the matching ceiling, before any element is read or any
// memory is reserved for it.
type Config struct {
	MaxUTF8Size    int // maximum byte length of a UTF-8 string
	MaxArrayLength int // maximum element count of arrays, collections and byte arrays
	MaxMapSize     int // maximum entry count of maps
}

var (
	// DefaultConfig limits every dynamic length to 16383.
	DefaultConfig = Config{
		MaxUTF8Size:    DefaultMaxSize,
		MaxArrayLength: DefaultMaxSize,
		MaxMapSize:     DefaultMaxSize,
	}

	// UnrestrictedConfig accepts every length a varint32 prefix can carry.
	UnrestrictedConfig = Config{
		MaxUTF8Size:    MaxLength,
		MaxArrayLength: MaxLength,
		MaxMapSize:     MaxLength,
	}
)

// NewConfig creates a Config with the given ceilings.
//
// Returns:
//   - Config: The configuration
//   - error: *errs.RangeError if a ceiling is negative or above MaxLength
func NewConfig(maxUTF8Size, maxArrayLength, maxMapSize int) (Config, error) {
	cfg := Config{
		MaxUTF8Size:    maxUTF8Size,
		MaxArrayLength: maxArrayLength,
		MaxMapSize:     maxMapSize,
	}

	return cfg, cfg.Validate()
}

// Validate checks that every ceiling lies in 0..MaxLength.
func (c Config) Validate() error {
	if err := errs.CheckRange("max utf8 size", int64(c.MaxUTF8Size), MaxLength); err != nil {
		return err
	}

	if err := errs.CheckRange("max array length", int64(c.MaxArrayLength), MaxLength); err != nil {
		return err
	}

	return errs.CheckRange("max map size", int64(c.MaxMapSize), MaxLength)
}

// ReadConfig loads ceilings from a TOML document.
//
// Recognized keys are max_utf8_size, max_array_length and max_map_size.
// Missing keys keep their DefaultConfig value.
//
//	max_utf8_size = 1024
//	max_array_length = 4096
func ReadConfig(r io.Reader) (Config, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig
	fields := []struct {
		key string
		dst *int
	}{
		{"max_utf8_size", &cfg.MaxUTF8Size},
		{"max_array_length", &cfg.MaxArrayLength},
		{"max_map_size", &cfg.MaxMapSize},
	}

	for _, f := range fields {
		if !tree.Has(f.key) {
			continue
		}

		v, ok := tree.Get(f.key).(int64)
		if !ok {
			return Config{}, fmt.Errorf("config key %s: expected integer, got %T", f.key, tree.Get(f.key))
		}

		if err := errs.CheckRange(f.key, v, MaxLength); err != nil {
			return Config{}, err
		}
		*f.dst = int(v)
	}

	return cfg, nil
}
