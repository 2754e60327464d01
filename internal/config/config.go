// Package config holds the parameters of a colormix run: which sample sets
// to generate and where to write the page.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amonks/colormix/internal/color"
	"github.com/amonks/colormix/internal/record"
	"github.com/pkg/errors"
)

// Config is the contents of a colormix.toml file. Fields missing from the
// file keep the values from [Default].
type Config struct {
	Out     string `toml:"out"`
	MinSize int    `toml:"min_size"`
	MaxSize int    `toml:"max_size"`
	Rounds  int    `toml:"rounds"`
	// Seed 0 picks a seed from the clock.
	Seed uint64 `toml:"seed"`
	// Stylesheet is copied to the output directory instead of the
	// built-in one when set.
	Stylesheet string `toml:"stylesheet"`
	// Fallback is the hex color used for aggregates that fail.
	Fallback string `toml:"fallback"`
	Plot     bool   `toml:"plot"`
	Title    string `toml:"title"`
}

func Default() Config {
	return Config{
		Out:      "out",
		MinSize:  2,
		MaxSize:  5,
		Rounds:   10,
		Fallback: color.Black.Hex(),
		Plot:     true,
		Title:    "colormix",
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	c := Default()
	f, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	md, err := toml.Decode(string(f), &c)
	if err != nil {
		return c, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrap(err, path)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Out == "" {
		return errors.New("out must not be empty")
	}
	if c.MinSize < 1 {
		return errors.Errorf("min_size must be at least 1, got %d", c.MinSize)
	}
	if c.MaxSize < c.MinSize {
		return errors.Errorf("max_size (%d) is smaller than min_size (%d)", c.MaxSize, c.MinSize)
	}
	if c.Rounds < 1 {
		return errors.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if _, err := color.ParseHex(c.Fallback); err != nil {
		return errors.Wrap(err, "fallback")
	}
	return nil
}

// RecordOptions translates c into the options for [record.Generate]. c must
// be valid.
func (c Config) RecordOptions() record.Options {
	fallback, err := color.ParseHex(c.Fallback)
	if err != nil {
		fallback = color.Black
	}
	return record.Options{
		MinSize:  c.MinSize,
		MaxSize:  c.MaxSize,
		Rounds:   c.Rounds,
		Seed:     c.Seed,
		Fallback: fallback,
	}
}
