// Package config loads library settings from YAML:
//
//	canvas:
//	  width: 1000
//	  height: 1000
//	normalize:
//	  proportion: 0.7
//	  proportion_max: 5.0
//	stream:
//	  compression: gzip
//	  level: 9
//	  workers: 4
//
// Missing keys keep their defaults.
package config

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/juruen/tegaki/character"
	"github.com/juruen/tegaki/stream"
)

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Normalize struct {
	Proportion    float64 `yaml:"proportion"`
	ProportionMax float64 `yaml:"proportion_max"`
}

type Stream struct {
	Compression string `yaml:"compression"`
	Level       int    `yaml:"level"`
	Workers     int64  `yaml:"workers"`
}

type Config struct {
	Canvas    Canvas    `yaml:"canvas"`
	Normalize Normalize `yaml:"normalize"`
	Stream    Stream    `yaml:"stream"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  character.DefaultWidth,
			Height: character.DefaultHeight,
		},
		Normalize: Normalize{
			Proportion:    character.Proportion,
			ProportionMax: character.ProportionMax,
		},
		Stream: Stream{
			Compression: stream.None.String(),
			Level:       stream.DefaultLevel,
			Workers:     1,
		},
	}
}

// Load reads YAML from r on top of the defaults and validates the result.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads the configuration file at path
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return cfg, errors.Wrapf(err, "can't load %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Wrapf(character.ErrInvalidValue, "config: canvas %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Normalize.Proportion <= 0 || c.Normalize.Proportion > 1 {
		return errors.Wrapf(character.ErrInvalidValue, "config: proportion %v not in (0, 1]", c.Normalize.Proportion)
	}
	if c.Normalize.ProportionMax <= 0 {
		return errors.Wrapf(character.ErrInvalidValue, "config: proportion_max %v", c.Normalize.ProportionMax)
	}
	if _, err := stream.ParseCompression(c.Stream.Compression); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Stream.Level < 1 || c.Stream.Level > 9 {
		return errors.Wrapf(character.ErrInvalidValue, "config: level %d not in 1..9", c.Stream.Level)
	}
	if c.Stream.Workers < 1 {
		return errors.Wrapf(character.ErrInvalidValue, "config: workers %d", c.Stream.Workers)
	}
	return nil
}

func (c Config) NormalizeOptions() character.NormalizeOptions {
	return character.NormalizeOptions{
		Proportion:    c.Normalize.Proportion,
		ProportionMax: c.Normalize.ProportionMax,
	}
}

// StreamOptions assumes a validated config
func (c Config) StreamOptions() stream.Options {
	comp, _ := stream.ParseCompression(c.Stream.Compression)
	return stream.Options{Compression: comp, Level: c.Stream.Level}
}

// ReadAll reads the files at paths with the configured stream options,
// running at most Stream.Workers parses at a time.
func (c Config) ReadAll(ctx context.Context, paths []string) ([]*character.Character, error) {
	return stream.ReadAll(ctx, paths, c.StreamOptions(), c.Stream.Workers)
}

// NewWriting returns an empty writing on the configured canvas
func (c Config) NewWriting() (*character.Writing, error) {
	return character.NewWritingSize(c.Canvas.Width, c.Canvas.Height)
}
