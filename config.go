package planar

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Config mirrors the optional TOML configuration file. Zero values mean
// "keep the default".
type Config struct {
	Segments  int     `toml:"segments"`
	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
	MaxLength float64 `toml:"max-length"`
	Epsilon   float64 `toml:"epsilon"`

	Intersections string `toml:"intersections"`
	Components    string `toml:"components"`
}

// LoadConfig reads a TOML configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	c := &Config{}
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfigFile reads a TOML configuration from path.
func LoadConfigFile(path string) (*Config, error) {
	c := &Config{}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply transfers the bounding box and the algorithms onto the plane and the
// tolerance onto the package Epsilon. Segments and MaxLength are not applied;
// the plane has no setting for them.
func (c *Config) Apply(pl *Plane) error {
	if c.Epsilon > 0 {
		Epsilon = c.Epsilon
	}
	if c.Min != 0 {
		pl.SetMin(c.Min)
	}
	if c.Max != 0 {
		pl.SetMax(c.Max)
	}
	if c.Intersections != "" {
		a, err := ParseIntersectionAlgorithm(c.Intersections)
		if err != nil {
			return err
		}
		pl.SetIntersectionAlgorithm(a)
	}
	if c.Components != "" {
		a, err := ParseComponentAlgorithm(c.Components)
		if err != nil {
			return err
		}
		pl.SetComponentAlgorithm(a)
	}
	return nil
}
