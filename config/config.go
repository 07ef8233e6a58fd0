// Package config loads the optional YAML settings file; flags override it in main.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/person"
)

// Config holds runtime settings
type Config struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Debug         bool          `yaml:"debug"`
	Sound         bool          `yaml:"sound"`
	Person        PersonSeed    `yaml:"person"`
}

// PersonSeed is the record shown on the first frame
type PersonSeed struct {
	Name     string `yaml:"name"`
	Age      uint32 `yaml:"age"`
	Location string `yaml:"location"`
	Color    string `yaml:"color"` // #RRGGBB, linear channels; empty is opaque black
	Counter  uint32 `yaml:"counter"`
}

// Default returns the settings used without a config file
func Default() Config {
	return Config{
		FrameInterval: parameter.FrameUpdateInterval,
		Sound:         true,
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.FrameInterval < parameter.MinFrameInterval {
		return errors.Errorf("frame_interval %v below minimum %v", c.FrameInterval, parameter.MinFrameInterval)
	}
	if c.Person.Color != "" {
		if _, err := core.ParseHex(c.Person.Color, core.Black); err != nil {
			return errors.Wrap(err, "person.color")
		}
	}
	return nil
}

// NewPerson builds the initial record from the seed
// Validate must have accepted the config
func (s PersonSeed) NewPerson() *person.Person {
	p := person.New()
	p.Name = s.Name
	p.Age = s.Age
	p.Location = s.Location
	p.Counter = s.Counter
	if s.Color != "" {
		if c, err := core.ParseHex(s.Color, core.Black); err == nil {
			p.Color = c
		}
	}
	return p
}
