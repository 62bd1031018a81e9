// Package config loads the host runner settings from a YAML file.
package config

import (
	"os"

	"blocks/tinyboy/input"
	"blocks/tinyboy/seq"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a host run. Command-line flags override it.
type Config struct {
	Mode     string   `yaml:"mode"`
	Scale    int      `yaml:"scale"`
	Trace    bool     `yaml:"trace"`
	Headless Headless `yaml:"headless"`
	Serial   Serial   `yaml:"serial"`
}

type Headless struct {
	Enabled bool   `yaml:"enabled"`
	Hz      int    `yaml:"hz"`
	Ticks   uint64 `yaml:"ticks"`
	// Script is a pulse sequence such as "_D_R_U"; empty means idle.
	Script     string `yaml:"script"`
	PulseReads int    `yaml:"pulse_reads"`
}

type Serial struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Mode:  seq.Linear.String(),
		Scale: 6,
		Headless: Headless{
			Hz:         60,
			PulseReads: 1,
		},
		Serial: Serial{Baud: 115200},
	}
}

// Load reads path from fs over the defaults. An empty path returns the
// defaults; a named file that does not exist is an error.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Errorf("config %s: not found", path)
		}
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s: parse", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := seq.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Scale < 1 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Headless.Hz < 1 {
		return errors.Errorf("headless.hz must be positive, got %d", c.Headless.Hz)
	}
	if c.Headless.PulseReads < 1 {
		return errors.Errorf("headless.pulse_reads must be positive, got %d", c.Headless.PulseReads)
	}
	if _, err := input.Parse(c.Headless.Script); err != nil {
		return errors.Wrap(err, "headless.script")
	}
	if c.Serial.Baud < 1 {
		return errors.Errorf("serial.baud must be positive, got %d", c.Serial.Baud)
	}
	return nil
}

// ModeValue returns the parsed mode. It assumes Validate passed.
func (c Config) ModeValue() seq.Mode {
	m, _ := seq.ParseMode(c.Mode)
	return m
}

// Sequence returns the parsed headless script. It assumes Validate passed.
func (c Config) Sequence() input.Sequence {
	s, _ := input.Parse(c.Headless.Script)
	return s
}
