// Package scenario loads multiverse starting positions from config files.
// A scenario names the serialized boards each starting timeline begins
// with; viper handles the file formats, so YAML, JSON, and TOML all work.
package scenario

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/JKTKops/5Head/internal/errors"
	"github.com/JKTKops/5Head/internal/multiverse"
)

// Scenario describes a multiverse starting position.
type Scenario struct {
	// Name labels the scenario in diagnostics; optional.
	Name string `mapstructure:"name"`

	// Negative holds the negative-side boards, farthest line first.
	Negative []string `mapstructure:"negative"`

	// Positive holds the positive-side boards; the first is the central
	// line and must be present.
	Positive []string `mapstructure:"positive"`
}

// Load reads a scenario from the given file.
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}

	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, errors.Wrapf(err, "decode scenario %s", path)
	}

	if len(sc.Positive) == 0 {
		return nil, fmt.Errorf("scenario %s has no central line: %w",
			path, errors.ErrInvalidScenario)
	}
	return &sc, nil
}

// Position sets up the multiverse the scenario describes.
func (s *Scenario) Position() (*multiverse.Position, error) {
	p, err := multiverse.NewPosition(s.Negative, s.Positive)
	if err != nil && s.Name != "" {
		return nil, errors.Wrapf(err, "scenario %q", s.Name)
	}
	return p, err
}
