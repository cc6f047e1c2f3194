// Package config loads and validates scenario configuration: the disk
// radius, the rotational symmetry constraint, the shape list to pack, and
// optional telemetry settings.
package config

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/packing"
)

// Telemetry holds the broker settings for optional placement telemetry.
// An empty MQTTBroker (after any MQTT_BROKER env-var override) disables
// telemetry entirely.
type Telemetry struct {
	MQTTBroker  string `yaml:"mqttBroker"`
	TopicPrefix string `yaml:"topicPrefix"`
}

// Scenario is the top-level configuration document: a disk, a symmetry
// constraint, the ordered shapes to pack (each shape an [x,y] pair list,
// vertex 0 the anchor), and optional telemetry/logging settings.
type Scenario struct {
	Radius       float64        `yaml:"radius"`
	SymmetryStep int            `yaml:"symmetryStep"`
	Shapes       [][][2]float64 `yaml:"shapes"`
	Telemetry    Telemetry      `yaml:"telemetry"`
	LogLevel     string         `yaml:"logLevel"`
}

// validSymmetrySteps enumerates the discrete rotation increments the
// packer understands as a symmetry constraint.
var validSymmetrySteps = map[int]packing.Symmetry{
	360: packing.SymmetryNone,
	180: packing.SymmetryTwofold,
	120: packing.SymmetryThreefold,
	90:  packing.SymmetryFourfold,
	60:  packing.SymmetrySixfold,
}

// Load reads and validates a scenario from a YAML file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the scenario to path as YAML.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks required fields and the recognized-symmetry constraint.
func (s *Scenario) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", s.Radius)
	}
	if s.SymmetryStep == 0 {
		s.SymmetryStep = 360
	}
	if _, ok := validSymmetrySteps[s.SymmetryStep]; !ok {
		return fmt.Errorf("symmetryStep %d is not one of 360, 180, 120, 90, 60", s.SymmetryStep)
	}
	if len(s.Shapes) == 0 {
		return fmt.Errorf("at least one shape must be defined")
	}
	for i, sh := range s.Shapes {
		if len(sh) < 3 {
			return fmt.Errorf("shapes[%d] needs at least 3 points, got %d", i, len(sh))
		}
	}
	return nil
}

// Symmetry returns the validated symmetry step as a packing.Symmetry.
func (s *Scenario) Symmetry() packing.Symmetry {
	return validSymmetrySteps[s.SymmetryStep]
}

// Polygons converts the YAML shape list into packing.Polygon values, in
// the order they appear in the file.
func (s *Scenario) Polygons() []packing.Polygon {
	out := make([]packing.Polygon, len(s.Shapes))
	for i, sh := range s.Shapes {
		p := make(packing.Polygon, len(sh))
		for j, pt := range sh {
			p[j] = orb.Point{pt[0], pt[1]}
		}
		out[i] = p
	}
	return out
}
