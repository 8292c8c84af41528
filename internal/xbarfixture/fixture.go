// Package xbarfixture loads YAML-encoded reference crossbar problems
// for the test suite. It is test infrastructure only: no non-test
// file in this module imports it.
package xbarfixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is one reference crossbar problem: the inputs to
// crossbar.Compute, kept separate from the production type so this
// package has no dependency on pkg/crossbar.
type Fixture struct {
	Title           string      `yaml:"title"`
	Resistances     [][]float64 `yaml:"resistances"`
	AppliedVoltages [][]float64 `yaml:"applied_voltages"`
	Word            float64     `yaml:"r_word"`
	Bit             float64     `yaml:"r_bit"`
}

// Load reads and decodes a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("xbarfixture: reading %s: %w", path, err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("xbarfixture: decoding %s: %w", path, err)
	}
	return f, nil
}
