package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named collection of assertion definitions, usually
// loaded from a YAML document:
//
//	name: smoke
//	assertions:
//	  - type: contains
//	    target: stdout
//	    value: ready
//	  - type: min_length
//	    target: stdout
//	    value: 10
type Suite struct {
	Name       string       `json:"name" yaml:"name"`
	Assertions []Definition `json:"assertions" yaml:"assertions"`
}

// ParseSuite decodes a YAML suite document.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite: %w", err,
		)
	}
	if len(s.Assertions) == 0 {
		return nil, fmt.Errorf(
			"suite %q has no assertions", s.Name,
		)
	}
	for i, def := range s.Assertions {
		if def.Type == "" {
			return nil, fmt.Errorf(
				"suite %q: assertion %d has no type",
				s.Name, i,
			)
		}
		if def.Target == "" {
			return nil, fmt.Errorf(
				"suite %q: assertion %d has no target",
				s.Name, i,
			)
		}
	}
	return &s, nil
}

// LoadSuite reads and parses a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite %s: %w", path, err,
		)
	}
	return ParseSuite(data)
}

// Run evaluates every definition of the suite against the given
// named values using the engine.
func (s *Suite) Run(
	engine Engine, values map[string]any,
) []Result {
	return engine.EvaluateAll(s.Assertions, values)
}
