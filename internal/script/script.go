// Package script loads action scripts: the YAML documents that drive a
// replay session, holding the initial buffer lines and the ordered action
// list.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bethropolis/reel/internal/logger"
	"github.com/bethropolis/reel/internal/types"
)

// Script is one parsed action script.
type Script struct {
	Initial []string `yaml:"initial"`
	Actions []Step   `yaml:"actions"`
}

// Step is one scripted action as authored: a kind name plus its raw value
// (payload or repeat count, depending on the kind).
type Step struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script '%s': %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script '%s': %w", path, err)
	}
	return s, nil
}

// Parse parses YAML script data.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Records converts the authored steps into engine action records. Names
// that don't resolve become the unknown kind, which the engine applies as a
// recorded no-op, so a typo in a script shifts no indices.
func (s *Script) Records() []types.Record {
	recs := make([]types.Record, 0, len(s.Actions))
	for _, step := range s.Actions {
		kind := types.KindFromName(step.Kind)
		if kind == types.ActionUnknown && step.Kind != "unknown" {
			logger.Warnf("Script: unrecognized action kind %q", step.Kind)
		}
		recs = append(recs, types.Record{Kind: kind, Value: step.Value})
	}
	return recs
}
