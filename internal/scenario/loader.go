// Package scenario loads mysteries: the mansion layout and the evidence table.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/detective-quest/internal/index"
	"github.com/aaronzipp/detective-quest/internal/models"
)

//go:embed data/mansion.yaml
var defaultMansion []byte

// ErrInvalid is returned when a scenario is structurally unusable
var ErrInvalid = errors.New("invalid scenario")

// Default returns the built-in mansion mystery
func Default() (*models.Scenario, error) {
	s, err := Parse(defaultMansion)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in scenario: %w", err)
	}
	return s, nil
}

// Load reads a scenario file. An empty path selects the built-in mystery.
func Load(path string) (*models.Scenario, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario
func Parse(data []byte) (*models.Scenario, error) {
	var s models.Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every room is named and every evidence row is complete
func Validate(s *models.Scenario) error {
	if s.Map.Name == "" {
		return fmt.Errorf("%w: map has no entrance room", ErrInvalid)
	}
	if err := validateRoom(&s.Map, 0); err != nil {
		return err
	}
	for i, ev := range s.Evidence {
		if ev.Clue == "" || ev.Suspect == "" {
			return fmt.Errorf("%w: evidence #%d needs both clue and suspect", ErrInvalid, i+1)
		}
	}
	return nil
}

func validateRoom(spec *models.RoomSpec, depth int) error {
	if spec == nil {
		return nil
	}
	if spec.Name == "" {
		return fmt.Errorf("%w: unnamed room at depth %d", ErrInvalid, depth)
	}
	if err := validateRoom(spec.Left, depth+1); err != nil {
		return err
	}
	return validateRoom(spec.Right, depth+1)
}

// UnlinkedClues returns the clues placed in rooms that no evidence row mentions.
// Such clues can be collected but never count against anyone.
func UnlinkedClues(s *models.Scenario) []string {
	known := make(map[string]bool, len(s.Evidence))
	for _, ev := range s.Evidence {
		known[ev.Clue] = true
	}
	var missing []string
	var visit func(spec *models.RoomSpec)
	visit = func(spec *models.RoomSpec) {
		if spec == nil {
			return
		}
		if spec.Clue != "" && !known[spec.Clue] {
			missing = append(missing, spec.Clue)
		}
		visit(spec.Left)
		visit(spec.Right)
	}
	visit(&s.Map)
	return missing
}

// BuildIndex fills a hash index with the scenario's evidence, in file order
func BuildIndex(s *models.Scenario, buckets int) *index.HashIndex {
	idx := index.New(buckets)
	for _, ev := range s.Evidence {
		idx.Insert(ev.Clue, ev.Suspect)
	}
	return idx
}
