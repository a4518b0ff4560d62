package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tickid/pkg/tick"
)

// Scenario defines a scripted run of tick operations.
type Scenario struct {
	// Name uniquely identifies this scenario (and names its golden file).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Token is an optional fixed run token.
	// If empty, defaults to DefaultToken for deterministic golden comparison.
	Token string `yaml:"token,omitempty"`

	// Start is the clock's initial tick. Defaults to tick 0.
	Start *Operand `yaml:"start,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`
}

// Step is one tick operation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Tick is the left operand. Nil means the clock's current tick.
	Tick *Operand `yaml:"tick,omitempty"`

	// Other is the right operand of diff and compare.
	Other *Operand `yaml:"other,omitempty"`

	// Delta is the tick count for advance, rewind, add and sub.
	Delta *uint32 `yaml:"delta,omitempty"`

	// Expect is checked against the step's outcome. Nil means any outcome passes.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step.
// At most one of Result and Fatal is set.
type Expect struct {
	// Result is the expected result in text form.
	Result string `yaml:"result,omitempty"`

	// Fatal is "overflow" or "underflow".
	Fatal string `yaml:"fatal,omitempty"`
}

// Operand is a tick written in a scenario, either as a decimal count or in
// display form.
type Operand struct {
	ID tick.ID
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: tick must be a scalar", node.Line)
	}
	id, err := tick.ParseLoose(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	o.ID = id
	return nil
}

// Operation names.
const (
	OpAdvance = "advance"
	OpRewind  = "rewind"
	OpAdd     = "add"
	OpSub     = "sub"
	OpDiff    = "diff"
	OpCompare = "compare"
	OpShow    = "show"
)

// Fatal outcome names.
const (
	FatalOverflow  = "overflow"
	FatalUnderflow = "underflow"
)

// DefaultToken is the run token used when a scenario does not set one.
const DefaultToken = "test-run-default"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, fails schema validation,
// or is missing required operands.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks the per-operation operand rules the schema
// cannot express.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func validateStep(step Step) error {
	switch step.Op {
	case OpAdvance, OpRewind:
		if step.Tick != nil {
			return fmt.Errorf("tick is not allowed; %s always acts on the clock", step.Op)
		}
		fallthrough
	case OpAdd, OpSub:
		if step.Delta == nil {
			return fmt.Errorf("delta is required")
		}
		if step.Other != nil {
			return fmt.Errorf("other is not allowed")
		}
	case OpDiff, OpCompare:
		if step.Other == nil {
			return fmt.Errorf("other is required")
		}
		if step.Delta != nil {
			return fmt.Errorf("delta is not allowed")
		}
	case OpShow:
		if step.Other != nil || step.Delta != nil {
			return fmt.Errorf("show takes only tick")
		}
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	if step.Expect == nil {
		return nil
	}
	if step.Expect.Result != "" && step.Expect.Fatal != "" {
		return fmt.Errorf("expect.result and expect.fatal are mutually exclusive")
	}
	if step.Expect.Fatal != "" && step.Delta == nil {
		return fmt.Errorf("%s cannot be fatal", step.Op)
	}
	return nil
}
