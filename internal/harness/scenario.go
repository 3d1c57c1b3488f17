package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

//go:embed schema.cue
var scenarioSchema string

// Scenario defines a conformance test scenario: a list of conversions
// with expected outcomes, and property assertions over whole ranges.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID pins the run identifier. If empty, a UUIDv7 is generated
	// and left out of golden snapshots.
	RunID string `yaml:"run_id,omitempty"`

	// Conversions run in order, each producing one trace event.
	Conversions []Conversion `yaml:"conversions,omitempty"`

	// Assertions check conversion laws over ranges of values.
	// Supported types: round_trip, identity, saturation, boundary
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Conversion is a single convert call.
type Conversion struct {
	// Value is the input numeral. Strings are symbolic numerals, YAML
	// numbers are integers or floats, unless Kind says otherwise.
	Value any `yaml:"value"`

	// Kind forces the input variant: text, integer, rational or float.
	Kind string `yaml:"kind,omitempty"`

	// From and To are registry names, e.g. "roman.Standard".
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Expect is the expected outcome. If nil, any outcome passes.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect holds exactly one of Numeral or Error.
type Expect struct {
	// Numeral is compared with the output's text.
	Numeral any `yaml:"numeral,omitempty"`

	// Error is an error kind code such as "OUT_OF_RANGE".
	Error string `yaml:"error,omitempty"`
}

// Assertion validates a conversion law.
type Assertion struct {
	// Type specifies the assertion type:
	// - "round_trip": a -> b -> a returns the start numeral
	// - "identity": converting a system to itself changes nothing
	// - "saturation": values at or above a "many" maximum collapse to it
	// - "boundary": bounds are accepted and their neighbors are not
	Type string `yaml:"type"`

	// System is the system under test (identity, saturation, boundary).
	System string `yaml:"system,omitempty"`

	// Systems is the pair under test (round_trip).
	Systems []string `yaml:"systems,omitempty"`

	// Min and Max narrow the tested integer range. They default to the
	// range every involved system accepts.
	Min *int64 `yaml:"min,omitempty"`
	Max *int64 `yaml:"max,omitempty"`

	// Step walks the range. If zero, a fixed number of evenly spaced
	// samples is used.
	Step int64 `yaml:"step,omitempty"`

	// Values are the inputs for saturation.
	Values []int64 `yaml:"values,omitempty"`
}

// Assertion type constants.
const (
	AssertRoundTrip  = "round_trip"
	AssertIdentity   = "identity"
	AssertSaturation = "saturation"
	AssertBoundary   = "boundary"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, fails the
// schema, contains unknown fields, or names unknown systems.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := checkSchema(raw); err != nil {
		return nil, fmt.Errorf("schema violation: %w", err)
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

// checkSchema unifies the decoded document with #Scenario.
func checkSchema(raw any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return err
	}
	return def.Unify(doc).Validate(cue.Concrete(true))
}

// validateScenario checks the rules the schema cannot express: system
// names must be registered and each assertion must carry its fields.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Conversions) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one conversion or assertion is required")
	}

	for i, c := range s.Conversions {
		if c.Value == nil {
			return fmt.Errorf("conversions[%d]: value is required", i)
		}
		if err := checkSystems(c.From, c.To); err != nil {
			return fmt.Errorf("conversions[%d]: %w", i, err)
		}
		if c.Expect != nil {
			if (c.Expect.Numeral == nil) == (c.Expect.Error == "") {
				return fmt.Errorf("conversions[%d].expect: exactly one of numeral or error is required", i)
			}
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		return fmt.Errorf("assertions[%d]: min %d exceeds max %d", index, *a.Min, *a.Max)
	}
	if a.Step < 0 {
		return fmt.Errorf("assertions[%d]: step must be positive", index)
	}

	switch a.Type {
	case AssertRoundTrip:
		if len(a.Systems) != 2 {
			return fmt.Errorf("assertions[%d]: systems must name two systems for round_trip", index)
		}
		if err := checkSystems(a.Systems...); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertIdentity, AssertBoundary:
		if err := checkSystems(a.System); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertSaturation:
		if err := checkSystems(a.System); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		s, _ := registry.Lookup(a.System)
		if !s.Definition().Limits.MaximumIsMany {
			return fmt.Errorf("assertions[%d]: %s does not saturate", index, numeral.Name(s))
		}
		if len(a.Values) == 0 {
			return fmt.Errorf("assertions[%d]: values are required for saturation", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

func checkSystems(names ...string) error {
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("system name is required")
		}
		if _, err := registry.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}
