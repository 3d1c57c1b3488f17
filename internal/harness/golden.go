package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot captures the deterministic part of a scenario execution.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	RunID        string       `json:"run_id,omitempty"`
	Pass         bool         `json:"pass"`
	Trace        []TraceEvent `json:"trace"`
	Errors       []string     `json:"errors,omitempty"`
}

// NewTraceSnapshot builds the snapshot of result. The run ID is kept only
// when the scenario pins it, since generated IDs differ on every run.
func NewTraceSnapshot(scenario *Scenario, result *Result) *TraceSnapshot {
	return &TraceSnapshot{
		ScenarioName: scenario.Name,
		RunID:        scenario.RunID,
		Pass:         result.Pass,
		Trace:        result.Trace,
		Errors:       result.Errors,
	}
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for
// canonical JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"seq":        event.Seq,
			"from":       event.From,
			"to":         event.To,
			"input":      event.Input,
			"input_kind": event.InputKind,
		}
		if event.Error != "" {
			eventMap["error"] = event.Error
		} else {
			eventMap["output"] = event.Output
			eventMap["output_kind"] = event.OutputKind
		}
		traceList[i] = eventMap
	}

	result := map[string]any{
		"scenario_name": s.ScenarioName,
		"pass":          s.Pass,
		"trace":         traceList,
	}
	if s.RunID != "" {
		result["run_id"] = s.RunID
	}
	if len(s.Errors) > 0 {
		result["errors"] = s.Errors
	}
	return result
}

// Bytes renders the snapshot as canonical JSON.
func (s *TraceSnapshot) Bytes() ([]byte, error) {
	return MarshalCanonical(s.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) error {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against the scenario's golden
// file without re-running it.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot, err := NewTraceSnapshot(scenario, result).Bytes()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)
	return nil
}
