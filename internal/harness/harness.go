package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/numerals/internal/convert"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
	"github.com/roach88/numerals/internal/testutil"
)

// RunIDGenerator produces the identifier of a scenario run.
type RunIDGenerator interface {
	Generate() string
}

// uuidRunIDs generates time-ordered UUIDv7 run IDs.
type uuidRunIDs struct{}

func (uuidRunIDs) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Harness is the scenario execution engine. Sequence numbers restart at
// 1 for every run so traces are reproducible.
type Harness struct {
	converter *convert.Converter
	seq       *testutil.Sequence
	runIDs    RunIDGenerator
	logger    *slog.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger sets the logger for run and conversion records.
// Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithRunIDGenerator overrides run ID generation for scenarios that do
// not pin a run_id.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(h *Harness) {
		if g != nil {
			h.runIDs = g
		}
	}
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Run each conversion, recording a trace event
// 2. Compare each outcome with its expect clause
// 3. Evaluate property assertions
//
// An error is returned only when the scenario cannot be executed; failed
// expectations are reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		seq:    testutil.NewSequence(),
		runIDs: uuidRunIDs{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if scenario.RunID != "" {
		h.runIDs = testutil.NewFixedRunID(scenario.RunID)
	}
	h.converter = convert.New(convert.WithLogger(h.logger))

	result := NewResult(h.runIDs.Generate())
	log := h.logger.With("scenario", scenario.Name, "run_id", result.RunID)

	if err := h.executeConversions(scenario.Conversions, result, log); err != nil {
		return nil, fmt.Errorf("failed to execute conversions: %w", err)
	}

	for _, msg := range EvaluateAssertions(h.converter, scenario.Assertions) {
		result.AddError(msg)
	}

	log.Info("scenario completed", "pass", result.Pass, "conversions", h.seq.Current(), "errors", len(result.Errors))
	return result, nil
}

// executeConversions runs every conversion in order and checks its
// expect clause.
func (h *Harness) executeConversions(conversions []Conversion, result *Result, log *slog.Logger) error {
	for i, c := range conversions {
		from, err := registry.Lookup(c.From)
		if err != nil {
			return fmt.Errorf("conversion %d: %w", i, err)
		}
		to, err := registry.Lookup(c.To)
		if err != nil {
			return fmt.Errorf("conversion %d: %w", i, err)
		}
		input, err := numeral.FromPlain(c.Value, c.Kind)
		if err != nil {
			return fmt.Errorf("conversion %d: %w", i, err)
		}

		event := TraceEvent{
			Seq:       h.seq.Next(),
			From:      numeral.Name(from),
			To:        numeral.Name(to),
			Input:     input.String(),
			InputKind: kindName(input),
		}

		out, convErr := h.converter.Convert(input, from, to)
		if convErr != nil {
			kind, ok := numeral.KindOf(convErr)
			if !ok {
				return fmt.Errorf("conversion %d: %w", i, convErr)
			}
			event.Error = string(kind)
		} else {
			event.Output = out.String()
			event.OutputKind = kindName(out)
		}
		result.AddTrace(event)

		if msg := checkExpect(i, c.Expect, out, convErr); msg != "" {
			result.AddError(msg)
		}

		log.Debug("conversion completed",
			"seq", event.Seq,
			"from", event.From,
			"to", event.To,
			"input", event.Input,
			"output", event.Output,
			"error", event.Error,
		)
	}
	return nil
}

// checkExpect compares an outcome with its expect clause. Numerals are
// compared by their text, so 42 matches both Int(42) and "42".
func checkExpect(index int, expect *Expect, out numeral.Numeral, err error) string {
	if expect == nil {
		return ""
	}

	if expect.Error != "" {
		if err == nil {
			return fmt.Sprintf("conversions[%d]: expected %s, got %s", index, expect.Error, out)
		}
		kind, _ := numeral.KindOf(err)
		if string(kind) != expect.Error {
			return fmt.Sprintf("conversions[%d]: expected %s, got %s", index, expect.Error, kind)
		}
		return ""
	}

	if err != nil {
		return fmt.Sprintf("conversions[%d]: expected %v, got error: %v", index, expect.Numeral, err)
	}
	if want := fmt.Sprint(expect.Numeral); want != out.String() {
		return fmt.Sprintf("conversions[%d]: expected %s, got %s", index, want, out)
	}
	return ""
}
