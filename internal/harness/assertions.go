package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/numerals/internal/arabic"
	"github.com/roach88/numerals/internal/convert"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
	"github.com/roach88/numerals/internal/testutil"
)

const (
	// defaultSamples is the number of values tested when no step is set.
	defaultSamples = 64

	// maxSteps caps stepped ranges.
	maxSteps = 1_000_000
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Subject  string // Systems under test
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s %s\n", e.Type, e.Subject)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// assertRoundTrip checks that a -> b -> a returns the starting numeral
// for every sampled integer both systems accept.
func assertRoundTrip(c *convert.Converter, assertion Assertion) error {
	a, err := registry.Lookup(assertion.Systems[0])
	if err != nil {
		return err
	}
	b, err := registry.Lookup(assertion.Systems[1])
	if err != nil {
		return err
	}
	subject := numeral.Name(a) + " <-> " + numeral.Name(b)

	lo, hi, ok := numeral.Overlap(a.Definition().Limits, b.Definition().Limits)
	if !ok {
		return &AssertionError{Type: AssertRoundTrip, Subject: subject,
			Expected: "overlapping ranges", Actual: "no common integer"}
	}
	values, err := sampleRange(assertion, lo, hi)
	if err != nil {
		return fmt.Errorf("%s %s: %w", AssertRoundTrip, subject, err)
	}

	for _, v := range values {
		start, err := a.Encode(numeral.Int(v))
		if err != nil {
			return failure(AssertRoundTrip, subject, fmt.Sprintf("%d encodes", v), err)
		}
		mid, err := c.Convert(start, a, b)
		if err != nil {
			return failure(AssertRoundTrip, subject, fmt.Sprintf("%s converts", start), err)
		}
		back, err := c.Convert(mid, b, a)
		if err != nil {
			return failure(AssertRoundTrip, subject, fmt.Sprintf("%s converts back", mid), err)
		}
		if !numeral.Equal(start, back) {
			return &AssertionError{Type: AssertRoundTrip, Subject: subject,
				Expected: start.String(),
				Actual:   fmt.Sprintf("%s (via %s)", back, mid)}
		}
	}
	return nil
}

// assertIdentity checks that converting a system to itself is a no-op.
func assertIdentity(c *convert.Converter, assertion Assertion) error {
	s, err := registry.Lookup(assertion.System)
	if err != nil {
		return err
	}
	subject := numeral.Name(s)
	limits := s.Definition().Limits
	lo, hi, _ := numeral.Overlap(limits, limits)

	values, err := sampleRange(assertion, lo, hi)
	if err != nil {
		return fmt.Errorf("%s %s: %w", AssertIdentity, subject, err)
	}
	for _, v := range values {
		n, err := s.Encode(numeral.Int(v))
		if err != nil {
			return failure(AssertIdentity, subject, fmt.Sprintf("%d encodes", v), err)
		}
		got, err := c.Convert(n, s, s)
		if err != nil {
			return failure(AssertIdentity, subject, fmt.Sprintf("%s converts", n), err)
		}
		if !numeral.Equal(n, got) {
			return &AssertionError{Type: AssertIdentity, Subject: subject,
				Expected: n.String(), Actual: got.String()}
		}
	}
	return nil
}

// assertSaturation checks that values at or above the maximum of a
// "many" system read back as the maximum, and that a second trip
// changes nothing.
func assertSaturation(c *convert.Converter, assertion Assertion) error {
	s, err := registry.Lookup(assertion.System)
	if err != nil {
		return err
	}
	subject := numeral.Name(s)
	limits := s.Definition().Limits
	_, ceiling, _ := numeral.Overlap(limits, limits)

	for _, v := range assertion.Values {
		once, err := c.Convert(numeral.Int(v), arabic.Arabic, s)
		if err != nil {
			return failure(AssertSaturation, subject, fmt.Sprintf("%d encodes", v), err)
		}
		back, err := c.Convert(once, s, arabic.Arabic)
		if err != nil {
			return failure(AssertSaturation, subject, fmt.Sprintf("%s decodes", once), err)
		}
		want := min(v, ceiling)
		if !numeral.Equal(numeral.Int(want), back) {
			return &AssertionError{Type: AssertSaturation, Subject: subject,
				Expected: fmt.Sprintf("%d reads back as %d", v, want),
				Actual:   back.String()}
		}
		twice, err := c.Convert(back, arabic.Arabic, s)
		if err != nil {
			return failure(AssertSaturation, subject, fmt.Sprintf("%s encodes again", back), err)
		}
		if !numeral.Equal(once, twice) {
			return &AssertionError{Type: AssertSaturation, Subject: subject,
				Expected: once.String(), Actual: twice.String()}
		}
	}
	return nil
}

// assertBoundary checks that both bounds convert and their outer
// neighbors do not (or saturate, for "many" systems).
func assertBoundary(c *convert.Converter, assertion Assertion) error {
	s, err := registry.Lookup(assertion.System)
	if err != nil {
		return err
	}
	subject := numeral.Name(s)
	limits := s.Definition().Limits
	lo, hi, _ := numeral.Overlap(limits, limits)

	encode := func(v int64) (numeral.Numeral, error) {
		return c.Convert(numeral.Int(v), arabic.Arabic, s)
	}

	top, err := encode(hi)
	if err != nil {
		return failure(AssertBoundary, subject, fmt.Sprintf("maximum %d encodes", hi), err)
	}
	if _, err := encode(lo); err != nil {
		return failure(AssertBoundary, subject, fmt.Sprintf("minimum %d encodes", lo), err)
	}

	if lo > math.MinInt64 {
		if _, err := encode(lo - 1); !numeral.IsRangeError(err) {
			return &AssertionError{Type: AssertBoundary, Subject: subject,
				Expected: fmt.Sprintf("%d is out of range", lo-1), Actual: describeErr(err)}
		}
	}
	if hi < math.MaxInt64 {
		above, err := encode(hi + 1)
		switch {
		case limits.MaximumIsMany:
			if err != nil || !numeral.Equal(top, above) {
				return &AssertionError{Type: AssertBoundary, Subject: subject,
					Expected: fmt.Sprintf("%d saturates to %s", hi+1, top),
					Actual:   describeResult(above, err)}
			}
		case !numeral.IsRangeError(err):
			return &AssertionError{Type: AssertBoundary, Subject: subject,
				Expected: fmt.Sprintf("%d is out of range", hi+1), Actual: describeErr(err)}
		}
	}
	return nil
}

// sampleRange narrows [lo, hi] by the assertion's min and max, then
// walks it by step or samples it evenly.
func sampleRange(assertion Assertion, lo, hi int64) ([]int64, error) {
	if assertion.Min != nil && *assertion.Min > lo {
		lo = *assertion.Min
	}
	if assertion.Max != nil && *assertion.Max < hi {
		hi = *assertion.Max
	}
	if lo > hi {
		return nil, fmt.Errorf("empty range [%d, %d]", lo, hi)
	}
	if assertion.Step <= 0 {
		return testutil.SampleInts(lo, hi, defaultSamples), nil
	}

	step := assertion.Step
	span := uint64(hi) - uint64(lo)
	if span/uint64(step) > maxSteps {
		return nil, fmt.Errorf("step %d yields more than %d values", step, maxSteps)
	}
	var out []int64
	for v := lo; ; v += step {
		out = append(out, v)
		if uint64(hi)-uint64(v) < uint64(step) {
			break
		}
	}
	return out, nil
}

func failure(kind, subject, expected string, err error) error {
	return &AssertionError{Type: kind, Subject: subject, Expected: expected, Actual: err.Error()}
}

func describeErr(err error) string {
	if err == nil {
		return "no error"
	}
	return err.Error()
}

func describeResult(n numeral.Numeral, err error) string {
	if err != nil {
		return err.Error()
	}
	return n.String()
}

// EvaluateAssertions evaluates all assertions with the given converter.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(c *convert.Converter, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertRoundTrip:
			err = assertRoundTrip(c, assertion)
		case AssertIdentity:
			err = assertIdentity(c, assertion)
		case AssertSaturation:
			err = assertSaturation(c, assertion)
		case AssertBoundary:
			err = assertBoundary(c, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
