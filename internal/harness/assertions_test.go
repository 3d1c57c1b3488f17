package harness

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numerals/internal/convert"
	"github.com/roach88/numerals/internal/registry"
)

func ptr(v int64) *int64 { return &v }

func TestEvaluateAssertions_AllSystemsHoldTheLaws(t *testing.T) {
	c := convert.New()
	names := registry.Names()

	var assertions []Assertion
	for _, a := range names {
		assertions = append(assertions,
			Assertion{Type: AssertIdentity, System: a},
			Assertion{Type: AssertBoundary, System: a},
		)
		for _, b := range names {
			assertions = append(assertions, Assertion{Type: AssertRoundTrip, Systems: []string{a, b}})
		}
	}
	assertions = append(assertions, Assertion{
		Type:   AssertSaturation,
		System: "egyptian.Egyptian",
		Values: []int64{1, 999_999, 1_000_000, 1_000_001, math.MaxInt64},
	})

	assert.Empty(t, EvaluateAssertions(c, assertions))
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	c := convert.New()

	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{
			name:      "unknown type",
			assertion: Assertion{Type: "commutative"},
			want:      `assertion[0]: unknown assertion type "commutative"`,
		},
		{
			name:      "saturation on bounded system",
			assertion: Assertion{Type: AssertSaturation, System: "roman.Standard", Values: []int64{5000}},
			want:      "Assertion failed: saturation roman.Standard",
		},
		{
			name:      "empty range",
			assertion: Assertion{Type: AssertIdentity, System: "roman.Early", Min: ptr(900)},
			want:      "identity roman.Early: empty range [900, 899]",
		},
		{
			name:      "too many steps",
			assertion: Assertion{Type: AssertIdentity, System: "arabic.Arabic", Step: 1},
			want:      "yields more than",
		},
		{
			name:      "unknown system",
			assertion: Assertion{Type: AssertBoundary, System: "mayan.Mayan"},
			want:      "unknown numeral system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateAssertions(c, []Assertion{tt.assertion})
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.want)
		})
	}
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertRoundTrip,
		Subject:  "roman.Standard <-> egyptian.Egyptian",
		Expected: "XLII",
		Actual:   "XLI",
	}

	lines := strings.Split(err.Error(), "\n")
	assert.Equal(t, []string{
		"Assertion failed: round_trip roman.Standard <-> egyptian.Egyptian",
		"  Expected: XLII",
		"  Actual: XLI",
	}, lines)
}

func TestSampleRange(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		lo, hi    int64
		want      []int64
	}{
		{"step includes both ends", Assertion{Step: 3}, 1, 10, []int64{1, 4, 7, 10}},
		{"step stops before max", Assertion{Step: 4}, 1, 10, []int64{1, 5, 9}},
		{"narrowed by min and max", Assertion{Min: ptr(5), Max: ptr(7), Step: 1}, 1, 10, []int64{5, 6, 7}},
		{"min and max never widen", Assertion{Min: ptr(-5), Max: ptr(50), Step: 5}, 1, 10, []int64{1, 6}},
		{"single value", Assertion{Step: 10}, 3, 3, []int64{3}},
		{"default sampling", Assertion{}, 1, 3, []int64{1, 2, 3}},
		{"huge step over full range", Assertion{Step: math.MaxInt64}, math.MinInt64, math.MaxInt64,
			[]int64{math.MinInt64, -1, math.MaxInt64 - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sampleRange(tt.assertion, tt.lo, tt.hi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
