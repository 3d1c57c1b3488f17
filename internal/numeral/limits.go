package numeral

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Limits holds the inclusive bounds of a system.
//
// When MaximumIsMany is set, every value at or above Maximum is treated as
// Maximum itself ("many") instead of being rejected.
type Limits struct {
	Minimum       *big.Rat
	Maximum       *big.Rat
	MaximumIsMany bool
}

// Bounded creates integer limits. It panics if min > max, which is a
// system-definition bug.
func Bounded(min, max int64, many bool) Limits {
	if min > max {
		panic(fmt.Sprintf("numeral: minimum %d exceeds maximum %d", min, max))
	}
	return Limits{
		Minimum:       new(big.Rat).SetInt64(min),
		Maximum:       new(big.Rat).SetInt64(max),
		MaximumIsMany: many,
	}
}

// Unbounded spans the finite float64 range, the default for pass-through
// systems.
func Unbounded() Limits {
	return Limits{
		Minimum: new(big.Rat).SetFloat64(-math.MaxFloat64),
		Maximum: new(big.Rat).SetFloat64(math.MaxFloat64),
	}
}

// Check applies the bound rules to d:
//   - NaN and values below Minimum fail with RangeKind
//   - with MaximumIsMany, values >= Maximum become Maximum (same kind as d)
//   - otherwise values above Maximum fail with RangeKind
//
// Check is idempotent.
func (l Limits) Check(system string, d Denotation) (Denotation, error) {
	if isNaN(d) {
		return nil, NewRangeError(system, d, "NaN has no numeral")
	}
	if compare(d, l.Minimum) < 0 {
		return nil, NewRangeError(system, d, "number must be greater or equal to %s", FormatBound(l.Minimum))
	}
	if compare(d, l.Maximum) >= 0 {
		if l.MaximumIsMany {
			return fromRat(d.Kind(), l.Maximum), nil
		}
		if compare(d, l.Maximum) > 0 {
			return nil, NewRangeError(system, d, "number must be less than or equal to %s", FormatBound(l.Maximum))
		}
	}
	return d, nil
}

// Contains reports whether d passes Check without error.
func (l Limits) Contains(d Denotation) bool {
	_, err := l.Check("", d)
	return err == nil
}

func (l Limits) String() string {
	upper := FormatBound(l.Maximum)
	if l.MaximumIsMany {
		upper += "+"
	}
	return fmt.Sprintf("[%s, %s]", FormatBound(l.Minimum), upper)
}

// FormatBound renders a bound as an integer when it fits in int64 and as
// a shortest float otherwise.
func FormatBound(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	if r.IsInt() && r.Num().IsInt64() {
		return strconv.FormatInt(r.Num().Int64(), 10)
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Overlap returns the integer range shared by a and b, saturated to int64.
// ok is false when the ranges hold no common integer.
func Overlap(a, b Limits) (min, max int64, ok bool) {
	lo := a.Minimum
	if b.Minimum.Cmp(lo) > 0 {
		lo = b.Minimum
	}
	hi := a.Maximum
	if b.Maximum.Cmp(hi) < 0 {
		hi = b.Maximum
	}
	min, max = ceilInt64(lo), floorInt64(hi)
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}

func ceilInt64(r *big.Rat) int64 {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return clampInt64(q)
}

func floorInt64(r *big.Rat) int64 {
	q, _ := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	return clampInt64(q)
}

func clampInt64(q *big.Int) int64 {
	switch {
	case q.IsInt64():
		return q.Int64()
	case q.Sign() > 0:
		return math.MaxInt64
	default:
		return math.MinInt64
	}
}
