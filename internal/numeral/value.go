package numeral

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Numeral is a sealed interface for a system's representation of a value.
// Only Text, Int, Rat, and Float implement it.
type Numeral interface {
	Form() Form
	String() string
	numeral() // Sealed
}

// Denotation is a sealed interface for the numeric value a numeral stands for.
// Only Int, Rat, and Float implement it. Every denotation is also a
// Numeral, which is how pass-through systems represent themselves.
type Denotation interface {
	Numeral
	Kind() Kind
	// Rat returns the exact value, or nil for NaN and infinities.
	Rat() *big.Rat
	denotation() // Sealed
}

// Text is a symbolic numeral such as "XLII".
type Text string

func (Text) numeral() {}

// Form implements Numeral.
func (Text) Form() Form { return Symbolic }

func (t Text) String() string { return string(t) }

// Int is an exact integer denotation.
type Int int64

func (Int) numeral()    {}
func (Int) denotation() {}

// Form implements Numeral.
func (Int) Form() Form { return Numeric }

// Kind implements Denotation.
func (Int) Kind() Kind { return Integer }

// Rat implements Denotation.
func (i Int) Rat() *big.Rat { return new(big.Rat).SetInt64(int64(i)) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a floating-point denotation.
type Float float64

func (Float) numeral()    {}
func (Float) denotation() {}

// Form implements Numeral.
func (Float) Form() Form { return Numeric }

// Kind implements Denotation.
func (Float) Kind() Kind { return Floating }

// Rat implements Denotation. NaN and infinities have no exact value.
func (f Float) Rat() *big.Rat {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return nil
	}
	return new(big.Rat).SetFloat64(float64(f))
}

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Rat is an arbitrary-precision rational denotation.
// The zero value is 0. Rat is immutable: the wrapped value is never
// exposed, Rat() hands out copies.
type Rat struct {
	r *big.Rat
}

func (Rat) numeral()    {}
func (Rat) denotation() {}

// NewRat creates the rational a/b. It panics if b is zero.
func NewRat(a, b int64) Rat {
	return Rat{r: big.NewRat(a, b)}
}

// RatFromBig copies r into a Rat.
func RatFromBig(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}
	return Rat{r: new(big.Rat).Set(r)}
}

// ParseRat parses "a/b", an integer, or a decimal literal into a Rat.
func ParseRat(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Rat{}, fmt.Errorf("invalid rational %q", s)
	}
	return Rat{r: r}, nil
}

// Form implements Numeral.
func (Rat) Form() Form { return Numeric }

// Kind implements Denotation.
func (Rat) Kind() Kind { return Rational }

// Rat implements Denotation. The result is a copy.
func (q Rat) Rat() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(q.r)
}

// String renders the rational as "a/b", or "a" when the denominator is 1.
func (q Rat) String() string {
	if q.r == nil {
		return "0"
	}
	return q.r.RatString()
}

// Equal reports whether a and b are the same variant holding the same value.
// An Int and a Float with equal values are not equal.
func Equal(a, b Numeral) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && (av == bv || math.IsNaN(float64(av)) && math.IsNaN(float64(bv)))
	case Rat:
		bv, ok := b.(Rat)
		return ok && av.Rat().Cmp(bv.Rat()) == 0
	default:
		return a == nil && b == nil
	}
}

// fromRat converts an exact value into a denotation of the given kind.
// Integers are truncated toward zero.
func fromRat(kind Kind, r *big.Rat) Denotation {
	switch kind {
	case Integer:
		if r.IsInt() {
			return Int(r.Num().Int64())
		}
		return Int(new(big.Int).Quo(r.Num(), r.Denom()).Int64())
	case Floating:
		f, _ := r.Float64()
		return Float(f)
	default:
		return RatFromBig(r)
	}
}

// compare orders d against an exact bound. NaN must be rejected by the caller.
func compare(d Denotation, bound *big.Rat) int {
	if f, ok := d.(Float); ok && math.IsInf(float64(f), 0) {
		if f > 0 {
			return 1
		}
		return -1
	}
	return d.Rat().Cmp(bound)
}

func isNaN(d Denotation) bool {
	f, ok := d.(Float)
	return ok && math.IsNaN(float64(f))
}
