package numeral

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealedNumeralInterface(t *testing.T) {
	// These compile only because each type implements the sealed interfaces.
	var _ Numeral = Text("XLII")
	var _ Numeral = Int(42)
	var _ Numeral = Float(1.5)
	var _ Numeral = NewRat(1, 2)

	var _ Denotation = Int(42)
	var _ Denotation = Float(1.5)
	var _ Denotation = NewRat(1, 2)
}

func TestForms(t *testing.T) {
	assert.Equal(t, Symbolic, Text("X").Form())
	assert.Equal(t, Numeric, Int(1).Form())
	assert.Equal(t, Numeric, Float(1).Form())
	assert.Equal(t, Numeric, NewRat(1, 3).Form())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, Integer, Int(1).Kind())
	assert.Equal(t, Floating, Float(1).Kind())
	assert.Equal(t, Rational, NewRat(1, 3).Kind())
}

func TestRat_Immutable(t *testing.T) {
	src := big.NewRat(3, 4)
	q := RatFromBig(src)

	src.SetInt64(99)
	assert.Equal(t, "3/4", q.String())

	leaked := q.Rat()
	leaked.SetInt64(7)
	assert.Equal(t, "3/4", q.String())
}

func TestRat_ZeroValue(t *testing.T) {
	var q Rat
	assert.Equal(t, "0", q.String())
	assert.Equal(t, 0, q.Rat().Sign())
}

func TestRat_StringNormalizes(t *testing.T) {
	assert.Equal(t, "2", NewRat(4, 2).String())
	assert.Equal(t, "-1/3", NewRat(2, -6).String())
}

func TestParseRat(t *testing.T) {
	q, err := ParseRat("6/8")
	require.NoError(t, err)
	assert.Equal(t, "3/4", q.String())

	q, err = ParseRat("1.25")
	require.NoError(t, err)
	assert.Equal(t, "5/4", q.String())

	_, err = ParseRat("three quarters")
	require.Error(t, err)
}

func TestFloat_Rat(t *testing.T) {
	assert.Equal(t, "1/2", Float(0.5).Rat().RatString())
	assert.Nil(t, Float(math.NaN()).Rat())
	assert.Nil(t, Float(math.Inf(1)).Rat())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Numeral
		want bool
	}{
		{"same text", Text("X"), Text("X"), true},
		{"different text", Text("X"), Text("x"), false},
		{"same int", Int(3), Int(3), true},
		{"int vs float", Int(3), Float(3), false},
		{"equal rats", NewRat(1, 2), NewRat(2, 4), true},
		{"rat vs int", NewRat(2, 1), Int(2), false},
		{"nan equals nan", Float(math.NaN()), Float(math.NaN()), true},
		{"text vs int", Text("1"), Int(1), false},
		{"both nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestKindSet(t *testing.T) {
	s := Kinds(Integer, Floating)

	assert.True(t, s.Has(Integer))
	assert.False(t, s.Has(Rational))
	assert.True(t, s.Has(Floating))
	assert.Equal(t, "integer|float", s.String())
	assert.Equal(t, []Kind{Integer, Floating}, s.List())
	assert.Equal(t, Kinds(Integer), s.Intersect(Kinds(Integer, Rational)))
	assert.Equal(t, "integer|rational|float", AllKinds.String())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("rational")
	require.True(t, ok)
	assert.Equal(t, Rational, k)

	_, ok = ParseKind("complex")
	assert.False(t, ok)
}
