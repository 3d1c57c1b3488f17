package numeral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	assert.Nil(t, Plain(nil))
	assert.Equal(t, "XLII", Plain(Text("XLII")))
	assert.Equal(t, int64(42), Plain(Int(42)))
	assert.Equal(t, 2.5, Plain(Float(2.5)))
	assert.Equal(t, "NaN", Plain(Float(math.NaN())))
	assert.Equal(t, "+Inf", Plain(Float(math.Inf(1))))
	assert.Equal(t, "1/3", Plain(NewRat(1, 3)))
}

func TestFromPlain(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		kind    string
		want    Numeral
		wantErr bool
	}{
		{"inferred string", "XLII", "", Text("XLII"), false},
		{"inferred int", 42, "", Int(42), false},
		{"inferred int64", int64(7), "", Int(7), false},
		{"inferred float", 2.5, "", Float(2.5), false},
		{"inferred uint64", uint64(9), "", Int(9), false},
		{"uint64 overflow", uint64(math.MaxUint64), "", nil, true},
		{"nil value", nil, "", nil, true},
		{"unsupported type", []int{1}, "", nil, true},
		{"explicit text", 42, "text", Text("42"), false},
		{"explicit integer", "12", "integer", Int(12), false},
		{"explicit rational", "3/6", "rational", NewRat(1, 2), false},
		{"explicit float", 3, "float", Float(3), false},
		{"bad integer", "x", "integer", nil, true},
		{"unknown kind", 1, "complex", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPlain(tt.value, tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "got %v (%T)", got, got)
		})
	}
}

func TestInferNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Denotation
	}{
		{"42", Int(42)},
		{" -7 ", Int(-7)},
		{"2.5", Float(2.5)},
		{"1e3", Float(1000)},
		{"2/4", NewRat(1, 2)},
		{"NaN", Float(math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := InferNumber(tt.in)
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "got %v (%T)", got, got)
		})
	}

	_, err := InferNumber("forty-two")
	assert.Error(t, err)
}
