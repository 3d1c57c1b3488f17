package latin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numerals/internal/numeral"
)

func TestLatin(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1, "I"},
		{900, "Cↀ"},
		{1994, "ↀCↀXCIV"},
		{3999, "ↀↀↀCↀXCIX"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Latin.Encode(numeral.Int(tt.in))
			require.NoError(t, err)
			assert.Equal(t, numeral.Text(tt.want), got)

			back, err := Latin.Decode(got)
			require.NoError(t, err)
			assert.Equal(t, numeral.Int(tt.in), back)
		})
	}
}

func TestLatinRejectsM(t *testing.T) {
	_, err := Latin.Decode(numeral.Text("MCMXCIV"))
	assert.True(t, numeral.IsFormatError(err))
}

func TestLatinBounds(t *testing.T) {
	_, err := Latin.Encode(numeral.Int(4000))
	assert.True(t, numeral.IsRangeError(err))
	assert.Equal(t, "latin.Latin", Latin.Definition().Name)
}
