package convert

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numerals/internal/arabic"
	"github.com/roach88/numerals/internal/egyptian"
	"github.com/roach88/numerals/internal/latin"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
	"github.com/roach88/numerals/internal/roman"
	"github.com/roach88/numerals/internal/testutil"
)

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name    string
		value   numeral.Numeral
		from    numeral.System
		to      numeral.System
		want    numeral.Numeral
		wantErr numeral.ErrorKind
	}{
		{"arabic to roman", numeral.Int(42), arabic.Arabic, roman.Standard, numeral.Text("XLII"), ""},
		{"roman to arabic", numeral.Text("MCMXCIV"), roman.Standard, arabic.Arabic, numeral.Int(1994), ""},
		{"roman to egyptian", numeral.Text("CI"), roman.Standard, egyptian.Egyptian, numeral.Text(egyptian.Hundred + egyptian.One), ""},
		{"egyptian many saturates", numeral.Int(5_000_000), arabic.Arabic, egyptian.Egyptian, numeral.Text(egyptian.Million), ""},
		{"roman above maximum", numeral.Int(4000), arabic.Arabic, roman.Standard, nil, numeral.RangeKind},
		{"early has no M", numeral.Int(900), arabic.Arabic, roman.Early, nil, numeral.RangeKind},
		{"float to integer system", numeral.Float(3), arabic.Arabic, roman.Standard, nil, numeral.TypeKind},
		{"apostrophus increase", numeral.Text("IV"), roman.Apostrophus, arabic.Arabic, nil, numeral.FormatKind},
		{"roman to latin", numeral.Text("MCMXCIV"), roman.Standard, latin.Latin, numeral.Text("ↀCↀXCIV"), ""},
		{"plain number to symbolic source", numeral.Int(10), roman.Standard, egyptian.Egyptian, numeral.Text(egyptian.Ten), ""},
		{"plain number skips source bounds", numeral.Int(5000), roman.Standard, arabic.Arabic, numeral.Int(5000), ""},
		{"arabic rational kept", numeral.NewRat(1, 3), arabic.Arabic, arabic.Arabic, numeral.NewRat(1, 3), ""},
		{"rational to roman", numeral.NewRat(1, 3), arabic.Arabic, roman.Standard, nil, numeral.TypeKind},
		{"infinity", numeral.Float(math.Inf(1)), arabic.Arabic, roman.Standard, nil, numeral.RangeKind},
		{"text to arabic", numeral.Text("42"), arabic.Arabic, roman.Standard, nil, numeral.TypeKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			if tt.wantErr != "" {
				require.Error(t, err)
				kind, ok := numeral.KindOf(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr, kind)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, numeral.Equal(tt.want, got), "got %v (%T), want %v", got, got, tt.want)
		})
	}
}

// Every integer in the common range of two systems survives a trip there
// and back.
func TestRoundTripLaw(t *testing.T) {
	systems := registry.Systems()
	for _, a := range systems {
		for _, b := range systems {
			min, max, ok := numeral.Overlap(a.Definition().Limits, b.Definition().Limits)
			if !ok {
				continue
			}
			for _, v := range testutil.SampleInts(min, max, 64) {
				t.Run(numeral.Name(a)+"/"+numeral.Name(b), func(t *testing.T) {
					start, err := a.Encode(numeral.Int(v))
					require.NoError(t, err)
					mid, err := Convert(start, a, b)
					require.NoError(t, err, "value %d", v)
					back, err := Convert(mid, b, a)
					require.NoError(t, err, "value %d", v)
					assert.True(t, numeral.Equal(start, back), "value %d: %v -> %v -> %v", v, start, mid, back)
				})
			}
		}
	}
}

func TestIdentityLaw(t *testing.T) {
	for _, s := range registry.Systems() {
		def := s.Definition()
		min, max, _ := numeral.Overlap(def.Limits, def.Limits)
		for _, v := range testutil.SampleInts(min, max, 32) {
			n, err := s.Encode(numeral.Int(v))
			require.NoError(t, err)
			got, err := Convert(n, s, s)
			require.NoError(t, err)
			assert.True(t, numeral.Equal(n, got), "%s: %v", def.Name, n)
		}
	}
}

func TestSaturationIsIdempotent(t *testing.T) {
	for _, v := range []int64{1_000_000, 1_000_001, math.MaxInt64} {
		once, err := Convert(numeral.Int(v), arabic.Arabic, egyptian.Egyptian)
		require.NoError(t, err)
		back, err := Convert(once, egyptian.Egyptian, arabic.Arabic)
		require.NoError(t, err)
		assert.Equal(t, numeral.Int(1_000_000), back)

		twice, err := Convert(back, arabic.Arabic, egyptian.Egyptian)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestBoundaries(t *testing.T) {
	for _, s := range []numeral.System{roman.Standard, roman.Early, roman.Apostrophus, latin.Latin} {
		def := s.Definition()
		min := def.Limits.Minimum.Num().Int64()
		max := def.Limits.Maximum.Num().Int64()

		_, err := Convert(numeral.Int(min), arabic.Arabic, s)
		assert.NoError(t, err, def.Name)
		_, err = Convert(numeral.Int(max), arabic.Arabic, s)
		assert.NoError(t, err, def.Name)
		_, err = Convert(numeral.Int(min-1), arabic.Arabic, s)
		assert.True(t, numeral.IsRangeError(err), def.Name)
		_, err = Convert(numeral.Int(max+1), arabic.Arabic, s)
		assert.True(t, numeral.IsRangeError(err), def.Name)
	}
}

func TestMalformedNumerals(t *testing.T) {
	for _, s := range []numeral.System{roman.Standard, roman.Early, roman.Apostrophus, latin.Latin, egyptian.Egyptian} {
		_, err := Convert(numeral.Text("?"), s, arabic.Arabic)
		assert.True(t, numeral.IsFormatError(err), numeral.Name(s))
	}
}

func TestConverterLogsPhase(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(WithLogger(logger))

	_, err := c.Convert(numeral.Float(2.5), arabic.Arabic, roman.Standard)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "phase=check")
	assert.Contains(t, buf.String(), "to=roman.Standard")

	buf.Reset()
	_, err = c.Convert(numeral.Text("XLII"), roman.Standard, arabic.Arabic)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "output=42")
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	c := New(WithLogger(nil))
	got, err := c.Convert(numeral.Int(3), arabic.Arabic, roman.Standard)
	require.NoError(t, err)
	assert.Equal(t, numeral.Text("III"), got)
}

func TestConcurrentUse(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := int64(1); i <= 200; i++ {
				v := i + int64(w)*200
				out, err := c.Convert(numeral.Int(v), arabic.Arabic, roman.Standard)
				if !assert.NoError(t, err) {
					return
				}
				back, err := c.Convert(out, roman.Standard, arabic.Arabic)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, numeral.Int(v), back)
			}
		}()
	}
	wg.Wait()
}
