// Package egyptian implements hieroglyphic tally numerals.
//
// Each power of ten from 1 to 1,000,000 has its own hieroglyph, repeated
// once per unit of the corresponding decimal digit. Reading is purely
// additive, so hieroglyphs may appear in any order. Values at or above
// 1,000,000 are "many" and are written as the single million glyph.
package egyptian

import (
	"strings"

	"github.com/roach88/numerals/internal/numeral"
)

// Hieroglyphs for each power of ten.
const (
	Million         = "\U00013069" // 𓁩 god with raised arms
	HundredThousand = "\U00013153" // 𓅓 tadpole
	TenThousand     = "\U000130AD" // 𓂭 finger
	Thousand        = "\U000131BC" // 𓆼 lotus
	Hundred         = "\U00013362" // 𓍢 coil of rope
	Ten             = "\U00013386" // 𓎆 hobble
	One             = "\U000133FA" // 𓏺 stroke
)

type entry struct {
	magnitude int64
	glyph     string
}

// System is the Egyptian numeral system.
type System struct {
	def      numeral.Definition
	encoding []entry
	decoding map[rune]int64
}

var _ numeral.System = (*System)(nil)

// Egyptian is the registered instance, bounds [1, 1000000] with "many"
// saturation at the maximum.
var Egyptian = newSystem()

func newSystem() *System {
	encoding := []entry{
		{1_000_000, Million},
		{100_000, HundredThousand},
		{10_000, TenThousand},
		{1_000, Thousand},
		{100, Hundred},
		{10, Ten},
		{1, One},
	}
	decoding := make(map[rune]int64, len(encoding))
	for _, e := range encoding {
		decoding[[]rune(e.glyph)[0]] = e.magnitude
	}
	return &System{
		def: numeral.Definition{
			Name:        "egyptian.Egyptian",
			Limits:      numeral.Bounded(1, 1_000_000, true),
			Denotations: numeral.Kinds(numeral.Integer),
			Form:        numeral.Symbolic,
		},
		encoding: encoding,
		decoding: decoding,
	}
}

// Definition implements numeral.System.
func (s *System) Definition() numeral.Definition {
	return s.def
}

// Encode writes one glyph per unit of each decimal digit, largest
// magnitude first. The output length equals the digit sum of the value.
func (s *System) Encode(d numeral.Denotation) (numeral.Numeral, error) {
	valid, err := s.def.ValidateDenotation(d)
	if err != nil {
		return nil, err
	}
	remaining := int64(valid.(numeral.Int))

	var sb strings.Builder
	for _, e := range s.encoding {
		count := remaining / e.magnitude
		remaining %= e.magnitude
		sb.WriteString(strings.Repeat(e.glyph, int(count)))
	}
	return numeral.Text(sb.String()), nil
}

// Decode sums the magnitude of every glyph. Order is not checked.
func (s *System) Decode(n numeral.Numeral) (numeral.Denotation, error) {
	if err := s.def.CheckNumeral(n); err != nil {
		return nil, err
	}
	var total int64
	for _, r := range string(n.(numeral.Text)) {
		mag, ok := s.decoding[r]
		if !ok {
			return nil, numeral.NewFormatError(s.def.Name, n, "invalid Egyptian hieroglyph %q", r)
		}
		total += mag
	}
	return s.def.ValidateDenotation(numeral.Int(total))
}
