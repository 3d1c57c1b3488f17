package roman

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/numerals/internal/numeral"
)

// Entry pairs a magnitude with the symbol written for it.
type Entry struct {
	Magnitude int64
	Symbol    string
}

// Strategy selects how a variant reads numerals back.
type Strategy int

const (
	// TrailingValue scans right to left, subtracting a symbol when it is
	// smaller than the one after it. It resolves IV and IX without
	// composite entries but accepts some malformed orderings (e.g. IIX).
	TrailingValue Strategy = iota

	// NonIncreasing tokenizes left to right, longest symbol first, and
	// rejects any token larger than the one before it.
	NonIncreasing
)

func (s Strategy) String() string {
	switch s {
	case TrailingValue:
		return "trailing-value"
	case NonIncreasing:
		return "non-increasing"
	default:
		return "unknown"
	}
}

// Config defines a variant. Tables are copied by New.
type Config struct {
	// Name is the registry name.
	Name string

	// Minimum and Maximum are the inclusive bounds.
	Minimum int64
	Maximum int64

	// Encoding lists magnitudes from largest to smallest, including any
	// subtractive composites (900 -> "CM").
	Encoding []Entry

	// Decoding maps each symbol to its magnitude. Composites are omitted
	// for TrailingValue variants; NonIncreasing variants list every
	// multi-character token.
	Decoding map[string]int64

	Strategy Strategy
}

// Variant is a table-driven additive-subtractive numeral system.
// A Variant is immutable after New and safe for concurrent use.
type Variant struct {
	def      numeral.Definition
	encoding []Entry
	decoding map[string]int64
	tokens   []string // Decoding keys, longest first
	strategy Strategy
}

var _ numeral.System = (*Variant)(nil)

// New builds a Variant from cfg. It panics when the tables cannot
// produce every integer in [Minimum, Maximum]: a broken table is a
// definition bug, not a runtime condition.
func New(cfg Config) *Variant {
	if err := checkTables(cfg); err != nil {
		panic(fmt.Sprintf("roman: %s: %v", cfg.Name, err))
	}

	decoding := make(map[string]int64, len(cfg.Decoding))
	tokens := make([]string, 0, len(cfg.Decoding))
	for sym, mag := range cfg.Decoding {
		decoding[sym] = mag
		tokens = append(tokens, sym)
	}
	slices.SortFunc(tokens, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return lb - la
		}
		return strings.Compare(a, b)
	})

	return &Variant{
		def: numeral.Definition{
			Name:        cfg.Name,
			Limits:      numeral.Bounded(cfg.Minimum, cfg.Maximum, false),
			Denotations: numeral.Kinds(numeral.Integer),
			Form:        numeral.Symbolic,
		},
		encoding: slices.Clone(cfg.Encoding),
		decoding: decoding,
		tokens:   tokens,
		strategy: cfg.Strategy,
	}
}

// checkTables verifies the greedy encoding has no gaps: magnitudes strictly
// descend and end at 1, and every encoded symbol can be decoded.
func checkTables(cfg Config) error {
	if len(cfg.Encoding) == 0 {
		return fmt.Errorf("empty encoding table")
	}
	for i, e := range cfg.Encoding {
		if e.Magnitude <= 0 || e.Symbol == "" {
			return fmt.Errorf("entry %d: invalid entry %d=%q", i, e.Magnitude, e.Symbol)
		}
		if i > 0 && e.Magnitude >= cfg.Encoding[i-1].Magnitude {
			return fmt.Errorf("entry %d: magnitude %d does not descend", i, e.Magnitude)
		}
	}
	if last := cfg.Encoding[len(cfg.Encoding)-1]; last.Magnitude != 1 {
		return fmt.Errorf("smallest magnitude is %d, want 1", last.Magnitude)
	}
	if cfg.Minimum < 1 {
		return fmt.Errorf("minimum %d cannot be written", cfg.Minimum)
	}
	for _, e := range cfg.Encoding {
		if cfg.Strategy == NonIncreasing {
			if cfg.Decoding[e.Symbol] != e.Magnitude {
				return fmt.Errorf("symbol %q is not decodable", e.Symbol)
			}
			continue
		}
		for _, r := range e.Symbol {
			if _, ok := cfg.Decoding[string(r)]; !ok {
				return fmt.Errorf("letter %q of %q is not decodable", r, e.Symbol)
			}
		}
	}
	return nil
}

// Definition implements numeral.System.
func (v *Variant) Definition() numeral.Definition {
	return v.def
}

// Encode writes d by greedy repeated subtraction over the encoding table.
func (v *Variant) Encode(d numeral.Denotation) (numeral.Numeral, error) {
	valid, err := v.def.ValidateDenotation(d)
	if err != nil {
		return nil, err
	}
	remaining := int64(valid.(numeral.Int))

	var sb strings.Builder
	for _, e := range v.encoding {
		for remaining >= e.Magnitude {
			sb.WriteString(e.Symbol)
			remaining -= e.Magnitude
		}
	}
	return numeral.Text(sb.String()), nil
}

// Decode reads n case-insensitively. Unicode Roman numeral glyphs such as
// Ⅻ are read as their letter spellings.
func (v *Variant) Decode(n numeral.Numeral) (numeral.Denotation, error) {
	if err := v.def.CheckNumeral(n); err != nil {
		return nil, err
	}
	raw := n.(numeral.Text)
	text := fold(string(raw))

	var (
		total int64
		err   error
	)
	switch v.strategy {
	case NonIncreasing:
		total, err = v.decodeNonIncreasing(raw, text)
	default:
		total, err = v.decodeTrailing(raw, text)
	}
	if err != nil {
		return nil, err
	}
	return v.def.ValidateDenotation(numeral.Int(total))
}

// decodeTrailing implements the trailing-value algorithm over the folded
// text. Errors report the raw input.
func (v *Variant) decodeTrailing(raw numeral.Text, text string) (int64, error) {
	runes := []rune(text)
	var total, previous int64
	for i := len(runes) - 1; i >= 0; i-- {
		current, ok := v.decoding[string(runes[i])]
		if !ok {
			return 0, numeral.NewFormatError(v.def.Name, raw,
				"invalid character %q", runes[i])
		}
		if current < previous {
			total -= current
		} else {
			total += current
		}
		previous = current
	}
	return total, nil
}

// decodeNonIncreasing implements longest-match-first tokenization with a
// strict non-increasing magnitude check.
func (v *Variant) decodeNonIncreasing(raw numeral.Text, text string) (int64, error) {
	var total int64
	last := int64(math.MaxInt64)
	for i := 0; i < len(text); {
		matched := false
		for _, tok := range v.tokens {
			if !strings.HasPrefix(text[i:], tok) {
				continue
			}
			current := v.decoding[tok]
			if current > last {
				return 0, numeral.NewFormatError(v.def.Name, raw,
					"invalid sequence: %s cannot follow a smaller value", tok)
			}
			total += current
			last = current
			i += len(tok)
			matched = true
			break
		}
		if !matched {
			r, _ := utf8.DecodeRuneInString(text[i:])
			return 0, numeral.NewFormatError(v.def.Name, raw,
				"invalid character %q at position %d", r, utf8.RuneCountInString(text[:i]))
		}
	}
	return total, nil
}

// fold maps compatibility glyphs (Ⅻ, ⅰ, full-width letters) to plain
// letters and upper-cases the result. Casers are stateful, so one is built
// per call.
func fold(s string) string {
	return cases.Upper(language.Und).String(norm.NFKC.String(s))
}
