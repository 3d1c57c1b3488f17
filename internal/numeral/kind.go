package numeral

import "strings"

// Kind identifies a denotation variant.
type Kind uint8

const (
	// Integer is an exact int64 value (Int).
	Integer Kind = 1 << iota
	// Rational is an arbitrary-precision fraction (Rat).
	Rational
	// Floating is an IEEE 754 double (Float).
	Floating
)

var kindNames = map[Kind]string{
	Integer:  "integer",
	Rational: "rational",
	Floating: "float",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps "integer", "rational" or "float" to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// KindSet is a set of denotation kinds.
type KindSet uint8

// AllKinds accepts every denotation variant.
const AllKinds = KindSet(Integer | Rational | Floating)

// Kinds builds a KindSet.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= KindSet(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&KindSet(k) != 0
}

// Intersect returns the kinds present in both sets.
func (s KindSet) Intersect(o KindSet) KindSet {
	return s & o
}

// List returns the kinds in ascending order.
func (s KindSet) List() []Kind {
	var out []Kind
	for _, k := range []Kind{Integer, Rational, Floating} {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s KindSet) String() string {
	names := make([]string, 0, 3)
	for _, k := range s.List() {
		names = append(names, k.String())
	}
	return strings.Join(names, "|")
}

// Form is the representation a system uses for its numerals.
type Form uint8

const (
	// Symbolic numerals are Text.
	Symbolic Form = iota + 1
	// Numeric numerals are denotations passed through unchanged.
	Numeric
)

func (f Form) String() string {
	switch f {
	case Symbolic:
		return "symbolic"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}
