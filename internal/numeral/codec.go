package numeral

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Plain converts a numeral to a plain Go value for JSON and YAML output.
// Rationals and non-finite floats become strings so no precision is lost.
func Plain(n Numeral) any {
	switch v := n.(type) {
	case nil:
		return nil
	case Text:
		return string(v)
	case Int:
		return int64(v)
	case Float:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return v.String()
		}
		return float64(v)
	case Rat:
		return v.String()
	default:
		return n.String()
	}
}

// FromPlain builds a numeral from a decoded YAML/JSON value.
//
// kind may be "", "text", "integer", "rational" or "float". With an empty
// kind, Go integers become Int, Go floats become Float and strings become
// Text.
func FromPlain(v any, kind string) (Numeral, error) {
	switch kind {
	case "":
		return inferPlain(v)
	case "text":
		return Text(fmt.Sprint(v)), nil
	case "integer", "rational", "float":
		k, _ := ParseKind(kind)
		return ParseNumber(fmt.Sprint(v), k)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func inferPlain(v any) (Numeral, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("value is required")
	case Numeral:
		return val, nil
	case string:
		return Text(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", val)
		}
		return Int(val), nil
	case float64:
		return Float(val), nil
	case float32:
		return Float(val), nil
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}

// ParseNumber parses s as a denotation of the given kind.
func ParseNumber(s string, kind Kind) (Denotation, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case Integer:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", s, err)
		}
		return Int(i), nil
	case Rational:
		return ParseRat(s)
	case Floating:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", s, err)
		}
		return Float(f), nil
	default:
		return nil, fmt.Errorf("unknown kind %v", kind)
	}
}

// InferNumber parses s choosing the kind from its shape: "a/b" is
// rational, an integer literal is an integer, anything else is a float.
func InferNumber(s string) (Denotation, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return ParseNumber(s, Rational)
	}
	if d, err := ParseNumber(s, Integer); err == nil {
		return d, nil
	}
	return ParseNumber(s, Floating)
}
