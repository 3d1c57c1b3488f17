// Package arabic implements the pass-through system for plain numbers.
//
// Arabic numerals are the denotations themselves: Encode and Decode are
// the identity after validation. Every other system's Decode output can
// be fed to any Encode through this shared representation.
package arabic

import "github.com/roach88/numerals/internal/numeral"

// System is a pass-through numeral system.
type System struct {
	def numeral.Definition
}

var _ numeral.System = (*System)(nil)

// Arabic accepts integers, rationals and floats across the finite
// float64 range.
var Arabic = New(numeral.Unbounded())

// New creates a pass-through system with custom limits.
func New(limits numeral.Limits) *System {
	return &System{def: numeral.Definition{
		Name:        "arabic.Arabic",
		Limits:      limits,
		Denotations: numeral.AllKinds,
		Form:        numeral.Numeric,
	}}
}

// Definition implements numeral.System.
func (s *System) Definition() numeral.Definition {
	return s.def
}

// Encode returns d unchanged after validation.
func (s *System) Encode(d numeral.Denotation) (numeral.Numeral, error) {
	valid, err := s.def.ValidateDenotation(d)
	if err != nil {
		return nil, err
	}
	return valid, nil
}

// Decode returns n as a denotation after validation.
func (s *System) Decode(n numeral.Numeral) (numeral.Denotation, error) {
	if err := s.def.CheckNumeral(n); err != nil {
		return nil, err
	}
	return s.def.ValidateDenotation(n.(numeral.Denotation))
}
