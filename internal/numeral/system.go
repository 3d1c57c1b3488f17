package numeral

// System is the contract every numeral system implements.
//
// Implementations are stateless and safe for concurrent use.
type System interface {
	// Definition describes the system's name, bounds, and accepted types.
	Definition() Definition

	// Encode validates d and produces the system's numeral for it.
	// Encode is deterministic.
	Encode(d Denotation) (Numeral, error)

	// Decode parses n and returns its validated denotation.
	Decode(n Numeral) (Denotation, error)
}

// Definition is the static description shared by every system. It owns
// the type and bound checks so concrete systems only define tables.
type Definition struct {
	// Name is the registry name, e.g. "roman.Standard".
	Name string

	// Limits are the inclusive bounds on denotations.
	Limits Limits

	// Denotations lists the accepted denotation kinds.
	Denotations KindSet

	// Form is the single numeral representation of the system.
	Form Form
}

// ValidateDenotation checks d's kind, then its bounds, and returns the
// possibly saturated value.
func (def Definition) ValidateDenotation(d Denotation) (Denotation, error) {
	if d == nil {
		return nil, NewTypeError(def.Name, nil, "missing denotation")
	}
	if !def.Denotations.Has(d.Kind()) {
		return nil, NewTypeError(def.Name, d, "%s of kind %s cannot be represented in %s (accepts %s)",
			d, d.Kind(), def.Name, def.Denotations)
	}
	return def.Limits.Check(def.Name, d)
}

// CheckNumeral confirms n has the system's numeral form. For numeric
// systems the numeral's kind must also be accepted.
func (def Definition) CheckNumeral(n Numeral) error {
	if n == nil {
		return NewTypeError(def.Name, nil, "missing numeral")
	}
	if n.Form() != def.Form {
		return NewTypeError(def.Name, n, "%s numeral %q cannot be read by %s (expects %s)",
			n.Form(), n, def.Name, def.Form)
	}
	if d, ok := n.(Denotation); ok && !def.Denotations.Has(d.Kind()) {
		return NewTypeError(def.Name, n, "%s of kind %s cannot be represented in %s (accepts %s)",
			d, d.Kind(), def.Name, def.Denotations)
	}
	return nil
}

// Validate runs s's denotation checks. It is the contract's
// validate_denotation operation.
func Validate(s System, d Denotation) (Denotation, error) {
	return s.Definition().ValidateDenotation(d)
}

// Name returns the registry name of s.
func Name(s System) string {
	return s.Definition().Name
}
