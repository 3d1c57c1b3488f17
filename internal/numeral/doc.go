// Package numeral defines the contract every numeral system implements.
//
// This package contains the value model and the shared validation rules.
// Concrete systems (arabic, roman, latin, egyptian) import numeral;
// numeral imports nothing internal.
//
// Key design constraints:
//   - Denotations are a closed set: Int, Rat, Float. Numerals are a closed
//     set: Text plus any denotation (pass-through systems).
//   - Each system fixes exactly one numeral Form and a KindSet of accepted
//     denotations.
//   - Bound checks are exact (math/big). Floats are never rounded before
//     comparison.
//   - Systems are stateless; all tables are built once at package init and
//     never mutated.
package numeral
