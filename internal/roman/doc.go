// Package roman implements additive-subtractive letter notations.
//
// Every variant is one Variant value built from tables; variants never
// subclass each other. Encoding is greedy repeated subtraction over an
// ordered table that already contains subtractive composites (CM, IX), so
// no run-time subtraction logic is needed beyond the greedy loop.
//
// Decoding uses one of two strategies:
//
//   - TrailingValue (Standard, Early, latin.Latin): scan right to left and
//     subtract a symbol smaller than its successor. This is lenient: IIX
//     reads as 8 and is not rejected.
//   - NonIncreasing (Apostrophus): longest-match-first tokenization of
//     compound symbols; a larger token after a smaller one is an error.
//
// Input is folded before lookup: Unicode compatibility glyphs (Ⅻ, ⅿ) become
// letters and everything is upper-cased.
package roman
