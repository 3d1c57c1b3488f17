// Package latin provides the Latin numeral variant, which writes ↀ
// (U+2180) for 1000 where the standard Roman notation writes M.
package latin

import "github.com/roach88/numerals/internal/roman"

// Latin uses I V X L C D ↀ with subtractive pairs, bounds [1, 3999].
var Latin = roman.New(roman.Config{
	Name:    "latin.Latin",
	Minimum: 1,
	Maximum: 3_999,
	Encoding: []roman.Entry{
		{Magnitude: 1_000, Symbol: "ↀ"},
		{Magnitude: 900, Symbol: "Cↀ"},
		{Magnitude: 500, Symbol: "D"},
		{Magnitude: 400, Symbol: "CD"},
		{Magnitude: 100, Symbol: "C"},
		{Magnitude: 90, Symbol: "XC"},
		{Magnitude: 50, Symbol: "L"},
		{Magnitude: 40, Symbol: "XL"},
		{Magnitude: 10, Symbol: "X"},
		{Magnitude: 9, Symbol: "IX"},
		{Magnitude: 5, Symbol: "V"},
		{Magnitude: 4, Symbol: "IV"},
		{Magnitude: 1, Symbol: "I"},
	},
	Decoding: map[string]int64{
		"I": 1,
		"V": 5,
		"X": 10,
		"L": 50,
		"C": 100,
		"D": 500,
		"ↀ": 1_000,
	},
	Strategy: roman.TrailingValue,
})
