package roman

// Standard is the classical notation I V X L C D M, bounds [1, 3999].
var Standard = New(Config{
	Name:    "roman.Standard",
	Minimum: 1,
	Maximum: 3_999,
	Encoding: []Entry{
		{1_000, "M"},
		{900, "CM"},
		{500, "D"},
		{400, "CD"},
		{100, "C"},
		{90, "XC"},
		{50, "L"},
		{40, "XL"},
		{10, "X"},
		{9, "IX"},
		{5, "V"},
		{4, "IV"},
		{1, "I"},
	},
	Decoding: map[string]int64{
		"I": 1,
		"V": 5,
		"X": 10,
		"L": 50,
		"C": 100,
		"D": 500,
		"M": 1_000,
	},
	Strategy: TrailingValue,
})

// Early is the notation before M was adopted, bounds [1, 899].
var Early = New(Config{
	Name:    "roman.Early",
	Minimum: 1,
	Maximum: 899,
	Encoding: []Entry{
		{500, "D"},
		{400, "CD"},
		{100, "C"},
		{90, "XC"},
		{50, "L"},
		{40, "XL"},
		{10, "X"},
		{9, "IX"},
		{5, "V"},
		{4, "IV"},
		{1, "I"},
	},
	Decoding: map[string]int64{
		"I": 1,
		"V": 5,
		"X": 10,
		"L": 50,
		"C": 100,
		"D": 500,
	},
	Strategy: TrailingValue,
})

// Apostrophus writes large numbers with nested C…Ↄ brackets around I,
// e.g. CIↃ for 1000 and CCCIↃↃↃ for 100000. It has no subtractive
// composites, so any magnitude increase while reading is an error.
var Apostrophus = New(Config{
	Name:    "roman.Apostrophus",
	Minimum: 1,
	Maximum: 100_000,
	Encoding: []Entry{
		{100_000, "CCCIↃↃↃ"},
		{50_000, "IↃↃↃ"},
		{10_000, "CCIↃↃ"},
		{5_000, "IↃↃ"},
		{1_000, "CIↃ"},
		{500, "IↃ"},
		{100, "C"},
		{50, "L"},
		{10, "X"},
		{5, "V"},
		{1, "I"},
	},
	Decoding: map[string]int64{
		"CCCIↃↃↃ": 100_000,
		"IↃↃↃ":    50_000,
		"CCIↃↃ":   10_000,
		"IↃↃ":     5_000,
		"CIↃ":     1_000,
		"IↃ":      500,
		"C":       100,
		"L":       50,
		"X":       10,
		"V":       5,
		"I":       1,
	},
	Strategy: NonIncreasing,
})
