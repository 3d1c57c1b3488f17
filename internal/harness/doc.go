// Package harness runs conformance scenarios against the numeral systems.
//
// # Scenario Format
//
// Scenarios are YAML files validated against an embedded CUE schema:
//
//	name: roman_basics
//	description: "Standard Roman numerals round trip"
//	run_id: run-roman-001          # optional
//	conversions:
//	  - value: 42
//	    from: arabic.Arabic
//	    to: roman.Standard
//	    expect:
//	      numeral: XLII
//	  - value: 4000
//	    from: arabic.Arabic
//	    to: roman.Standard
//	    expect:
//	      error: OUT_OF_RANGE
//	assertions:
//	  - type: round_trip
//	    systems: [roman.Standard, egyptian.Egyptian]
//	  - type: boundary
//	    system: roman.Early
//
// # Assertion Types
//
//   - round_trip: a -> b -> a returns the start numeral over the common range
//   - identity: converting a system to itself changes nothing
//   - saturation: values at or above a "many" maximum read back as it
//   - boundary: both bounds convert, their outer neighbors are rejected
//
// # Deterministic Testing
//
// Trace sequence numbers restart at 1 on every run and scenarios may pin
// their run ID, so repeated runs produce byte-identical canonical JSON
// snapshots suitable for golden file comparison.
package harness
