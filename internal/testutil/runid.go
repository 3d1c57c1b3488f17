package testutil

// FixedRunID hands out the same run ID on every call so traces from
// repeated runs compare byte-for-byte.
//
// Thread-safety: FixedRunID is immutable and safe for concurrent use.
type FixedRunID struct {
	id string
}

// DefaultRunID is used when NewFixedRunID is given an empty string.
const DefaultRunID = "test-run-default"

// NewFixedRunID creates a generator that always returns id.
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed run ID.
//
// Implements harness.RunIDGenerator.
func (g *FixedRunID) Generate() string {
	return g.id
}
