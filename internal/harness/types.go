package harness

import "github.com/roach88/numerals/internal/numeral"

// TraceEvent records one conversion of a scenario run.
// Exactly one of Output or Error is set.
type TraceEvent struct {
	Seq        int64  `json:"seq"`
	From       string `json:"from"`
	To         string `json:"to"`
	Input      string `json:"input"`
	InputKind  string `json:"input_kind"`
	Output     string `json:"output,omitempty"`
	OutputKind string `json:"output_kind,omitempty"`
	Error      string `json:"error,omitempty"` // ErrorKind code
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// RunID identifies this execution.
	RunID string `json:"run_id"`

	// Pass indicates overall test success.
	// True if every expect clause and assertion holds.
	Pass bool `json:"pass"`

	// Trace contains one event per conversion, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID string) *Result {
	return &Result{
		RunID:  runID,
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a conversion event.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}

// kindName labels a numeral's variant for traces.
func kindName(n numeral.Numeral) string {
	switch v := n.(type) {
	case nil:
		return ""
	case numeral.Denotation:
		return v.Kind().String()
	default:
		return "text"
	}
}
