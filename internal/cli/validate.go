package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

// ValidationResult is the payload of the validate command.
type ValidationResult struct {
	System    string `json:"system"`
	Input     string `json:"input"`
	Value     any    `json:"value"`
	Kind      string `json:"kind"`
	Saturated bool   `json:"saturated"`

	text string
}

func (r ValidationResult) String() string {
	return r.text
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <system> <number>",
		Short: "Check a number against a system's bounds and kinds",
		Long: `Check a number against a system's bounds and accepted kinds.

Prints the validated value. Systems whose maximum means "many"
(egyptian.Egyptian) saturate larger values to the maximum instead of
rejecting them.

Exit codes:
  0 - Valid
  1 - Rejected (type mismatch or out of range)
  2 - Command error (unknown system, unparsable number)

Examples:
  numerals validate roman.Standard 3999
  numerals validate egyptian.Egyptian 5000000`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runValidate(opts *RootOptions, systemName, arg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	sys, err := registry.Lookup(systemName)
	if err != nil {
		return f.Fail(err)
	}
	d, err := numeral.InferNumber(arg)
	if err != nil {
		return f.Fail(err)
	}

	valid, err := numeral.Validate(sys, d)
	if err != nil {
		opts.logger().Debug("validation failed", "system", numeral.Name(sys), "input", d.String(), "error", err)
		return f.Fail(err)
	}

	saturated := !numeral.Equal(d, valid)
	text := valid.String()
	if saturated {
		text = fmt.Sprintf("%s (saturated from %s)", valid, d)
	}
	return f.Success(ValidationResult{
		System:    numeral.Name(sys),
		Input:     d.String(),
		Value:     numeral.Plain(valid),
		Kind:      valid.Kind().String(),
		Saturated: saturated,
		text:      text,
	})
}
