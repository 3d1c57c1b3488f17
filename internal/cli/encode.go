package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/numerals/internal/arabic"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <system> <number>",
		Short: "Write a number in a numeral system",
		Long: `Write a number in a numeral system.

Shorthand for "convert <number> --from arabic.Arabic --to <system>".

Examples:
  numerals encode roman.Standard 1994
  numerals encode egyptian.Egyptian 2024`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			to, err := registry.Lookup(args[0])
			if err != nil {
				return f.Fail(err)
			}
			value, err := numeral.InferNumber(args[1])
			if err != nil {
				return f.Fail(err)
			}
			return convertAndReport(rootOpts, f, value, arabic.Arabic, to)
		},
	}
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <system> <numeral>",
		Short: "Read a numeral back to a number",
		Long: `Read a numeral back to a number.

Shorthand for "convert <numeral> --from <system> --to arabic.Arabic".

Examples:
  numerals decode roman.Standard MCMXCIV
  numerals decode latin.Latin ↀCↀXCIV`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			from, err := registry.Lookup(args[0])
			if err != nil {
				return f.Fail(err)
			}
			value, err := parseValue(args[1], "auto", false, from)
			if err != nil {
				return f.Fail(err)
			}
			return convertAndReport(rootOpts, f, value, from, arabic.Arabic)
		},
	}
}
