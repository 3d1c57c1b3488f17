package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/numerals/internal/convert"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

// ValidKinds are the accepted --kind values.
var ValidKinds = []string{"auto", "integer", "rational", "float", "text"}

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	From  string
	To    string
	Kind  string
	Exact bool
}

// ConversionResult is the payload of convert, encode and decode.
type ConversionResult struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Input      string `json:"input"`
	InputKind  string `json:"input_kind"`
	Output     any    `json:"output"`
	OutputKind string `json:"output_kind"`

	text string
}

func (r ConversionResult) String() string {
	return r.text
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value from one numeral system to another",
		Long: `Convert a value from one numeral system to another.

The value is read according to --kind. With "auto", values for a
symbolic source system (roman.Standard, egyptian.Egyptian, ...) are read
as numerals, and values for arabic.Arabic are read as numbers: "a/b" is
rational, an integer literal is an integer, anything else is a float.
--exact reads decimal literals such as 0.1 as exact rationals instead.

--from and --to default to the configured systems (arabic.Arabic and
roman.Standard unless overridden).

Exit codes:
  0 - Converted
  1 - Conversion rejected (type mismatch, out of range, invalid format)
  2 - Command error (unknown system, unparsable value)

Examples:
  numerals convert 1994 --to roman.Standard
  numerals convert MCMXCIV --from roman.Standard --to egyptian.Egyptian
  numerals convert 7/2 --to arabic.Arabic --format json
  numerals convert 0.1 --exact --to arabic.Arabic`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source system (default from config)")
	cmd.Flags().StringVar(&opts.To, "to", "", "target system (default from config)")
	cmd.Flags().StringVar(&opts.Kind, "kind", "auto", "how to read the value (auto|integer|rational|float|text)")
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "read decimal literals as exact rationals")

	return cmd
}

func runConvert(opts *ConvertOptions, arg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	cfg := opts.settings()

	fromName, toName := opts.From, opts.To
	if fromName == "" {
		fromName = cfg.From
	}
	if toName == "" {
		toName = cfg.To
	}

	from, err := registry.Lookup(fromName)
	if err != nil {
		return f.Fail(err)
	}
	to, err := registry.Lookup(toName)
	if err != nil {
		return f.Fail(err)
	}

	value, err := parseValue(arg, opts.Kind, opts.Exact, from)
	if err != nil {
		return f.Fail(err)
	}
	return convertAndReport(opts.RootOptions, f, value, from, to)
}

// convertAndReport runs one conversion and writes its result or error.
func convertAndReport(opts *RootOptions, f *OutputFormatter, value numeral.Numeral, from, to numeral.System) error {
	c := convert.New(convert.WithLogger(opts.logger()))
	out, err := c.Convert(value, from, to)
	if err != nil {
		return f.Fail(err)
	}
	f.VerboseLog("%s (%s) -> %s (%s)", value, numeral.Name(from), out, numeral.Name(to))

	return f.Success(ConversionResult{
		From:       numeral.Name(from),
		To:         numeral.Name(to),
		Input:      value.String(),
		InputKind:  variantName(value),
		Output:     numeral.Plain(out),
		OutputKind: variantName(out),
		text:       out.String(),
	})
}

// parseValue reads a command-line argument as a numeral of the given kind.
func parseValue(arg, kind string, exact bool, from numeral.System) (numeral.Numeral, error) {
	arg = strings.TrimSpace(arg)
	switch kind {
	case "", "auto":
		if from.Definition().Form == numeral.Symbolic {
			return numeral.Text(arg), nil
		}
		if exact {
			return parseExact(arg)
		}
		return numeral.InferNumber(arg)
	case "text":
		return numeral.Text(arg), nil
	case "integer", "rational", "float":
		k, _ := numeral.ParseKind(kind)
		return numeral.ParseNumber(arg, k)
	default:
		return nil, fmt.Errorf("invalid kind %q: must be one of %s", kind, strings.Join(ValidKinds, ", "))
	}
}

// parseExact reads "a/b" and integer literals as usual and decimal
// literals as exact rationals.
func parseExact(s string) (numeral.Denotation, error) {
	if strings.Contains(s, "/") {
		return numeral.ParseNumber(s, numeral.Rational)
	}
	if d, err := numeral.ParseNumber(s, numeral.Integer); err == nil {
		return d, nil
	}

	d, err := decimal.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	return numeral.RatFromBig(new(big.Rat).SetFrac(num, den)), nil
}

// variantName labels a numeral's variant in command output.
func variantName(n numeral.Numeral) string {
	if d, ok := n.(numeral.Denotation); ok {
		return d.Kind().String()
	}
	return "text"
}
