package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

// SystemInfo describes one registered system.
type SystemInfo struct {
	Name          string   `json:"name"`
	Form          string   `json:"form"`
	Kinds         []string `json:"kinds"`
	Minimum       string   `json:"minimum"`
	Maximum       string   `json:"maximum"`
	MaximumIsMany bool     `json:"maximum_is_many"`

	bounds string
}

// SystemList is the payload of the systems command.
type SystemList []SystemInfo

func (l SystemList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %-8s %-22s %s\n", "NAME", "FORM", "KINDS", "BOUNDS")
	for _, s := range l {
		fmt.Fprintf(&b, "%-18s %-8s %-22s %s\n", s.Name, s.Form, strings.Join(s.Kinds, "|"), s.bounds)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewSystemsCommand creates the systems command.
func NewSystemsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "systems",
		Short:         "List the registered numeral systems",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(listSystems())
		},
	}
}

func listSystems() SystemList {
	systems := registry.Systems()
	out := make(SystemList, 0, len(systems))
	for _, s := range systems {
		def := s.Definition()
		kinds := make([]string, 0, 3)
		for _, k := range def.Denotations.List() {
			kinds = append(kinds, k.String())
		}
		out = append(out, SystemInfo{
			Name:          def.Name,
			Form:          def.Form.String(),
			Kinds:         kinds,
			Minimum:       numeral.FormatBound(def.Limits.Minimum),
			Maximum:       numeral.FormatBound(def.Limits.Maximum),
			MaximumIsMany: def.Limits.MaximumIsMany,
			bounds:        def.Limits.String(),
		})
	}
	return out
}
