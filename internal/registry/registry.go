// Package registry enumerates the built-in numeral systems.
//
// Systems are listed explicitly; nothing is discovered by reflection.
// Adding a system means adding it to builtin.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/numerals/internal/arabic"
	"github.com/roach88/numerals/internal/egyptian"
	"github.com/roach88/numerals/internal/latin"
	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/roman"
)

var builtin = []numeral.System{
	arabic.Arabic,
	egyptian.Egyptian,
	latin.Latin,
	roman.Apostrophus,
	roman.Early,
	roman.Standard,
}

// NotFoundError is returned by Lookup for unknown names.
type NotFoundError struct {
	Name  string
	Known []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown numeral system %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// All returns a fresh name -> system map.
func All() map[string]numeral.System {
	out := make(map[string]numeral.System, len(builtin))
	for _, s := range builtin {
		out[numeral.Name(s)] = s
	}
	return out
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for _, s := range builtin {
		names = append(names, numeral.Name(s))
	}
	slices.Sort(names)
	return names
}

// Systems returns the registered systems ordered by name.
func Systems() []numeral.System {
	out := slices.Clone(builtin)
	slices.SortFunc(out, func(a, b numeral.System) int {
		return strings.Compare(numeral.Name(a), numeral.Name(b))
	})
	return out
}

// Lookup finds a system by name. Matching ignores case, so
// "ROMAN.standard" finds roman.Standard.
func Lookup(name string) (numeral.System, error) {
	for _, s := range builtin {
		if strings.EqualFold(numeral.Name(s), name) {
			return s, nil
		}
	}
	return nil, &NotFoundError{Name: name, Known: Names()}
}
