// Package convert chains two numeral systems through a shared denotation.
//
// A conversion decodes the input with the source system, checks that the
// target accepts the resulting denotation kind, and encodes it with the
// target. This is the only path between systems.
package convert

import (
	"io"
	"log/slog"

	"github.com/roach88/numerals/internal/numeral"
)

// Phase names the step of a conversion, used in log records.
type Phase string

const (
	PhaseDecode Phase = "decode"
	PhaseCheck  Phase = "check"
	PhaseEncode Phase = "encode"
)

// Converter is the conversion façade. It holds no conversion state and is
// safe for concurrent use.
type Converter struct {
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger for phase records. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var std = New()

// Convert uses a Converter that discards logs.
func Convert(value numeral.Numeral, from, to numeral.System) (numeral.Numeral, error) {
	return std.Convert(value, from, to)
}

// Convert turns value, written in from, into to's numeral.
//
// A plain number given to a symbolic source system is taken as already
// decoded and is not checked against the source bounds. Numeric sources
// (arabic.Arabic) always decode, so their bounds apply.
//
// Errors are returned unchanged from the failing system; numeral.KindOf
// classifies them.
func (c *Converter) Convert(value numeral.Numeral, from, to numeral.System) (numeral.Numeral, error) {
	fromName, toName := numeral.Name(from), numeral.Name(to)
	log := c.logger.With("from", fromName, "to", toName)

	den, err := c.decode(value, from)
	if err != nil {
		log.Debug("conversion failed", "phase", PhaseDecode, "input", describe(value), "error", err)
		return nil, err
	}

	toDef := to.Definition()
	if toDef.Denotations.Intersect(numeral.Kinds(den.Kind())) == 0 {
		err := numeral.NewTypeError(toName, den, "%s of kind %s cannot be represented in %s",
			den, den.Kind(), toName)
		log.Debug("conversion failed", "phase", PhaseCheck, "denotation", den.String(), "error", err)
		return nil, err
	}

	out, err := to.Encode(den)
	if err != nil {
		log.Debug("conversion failed", "phase", PhaseEncode, "denotation", den.String(), "error", err)
		return nil, err
	}

	log.Debug("converted", "input", describe(value), "denotation", den.String(), "output", out.String())
	return out, nil
}

func (c *Converter) decode(value numeral.Numeral, from numeral.System) (numeral.Denotation, error) {
	if from.Definition().Form == numeral.Symbolic {
		if d, ok := value.(numeral.Denotation); ok {
			return d, nil
		}
	}
	return from.Decode(value)
}

func describe(n numeral.Numeral) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
