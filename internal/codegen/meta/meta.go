package meta

import "github.com/Alia5/paramgen/ui"

// Control is one numeric control discovered while walking a UI description.
// Index is informational; generators order controls by their position in
// the registry, never by Index.
type Control struct {
	Label string
	Kind  ui.Kind
	Index ui.ParamIndex
	Init  float64
	Min   float64
	Max   float64
	Step  float64 // collected but not emitted
}

// InRange reports whether Init lies within [Min, Max].
func (c Control) InRange() bool {
	return c.Min <= c.Init && c.Init <= c.Max
}

// Registry holds the ordered controls of one generation pass together with
// the name of the generated struct. It is built once and never mutated.
// Shared between generator orchestrator and target generators.
type Registry struct {
	StructName string
	Controls   []Control
}

// Options tune the rendering of a registry. The zero value reproduces the
// reference artifact.
type Options struct {
	// Precision is the number of digits after the decimal point for every
	// numeric literal; values below 1 select 1.
	Precision int
	// Header prepends a "generated" notice and a parameter count.
	Header bool
	// IndexConstants appends one ParamIndex constant per control.
	IndexConstants bool
	// Double formats values as float64. By default they are narrowed to
	// float32 first, the sample type of a DSP compiled with -single.
	Double bool
}

// DefaultPrecision is the number of decimals used when Options.Precision is unset.
const DefaultPrecision = 1

// EffectivePrecision returns the precision that will actually be used.
func (o Options) EffectivePrecision() int {
	if o.Precision < 1 {
		return DefaultPrecision
	}
	return o.Precision
}
