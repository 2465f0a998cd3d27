// Package collector extracts numeric controls from a UI description walk.
//
// A Collector is handed to a ui.Builder and records every slider and numeric
// entry in the order the walker reports them. Boxes, buttons, checkboxes,
// bargraphs and declarations are accepted and ignored. The collector does no
// validation, deduplication or reordering.
package collector

import (
	"slices"

	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/ui"
)

// Collector accumulates numeric controls during exactly one traversal.
type Collector struct {
	ui.Nop
	collected []meta.Control
}

var _ ui.UI = (*Collector)(nil)

func New() *Collector {
	return &Collector{}
}

func (c *Collector) AddVerticalSlider(label string, param ui.ParamIndex, init, min, max, step float64) {
	c.add(ui.KindVerticalSlider, label, param, init, min, max, step)
}

func (c *Collector) AddHorizontalSlider(label string, param ui.ParamIndex, init, min, max, step float64) {
	c.add(ui.KindHorizontalSlider, label, param, init, min, max, step)
}

func (c *Collector) AddNumEntry(label string, param ui.ParamIndex, init, min, max, step float64) {
	c.add(ui.KindNumEntry, label, param, init, min, max, step)
}

func (c *Collector) add(kind ui.Kind, label string, param ui.ParamIndex, init, min, max, step float64) {
	c.collected = append(c.collected, meta.Control{
		Label: label,
		Kind:  kind,
		Index: param,
		Init:  init,
		Min:   min,
		Max:   max,
		Step:  step,
	})
}

// Controls returns a copy of the collected controls in traversal order.
func (c *Collector) Controls() []meta.Control {
	return slices.Clone(c.collected)
}

// Registry packages the collected controls for a generator.
func (c *Collector) Registry(structName string) *meta.Registry {
	return &meta.Registry{
		StructName: structName,
		Controls:   c.Controls(),
	}
}

// Collect drives a fresh Collector through b and returns the resulting registry.
func Collect(b ui.Builder, structName string) *meta.Registry {
	c := New()
	b.BuildUserInterface(c)
	return c.Registry(structName)
}
