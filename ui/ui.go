// Package ui defines the visitor capability set a DSP compiler drives while
// walking its user interface description, plus an in-memory description tree
// that can drive any visitor the same way.
package ui

// ParamIndex is the position of a parameter as assigned by the DSP compiler.
type ParamIndex int32

// NoParam marks declarations that belong to the whole tree or to a group
// rather than to a single control.
const NoParam ParamIndex = -1

// UI is the closed set of callbacks a user interface walker invokes.
// Calls arrive in traversal order; boxes may nest to any depth.
type UI interface {
	OpenTabBox(label string)
	OpenHorizontalBox(label string)
	OpenVerticalBox(label string)
	CloseBox()

	AddButton(label string, param ParamIndex)
	AddCheckButton(label string, param ParamIndex)

	AddVerticalSlider(label string, param ParamIndex, init, min, max, step float64)
	AddHorizontalSlider(label string, param ParamIndex, init, min, max, step float64)
	AddNumEntry(label string, param ParamIndex, init, min, max, step float64)

	AddHorizontalBargraph(label string, param ParamIndex, min, max float64)
	AddVerticalBargraph(label string, param ParamIndex, min, max float64)

	// Declare attaches a key/value annotation to a control, or to the
	// enclosing tree when param is NoParam.
	Declare(param ParamIndex, key, value string)
}

// Builder is implemented by anything able to drive a UI through its
// description exactly once.
type Builder interface {
	BuildUserInterface(v UI)
}

// Nop implements every capability as a no-op. Embed it to handle only the
// callbacks that matter.
type Nop struct{}

var _ UI = Nop{}

func (Nop) OpenTabBox(string)        {}
func (Nop) OpenHorizontalBox(string) {}
func (Nop) OpenVerticalBox(string)   {}
func (Nop) CloseBox()                {}

func (Nop) AddButton(string, ParamIndex)      {}
func (Nop) AddCheckButton(string, ParamIndex) {}

func (Nop) AddVerticalSlider(string, ParamIndex, float64, float64, float64, float64)   {}
func (Nop) AddHorizontalSlider(string, ParamIndex, float64, float64, float64, float64) {}
func (Nop) AddNumEntry(string, ParamIndex, float64, float64, float64, float64)         {}

func (Nop) AddHorizontalBargraph(string, ParamIndex, float64, float64) {}
func (Nop) AddVerticalBargraph(string, ParamIndex, float64, float64)   {}

func (Nop) Declare(ParamIndex, string, string) {}
