package ui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/paramgen/ui"
)

type recorder struct {
	ui.Nop
	calls []string
}

func (r *recorder) OpenTabBox(label string)        { r.calls = append(r.calls, "tab "+label) }
func (r *recorder) OpenHorizontalBox(label string) { r.calls = append(r.calls, "hbox "+label) }
func (r *recorder) OpenVerticalBox(label string)   { r.calls = append(r.calls, "vbox "+label) }
func (r *recorder) CloseBox()                      { r.calls = append(r.calls, "close") }
func (r *recorder) AddButton(label string, p ui.ParamIndex) {
	r.calls = append(r.calls, fmt.Sprintf("button %s %d", label, p))
}
func (r *recorder) AddCheckButton(label string, p ui.ParamIndex) {
	r.calls = append(r.calls, fmt.Sprintf("checkbox %s %d", label, p))
}
func (r *recorder) AddVerticalSlider(label string, p ui.ParamIndex, init, min, max, step float64) {
	r.calls = append(r.calls, fmt.Sprintf("vslider %s %d %v %v %v %v", label, p, init, min, max, step))
}
func (r *recorder) AddHorizontalSlider(label string, p ui.ParamIndex, init, min, max, step float64) {
	r.calls = append(r.calls, fmt.Sprintf("hslider %s %d %v %v %v %v", label, p, init, min, max, step))
}
func (r *recorder) AddNumEntry(label string, p ui.ParamIndex, init, min, max, step float64) {
	r.calls = append(r.calls, fmt.Sprintf("nentry %s %d %v %v %v %v", label, p, init, min, max, step))
}
func (r *recorder) AddHorizontalBargraph(label string, p ui.ParamIndex, min, max float64) {
	r.calls = append(r.calls, fmt.Sprintf("hbargraph %s %d %v %v", label, p, min, max))
}
func (r *recorder) AddVerticalBargraph(label string, p ui.ParamIndex, min, max float64) {
	r.calls = append(r.calls, fmt.Sprintf("vbargraph %s %d %v %v", label, p, min, max))
}
func (r *recorder) Declare(p ui.ParamIndex, key, value string) {
	r.calls = append(r.calls, fmt.Sprintf("declare %d %s=%s", p, key, value))
}

func TestBuildUserInterfaceOrder(t *testing.T) {
	tree := &ui.Tree{
		Name: "comp",
		Meta: []ui.Meta{{Key: "author", Value: "me"}},
		Items: []ui.Item{
			{Kind: ui.KindTabGroup, Label: "tabs", Items: []ui.Item{
				{Kind: ui.KindHorizontalGroup, Label: "row", Items: []ui.Item{
					{Kind: ui.KindVerticalSlider, Label: "gain", Index: 0, Init: 1, Min: 0, Max: 2, Step: 0.1,
						Meta: []ui.Meta{{Key: "unit", Value: "dB"}}},
					{Kind: ui.KindButton, Label: "reset", Index: 1},
				}},
				{Kind: ui.KindVerticalGroup, Label: "col", Meta: []ui.Meta{{Key: "style", Value: "knob"}}, Items: []ui.Item{
					{Kind: ui.KindHorizontalBargraph, Label: "level", Index: 2, Min: -60, Max: 0},
					{Kind: ui.KindNumEntry, Label: "ratio", Index: 3, Init: 4, Min: 1, Max: 20, Step: 1},
				}},
			}},
			{Kind: ui.KindCheckbox, Label: "bypass", Index: 4},
			{Kind: ui.KindHorizontalSlider, Label: "mix", Index: 5, Init: 50, Max: 100, Step: 1},
			{Kind: ui.KindVerticalBargraph, Label: "gr", Index: 6, Min: 0, Max: 30},
		},
	}

	r := &recorder{}
	tree.BuildUserInterface(r)

	assert.Equal(t, []string{
		"declare -1 author=me",
		"tab tabs",
		"hbox row",
		"declare 0 unit=dB",
		"vslider gain 0 1 0 2 0.1",
		"button reset 1",
		"close",
		"declare -1 style=knob",
		"vbox col",
		"hbargraph level 2 -60 0",
		"nentry ratio 3 4 1 20 1",
		"close",
		"close",
		"checkbox bypass 4",
		"hslider mix 5 50 0 100 1",
		"vbargraph gr 6 0 30",
	}, r.calls)
}

func TestBuildUserInterfaceEmpty(t *testing.T) {
	r := &recorder{}
	(&ui.Tree{}).BuildUserInterface(r)
	assert.Empty(t, r.calls)
}

func TestParseKind(t *testing.T) {
	for _, k := range ui.Kinds() {
		parsed, err := ui.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ui.ParseKind("soundfile")
	assert.Error(t, err)
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind     ui.Kind
		group    bool
		numeric  bool
		bargraph bool
	}{
		{ui.KindTabGroup, true, false, false},
		{ui.KindHorizontalGroup, true, false, false},
		{ui.KindVerticalGroup, true, false, false},
		{ui.KindButton, false, false, false},
		{ui.KindCheckbox, false, false, false},
		{ui.KindVerticalSlider, false, true, false},
		{ui.KindHorizontalSlider, false, true, false},
		{ui.KindNumEntry, false, true, false},
		{ui.KindHorizontalBargraph, false, false, true},
		{ui.KindVerticalBargraph, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.group, tt.kind.IsGroup())
			assert.Equal(t, tt.numeric, tt.kind.IsNumeric())
			assert.Equal(t, tt.bargraph, tt.kind.IsBargraph())
			assert.Equal(t, !tt.group, tt.kind.HasParam())
		})
	}
}

func TestTreeCount(t *testing.T) {
	tree := &ui.Tree{Items: []ui.Item{
		{Kind: ui.KindVerticalGroup, Items: []ui.Item{
			{Kind: ui.KindVerticalSlider},
			{Kind: ui.KindHorizontalGroup, Items: []ui.Item{{Kind: ui.KindVerticalSlider}}},
		}},
		{Kind: ui.KindVerticalSlider},
	}}
	assert.Equal(t, 3, tree.Count(ui.KindVerticalSlider))
	assert.Equal(t, 1, tree.Count(ui.KindHorizontalGroup))
	assert.Equal(t, 0, tree.Count(ui.KindButton))
}
