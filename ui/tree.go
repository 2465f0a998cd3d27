package ui

import "fmt"

// Kind identifies a widget in a UI description.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindTabGroup
	KindHorizontalGroup
	KindVerticalGroup
	KindButton
	KindCheckbox
	KindVerticalSlider
	KindHorizontalSlider
	KindNumEntry
	KindHorizontalBargraph
	KindVerticalBargraph
)

var kindNames = map[Kind]string{
	KindTabGroup:           "tgroup",
	KindHorizontalGroup:    "hgroup",
	KindVerticalGroup:      "vgroup",
	KindButton:             "button",
	KindCheckbox:           "checkbox",
	KindVerticalSlider:     "vslider",
	KindHorizontalSlider:   "hslider",
	KindNumEntry:           "nentry",
	KindHorizontalBargraph: "hbargraph",
	KindVerticalBargraph:   "vbargraph",
}

// Kinds lists every valid widget kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindTabGroup, KindHorizontalGroup, KindVerticalGroup,
		KindButton, KindCheckbox,
		KindVerticalSlider, KindHorizontalSlider, KindNumEntry,
		KindHorizontalBargraph, KindVerticalBargraph,
	}
}

// ParseKind maps a Faust widget type name ("vslider", "hgroup", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown widget type %q", s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsGroup reports whether the widget is a container.
func (k Kind) IsGroup() bool {
	return k == KindTabGroup || k == KindHorizontalGroup || k == KindVerticalGroup
}

// IsNumeric reports whether the widget is a settable, ranged control.
func (k Kind) IsNumeric() bool {
	return k == KindVerticalSlider || k == KindHorizontalSlider || k == KindNumEntry
}

// IsBargraph reports whether the widget is a read-only output.
func (k Kind) IsBargraph() bool {
	return k == KindHorizontalBargraph || k == KindVerticalBargraph
}

// HasParam reports whether the widget is bound to a DSP parameter slot.
func (k Kind) HasParam() bool {
	return k != KindInvalid && !k.IsGroup()
}

// Meta is a single key/value annotation. Order is preserved as declared.
type Meta struct {
	Key   string
	Value string
}

// Item is a node of a UI description: either a group with children or a
// leaf widget.
type Item struct {
	Kind  Kind
	Label string
	Index ParamIndex
	Init  float64
	Min   float64
	Max   float64
	Step  float64
	Meta  []Meta
	Items []Item
}

// Tree is a complete UI description as produced by the DSP compiler.
type Tree struct {
	Name  string
	Meta  []Meta
	Items []Item
}

var _ Builder = (*Tree)(nil)

// BuildUserInterface walks the tree depth-first in declaration order and
// drives v exactly once. Annotations are declared before the widget they
// belong to.
func (t *Tree) BuildUserInterface(v UI) {
	for _, m := range t.Meta {
		v.Declare(NoParam, m.Key, m.Value)
	}
	for i := range t.Items {
		walk(v, &t.Items[i])
	}
}

func walk(v UI, it *Item) {
	param := NoParam
	if it.Kind.HasParam() {
		param = it.Index
	}
	for _, m := range it.Meta {
		v.Declare(param, m.Key, m.Value)
	}

	switch it.Kind {
	case KindTabGroup:
		v.OpenTabBox(it.Label)
		walkChildren(v, it)
	case KindHorizontalGroup:
		v.OpenHorizontalBox(it.Label)
		walkChildren(v, it)
	case KindVerticalGroup:
		v.OpenVerticalBox(it.Label)
		walkChildren(v, it)
	case KindButton:
		v.AddButton(it.Label, it.Index)
	case KindCheckbox:
		v.AddCheckButton(it.Label, it.Index)
	case KindVerticalSlider:
		v.AddVerticalSlider(it.Label, it.Index, it.Init, it.Min, it.Max, it.Step)
	case KindHorizontalSlider:
		v.AddHorizontalSlider(it.Label, it.Index, it.Init, it.Min, it.Max, it.Step)
	case KindNumEntry:
		v.AddNumEntry(it.Label, it.Index, it.Init, it.Min, it.Max, it.Step)
	case KindHorizontalBargraph:
		v.AddHorizontalBargraph(it.Label, it.Index, it.Min, it.Max)
	case KindVerticalBargraph:
		v.AddVerticalBargraph(it.Label, it.Index, it.Min, it.Max)
	}
}

func walkChildren(v UI, it *Item) {
	for i := range it.Items {
		walk(v, &it.Items[i])
	}
	v.CloseBox()
}

// Count returns the number of items of the given kind anywhere in the tree.
func (t *Tree) Count(k Kind) int {
	var n int
	var count func(items []Item)
	count = func(items []Item) {
		for i := range items {
			if items[i].Kind == k {
				n++
			}
			count(items[i].Items)
		}
	}
	count(t.Items)
	return n
}
