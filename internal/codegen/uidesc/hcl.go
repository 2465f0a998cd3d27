package uidesc

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/ui"
)

// An HCL description looks like:
//
//	name = "comp"
//	meta = { author = "me" }
//
//	vgroup "comp" {
//	  vslider "thresh" {
//	    init = -1
//	    min  = -30
//	    max  = 0
//	    step = 0.1
//	    meta = { unit = "dB" }
//	  }
//	  checkbox "bypass" {}
//	}
//
// Blocks are visited in source order. Annotations within one meta object are
// ordered by key.

func widgetBlocks() []hcl.BlockHeaderSchema {
	kinds := ui.Kinds()
	out := make([]hcl.BlockHeaderSchema, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, hcl.BlockHeaderSchema{Type: k.String(), LabelNames: []string{"label"}})
	}
	return out
}

var (
	rootSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "name"}, {Name: "meta"}},
		Blocks:     widgetBlocks(),
	}
	groupSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "meta"}},
		Blocks:     widgetBlocks(),
	}
	controlSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "index"}, {Name: "init"}, {Name: "min"}, {Name: "max"}, {Name: "step"}, {Name: "meta"},
		},
	}
)

type hclDecoder struct {
	file string
	ix   indexer
}

func decodeHCL(data []byte, filename string) (*ui.Tree, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, cgerrors.NewDescriptionError(filename, "", diags.Error())
	}
	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, cgerrors.NewDescriptionError(filename, "", diags.Error())
	}

	d := &hclDecoder{file: filename}
	tree := &ui.Tree{}
	if attr, ok := content.Attributes["name"]; ok {
		v, err := d.value(attr, cty.String)
		if err != nil {
			return nil, err
		}
		tree.Name = v.AsString()
	}
	var err error
	if tree.Meta, err = d.meta(content.Attributes); err != nil {
		return nil, err
	}
	if tree.Items, err = d.blocks(content.Blocks); err != nil {
		return nil, err
	}
	return tree, nil
}

func (d *hclDecoder) blocks(blocks hcl.Blocks) ([]ui.Item, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	out := make([]ui.Item, 0, len(blocks))
	for _, b := range blocks {
		it, err := d.block(b)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (d *hclDecoder) block(b *hcl.Block) (ui.Item, error) {
	kind, err := ui.ParseKind(b.Type)
	if err != nil {
		return ui.Item{}, d.errorf(b.DefRange, "%v", err)
	}
	out := ui.Item{Kind: kind, Label: b.Labels[0]}

	if kind.IsGroup() {
		content, diags := b.Body.Content(groupSchema)
		if diags.HasErrors() {
			return ui.Item{}, cgerrors.NewDescriptionError(d.file, "", diags.Error())
		}
		out.Index = ui.NoParam
		if out.Meta, err = d.meta(content.Attributes); err != nil {
			return ui.Item{}, err
		}
		out.Items, err = d.blocks(content.Blocks)
		return out, err
	}

	content, diags := b.Body.Content(controlSchema)
	if diags.HasErrors() {
		return ui.Item{}, cgerrors.NewDescriptionError(d.file, "", diags.Error())
	}
	if out.Meta, err = d.meta(content.Attributes); err != nil {
		return ui.Item{}, err
	}

	var explicit *ui.ParamIndex
	if attr, ok := content.Attributes["index"]; ok {
		v, err := d.value(attr, cty.Number)
		if err != nil {
			return ui.Item{}, err
		}
		var idx int32
		if err := gocty.FromCtyValue(v, &idx); err != nil || idx < 0 {
			return ui.Item{}, d.errorf(attr.Range, "index must be a non-negative whole number")
		}
		p := ui.ParamIndex(idx)
		explicit = &p
	}
	out.Index = d.ix.assign(explicit)

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"init", &out.Init},
		{"min", &out.Min},
		{"max", &out.Max},
		{"step", &out.Step},
	} {
		attr, ok := content.Attributes[f.name]
		if !ok {
			continue
		}
		v, err := d.value(attr, cty.Number)
		if err != nil {
			return ui.Item{}, err
		}
		if err := gocty.FromCtyValue(v, f.dst); err != nil {
			return ui.Item{}, d.errorf(attr.Range, "%s: %v", f.name, err)
		}
	}
	return out, nil
}

func (d *hclDecoder) meta(attrs hcl.Attributes) ([]ui.Meta, error) {
	attr, ok := attrs["meta"]
	if !ok {
		return nil, nil
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, cgerrors.NewDescriptionError(d.file, "", diags.Error())
	}
	if v.IsNull() || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return nil, d.errorf(attr.Range, "meta must be an object of strings")
	}

	var out []ui.Meta
	it := v.ElementIterator()
	for it.Next() {
		k, ev := it.Element()
		sv, err := convert.Convert(ev, cty.String)
		if err != nil || sv.IsNull() {
			return nil, d.errorf(attr.Range, "meta %q must be a string", k.AsString())
		}
		out = append(out, ui.Meta{Key: k.AsString(), Value: sv.AsString()})
	}
	return out, nil
}

// value evaluates a constant attribute and converts it to want.
func (d *hclDecoder) value(attr *hcl.Attribute, want cty.Type) (cty.Value, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, cgerrors.NewDescriptionError(d.file, "", diags.Error())
	}
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, d.errorf(attr.Range, "%s must be set to a constant value", attr.Name)
	}
	v, err := convert.Convert(v, want)
	if err != nil {
		return cty.NilVal, d.errorf(attr.Range, "%s: %v", attr.Name, err)
	}
	return v, nil
}

func (d *hclDecoder) errorf(rng hcl.Range, format string, args ...any) error {
	return cgerrors.NewDescriptionError("", rng.String(), fmt.Sprintf(format, args...))
}
