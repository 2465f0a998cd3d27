// Package rust renders a parameter registry as a nih-plug Params struct with
// a matching Default implementation.
package rust

import (
	"bytes"
	"fmt"
	"math"
	"text/template"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/ui"
)

const paramsTemplate = `{{if .Header}}// Code generated by paramgen. DO NOT EDIT.
{{end}}{{if .IndexConstants}}use faust_types::ParamIndex;
{{end}}#[derive(Params)]
struct {{.StructName}} {
{{if .Header}}// nr of params: {{len .Fields}}
{{end}}{{range .Fields}}    #[id = {{.ID}}]
    {{.Name}}: FloatParam{{.Sep}}
{{end}}}

impl Default for {{.StructName}} {
    fn default() -> Self {
        Self {
{{range .Fields}}            {{.Name}}: FloatParam::new({{.ID}}, {{.Init}}, FloatRange::Linear { min: {{.Min}}, max: {{.Max}}}){{.Sep}}
{{end}}        }
    }
}
{{if .IndexConstants}}
{{range .Fields}}pub const {{.IndexConst}}: ParamIndex = ParamIndex({{.Index}});
{{end}}{{end}}`

type paramField struct {
	ID         string
	Name       string
	Init       string
	Min        string
	Max        string
	Sep        string
	IndexConst string
	Index      ui.ParamIndex
}

type paramsData struct {
	StructName     string
	Header         bool
	IndexConstants bool
	Fields         []paramField
}

// Render returns the source text for reg. Output is a pure function of its
// arguments. Field declarations and default values follow the registry
// order. Nothing is rendered when a label or the struct name cannot become
// an identifier, or when a range is not finite.
func Render(reg *meta.Registry, opts meta.Options) ([]byte, error) {
	if err := CheckStructName(reg.StructName); err != nil {
		return nil, err
	}
	names, err := FieldNames(reg.Controls)
	if err != nil {
		return nil, err
	}

	precision := opts.EffectivePrecision()
	fields := make([]paramField, len(reg.Controls))
	for i, c := range reg.Controls {
		if !opts.Double {
			c = singlePrecision(c)
		}
		if err := checkFinite(c); err != nil {
			return nil, err
		}
		sep := ","
		if i == len(reg.Controls)-1 {
			sep = ""
		}
		fields[i] = paramField{
			ID:         stringLiteral(c.Label),
			Name:       names[i],
			Init:       floatLiteral(c.Init, precision),
			Min:        floatLiteral(c.Min, precision),
			Max:        floatLiteral(c.Max, precision),
			Sep:        sep,
			IndexConst: IndexConstName(names[i]),
			Index:      c.Index,
		}
	}

	data := paramsData{
		StructName:     reg.StructName,
		Header:         opts.Header,
		IndexConstants: opts.IndexConstants,
		Fields:         fields,
	}

	tmpl, err := template.New("params").Parse(paramsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// singlePrecision narrows the emitted values to float32 so that rounding
// happens on the value the DSP actually stores.
func singlePrecision(c meta.Control) meta.Control {
	c.Init = float64(float32(c.Init))
	c.Min = float64(float32(c.Min))
	c.Max = float64(float32(c.Max))
	return c
}

func checkFinite(c meta.Control) error {
	for _, v := range []struct {
		field string
		value float64
	}{
		{"init", c.Init},
		{"min", c.Min},
		{"max", c.Max},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return cgerrors.NewContractViolation(c.Label, v.field, v.value)
		}
	}
	return nil
}
