package uidesc

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/ui"
)

// document mirrors the "faust -json" layout. Unknown top-level keys (inputs,
// outputs, compile_options, ...) are ignored.
type document struct {
	Name string   `json:"name" yaml:"name"`
	Meta metaList `json:"meta" yaml:"meta"`
	UI   []item   `json:"ui" yaml:"ui"`
}

type item struct {
	Type  string   `json:"type" yaml:"type"`
	Label string   `json:"label" yaml:"label"`
	Index *number  `json:"index" yaml:"index"`
	Init  *number  `json:"init" yaml:"init"`
	Min   *number  `json:"min" yaml:"min"`
	Max   *number  `json:"max" yaml:"max"`
	Step  *number  `json:"step" yaml:"step"`
	Meta  metaList `json:"meta" yaml:"meta"`
	Items []item   `json:"items" yaml:"items"`
}

// number accepts both numeric and quoted values; older Faust releases quote
// every number in their JSON output.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", string(b))
	}
	*n = number(f)
	return nil
}

func (n *number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
	}
	*n = number(f)
	return nil
}

// metaList keeps annotations in declaration order. Faust writes them as a list
// of single-key objects; YAML documents may also use a plain mapping.
type metaList []ui.Meta

func (m *metaList) UnmarshalJSON(b []byte) error {
	var entries []map[string]string
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("meta: %w", err)
	}
	*m = fromEntries(entries)
	return nil
}

func (m *metaList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(metaList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			out = append(out, ui.Meta{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
		}
		*m = out
		return nil
	case yaml.SequenceNode:
		var entries []map[string]string
		if err := node.Decode(&entries); err != nil {
			return err
		}
		*m = fromEntries(entries)
		return nil
	}
	return fmt.Errorf("line %d: meta must be a mapping or a list of mappings", node.Line)
}

func fromEntries(entries []map[string]string) metaList {
	var out metaList
	for _, e := range entries {
		keys := make([]string, 0, len(e))
		for k := range e {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, ui.Meta{Key: k, Value: e[k]})
		}
	}
	return out
}

type converter struct {
	file string
	// ignoreIndex drops "index" fields; in Faust JSON they are memory
	// offsets rather than parameter positions.
	ignoreIndex bool
	ix          indexer
}

func (c *converter) tree(d *document) (*ui.Tree, error) {
	items, err := c.items(d.UI, "ui")
	if err != nil {
		return nil, err
	}
	return &ui.Tree{Name: d.Name, Meta: d.Meta, Items: items}, nil
}

func (c *converter) items(in []item, path string) ([]ui.Item, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]ui.Item, 0, len(in))
	for i := range in {
		it, err := c.item(&in[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (c *converter) item(in *item, path string) (ui.Item, error) {
	kind, err := ui.ParseKind(in.Type)
	if err != nil {
		return ui.Item{}, cgerrors.NewDescriptionError(c.file, path, err.Error())
	}
	out := ui.Item{Kind: kind, Label: in.Label, Meta: in.Meta}

	if kind.IsGroup() {
		out.Index = ui.NoParam
		out.Items, err = c.items(in.Items, path+".items")
		return out, err
	}
	if len(in.Items) > 0 {
		return ui.Item{}, cgerrors.NewDescriptionError(c.file, path, fmt.Sprintf("%s %q cannot contain items", kind, in.Label))
	}

	var explicit *ui.ParamIndex
	if in.Index != nil && !c.ignoreIndex {
		idx, err := toParamIndex(float64(*in.Index))
		if err != nil {
			return ui.Item{}, cgerrors.NewDescriptionError(c.file, path, err.Error())
		}
		explicit = &idx
	}
	out.Index = c.ix.assign(explicit)
	out.Init = in.Init.value()
	out.Min = in.Min.value()
	out.Max = in.Max.value()
	out.Step = in.Step.value()
	return out, nil
}

func (n *number) value() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

func toParamIndex(f float64) (ui.ParamIndex, error) {
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("index %v is not a valid parameter index", f)
	}
	return ui.ParamIndex(f), nil
}
