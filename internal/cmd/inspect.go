package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Alia5/paramgen/internal/codegen/collector"
	"github.com/Alia5/paramgen/internal/codegen/generator"
	"github.com/Alia5/paramgen/internal/codegen/generator/rust"
	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/internal/codegen/uidesc"
	"github.com/Alia5/paramgen/internal/log"
	"github.com/Alia5/paramgen/ui"
)

type Inspect struct {
	Input string `arg:"" help:"UI description: faust -json output (.json), .yaml/.yml or .hcl" type:"existingfile"`

	out io.Writer
}

// Run is called by Kong when the inspect command is executed.
func (i *Inspect) Run(logger *slog.Logger) error {
	tree, err := uidesc.Load(i.Input)
	if err != nil {
		return err
	}
	structName := generator.DefaultStructName(tree, i.Input)
	reg := collector.Collect(tree, structName)
	logger.Debug("Inspected UI description", "file", i.Input, "struct", structName, "params", len(reg.Controls))

	w := i.out
	aligned := false
	if w == nil {
		w = os.Stdout
		aligned = log.IsTerminal(os.Stdout)
	}
	if err := printControls(w, reg, aligned); err != nil {
		return err
	}
	toggles, bargraphs := ignoredCounts(tree)
	_, err = fmt.Fprintf(w, "\n%s: %d params; ignored %d buttons/checkboxes, %d bargraphs\n",
		reg.StructName, len(reg.Controls), toggles, bargraphs)
	return err
}

// ignoredCounts tallies the widgets that never become parameters.
func ignoredCounts(tree *ui.Tree) (toggles, bargraphs int) {
	for _, k := range ui.Kinds() {
		switch {
		case k.IsGroup(), k.IsNumeric():
		case k.IsBargraph():
			bargraphs += tree.Count(k)
		default:
			toggles += tree.Count(k)
		}
	}
	return toggles, bargraphs
}

// printControls writes one row per control. Aligned output is meant for
// humans; otherwise columns are separated by a single tab.
func printControls(w io.Writer, reg *meta.Registry, aligned bool) error {
	out := w
	var tw *tabwriter.Writer
	if aligned {
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		out = tw
	}

	if _, err := fmt.Fprintln(out, "ID\tFIELD\tKIND\tINDEX\tINIT\tMIN\tMAX\tSTEP"); err != nil {
		return err
	}
	for _, c := range reg.Controls {
		field, err := rust.FieldName(c.Label)
		if err != nil {
			field = "!" + err.Error()
		}
		_, err = fmt.Fprintf(out, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			c.Label, field, c.Kind, c.Index,
			formatNumber(c.Init), formatNumber(c.Min), formatNumber(c.Max), formatNumber(c.Step),
		)
		if err != nil {
			return err
		}
	}
	if tw != nil {
		return tw.Flush()
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
