package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Alia5/paramgen/internal/codegen/collector"
	"github.com/Alia5/paramgen/internal/codegen/common"
	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/internal/codegen/generator/rust"
	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/internal/codegen/uidesc"
	"github.com/Alia5/paramgen/ui"
)

// LanguageGenerator renders a registry as source text for one plugin host.
type LanguageGenerator func(reg *meta.Registry, opts meta.Options) ([]byte, error)

var generators = map[string]LanguageGenerator{
	"rust": rust.Render,
}

// Targets returns the supported target names, sorted.
func Targets() []string {
	out := make([]string, 0, len(generators))
	for k := range generators {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Generator struct {
	logger *slog.Logger
	opts   meta.Options
}

func New(logger *slog.Logger, opts meta.Options) *Generator {
	return &Generator{
		logger: logger,
		opts:   opts,
	}
}

// Request describes one generation pass from a UI description file.
type Request struct {
	Target     string
	Input      string
	Output     string
	StructName string // derived from the description when empty
}

// Generate loads the description, renders it and writes the output file.
func (g *Generator) Generate(req Request) error {
	content, err := g.render(req)
	if err != nil {
		return err
	}
	return g.Write(req.Output, content)
}

// Check renders the description and fails with ErrStale when the output file
// does not already hold exactly that content.
func (g *Generator) Check(req Request) error {
	content, err := g.render(req)
	if err != nil {
		return err
	}
	same, err := common.Matches(req.Output, content)
	if err != nil {
		return err
	}
	if !same {
		return fmt.Errorf("%s: %w", req.Output, cgerrors.ErrStale)
	}
	g.logger.Info("Parameter file up to date", "file", req.Output)
	return nil
}

func (g *Generator) render(req Request) ([]byte, error) {
	g.logger.Debug("Loading UI description", "file", req.Input)
	tree, err := uidesc.Load(req.Input)
	if err != nil {
		return nil, err
	}

	structName := req.StructName
	if structName == "" {
		structName = DefaultStructName(tree, req.Input)
		g.logger.Debug("Derived struct name", "struct", structName)
	}
	return g.Render(req.Target, tree, structName)
}

// Render drives a collector through b and renders the result for target.
func (g *Generator) Render(target string, b ui.Builder, structName string) ([]byte, error) {
	gen, ok := generators[target]
	if !ok {
		return nil, fmt.Errorf("%w '%s' (supported: %v)", cgerrors.ErrUnknownTarget, target, Targets())
	}

	reg := g.Collect(b, structName)
	content, err := gen(reg, g.opts)
	if err != nil {
		return nil, fmt.Errorf("render %s parameters: %w", target, err)
	}
	return content, nil
}

// Collect runs one traversal and reports what was found.
func (g *Generator) Collect(b ui.Builder, structName string) *meta.Registry {
	reg := collector.Collect(b, structName)
	for _, c := range reg.Controls {
		if !c.InRange() {
			g.logger.Warn("Default value outside of range, emitting unchanged",
				"label", c.Label, "init", c.Init, "min", c.Min, "max", c.Max)
		}
	}
	g.logger.Info("Collected parameters", "struct", structName, "count", len(reg.Controls))
	return reg
}

// Write stores content at path in one atomic step.
func (g *Generator) Write(path string, content []byte) error {
	written, err := common.WriteFileAtomic(path, content, 0o644)
	if err != nil {
		return err
	}
	if !written {
		g.logger.Info("Parameter file unchanged", "file", path)
		return nil
	}
	g.logger.Info("Generated parameter file", "file", path, "bytes", len(content), "blake2b", common.Digest(content)[:16])
	return nil
}

// DefaultStructName derives "<Name>Params" from the description's name, or
// from the input file name when the description is anonymous.
func DefaultStructName(tree *ui.Tree, input string) string {
	base := tree.Name
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	return common.SanitizeLeadingDigit(common.ToPascalCase(base) + "Params")
}
