package cmd

import (
	"log/slog"

	"github.com/Alia5/paramgen/internal/codegen/generator"
	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/internal/configpaths"
)

type Generate struct {
	Input       string `arg:"" help:"UI description: faust -json output (.json), .yaml/.yml or .hcl" type:"existingfile"`
	Output      string `short:"o" help:"Destination file of the generated parameter struct" required:"" env:"PARAMGEN_OUTPUT"`
	StructName  string `help:"Name of the generated struct (default: <name>Params)" env:"PARAMGEN_STRUCT_NAME"`
	Target      string `help:"Target plugin framework" default:"rust" enum:"rust" env:"PARAMGEN_TARGET"`
	Precision   int    `help:"Digits after the decimal point of numeric literals" default:"1" env:"PARAMGEN_PRECISION"`
	Header      bool   `help:"Prepend a generated-file notice and the parameter count" env:"PARAMGEN_HEADER"`
	IndexConsts bool   `help:"Append a ParamIndex constant for every parameter" env:"PARAMGEN_INDEX_CONSTS"`
	Double      bool   `help:"Round values as float64, for DSP code compiled with -double" env:"PARAMGEN_DOUBLE"`
	CreateDirs  bool   `help:"Create the output directory when it does not exist" env:"PARAMGEN_CREATE_DIRS"`
	Check       bool   `help:"Do not write; fail when the output file is missing or out of date"`
}

func (g *Generate) options() meta.Options {
	return meta.Options{
		Precision:      g.Precision,
		Header:         g.Header,
		IndexConstants: g.IndexConsts,
		Double:         g.Double,
	}
}

func (g *Generate) request() generator.Request {
	return generator.Request{
		Target:     g.Target,
		Input:      g.Input,
		Output:     g.Output,
		StructName: g.StructName,
	}
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Debug("Starting parameter generation", "input", g.Input, "output", g.Output, "target", g.Target)

	gen := generator.New(logger, g.options())
	if g.Check {
		return gen.Check(g.request())
	}
	if g.CreateDirs {
		if err := configpaths.EnsureDir(g.Output); err != nil {
			return err
		}
	}
	return gen.Generate(g.request())
}
