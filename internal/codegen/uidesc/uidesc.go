// Package uidesc loads UI description trees written by the DSP compiler (or
// by hand) into ui.Tree values.
//
// Three encodings are understood: the JSON document produced by "faust -json",
// the same document shape in YAML, and an HCL form with one block per widget.
package uidesc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/ui"
)

// Format names a UI description encoding.
type Format string

const (
	FormatFaustJSON Format = "json"
	FormatYAML      Format = "yaml"
	FormatHCL       Format = "hcl"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatFaustJSON, FormatYAML, FormatHCL}
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatFaustJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", cgerrors.NewDescriptionError(path, "", "unrecognised file extension (expected .json, .yaml, .yml or .hcl)")
}

// Load reads and decodes the UI description at path.
func Load(path string) (*ui.Tree, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read UI description: %w", err)
	}
	return Decode(format, data, path)
}

// Decode decodes data in the given format. filename only appears in errors.
func Decode(format Format, data []byte, filename string) (*ui.Tree, error) {
	switch format {
	case FormatFaustJSON:
		return decodeFaustJSON(data, filename)
	case FormatYAML:
		return decodeYAML(data, filename)
	case FormatHCL:
		return decodeHCL(data, filename)
	}
	return nil, cgerrors.NewDescriptionError(filename, "", fmt.Sprintf("unsupported format %q", format))
}

// indexer hands out parameter indices to widgets that do not carry one, in
// traversal order.
type indexer struct {
	next ui.ParamIndex
}

func (ix *indexer) assign(explicit *ui.ParamIndex) ui.ParamIndex {
	ordinal := ix.next
	ix.next++
	if explicit != nil {
		return *explicit
	}
	return ordinal
}
