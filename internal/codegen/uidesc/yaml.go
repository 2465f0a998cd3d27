package uidesc

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/ui"
)

func decodeYAML(data []byte, filename string) (*ui.Tree, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, cgerrors.NewDescriptionError(filename, "", err.Error())
	}
	c := converter{file: filename}
	return c.tree(&doc)
}
