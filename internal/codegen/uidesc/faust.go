package uidesc

import (
	"bytes"
	"encoding/json"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/ui"
)

func decodeFaustJSON(data []byte, filename string) (*ui.Tree, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, cgerrors.NewDescriptionError(filename, "", err.Error())
	}
	c := converter{file: filename, ignoreIndex: true}
	return c.tree(&doc)
}
