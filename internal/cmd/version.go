package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Alia5/paramgen/internal/codegen/common"
)

type Version struct {
	JSON bool `help:"Print the version as a JSON object"`

	out io.Writer
}

type versionInfo struct {
	Version string `json:"version"`
	Major   int    `json:"major"`
	Minor   int    `json:"minor"`
	Patch   int    `json:"patch"`
}

// Run is called by Kong when the version command is executed.
func (v *Version) Run() error {
	w := v.out
	if w == nil {
		w = os.Stdout
	}

	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	if !v.JSON {
		_, err = fmt.Fprintf(w, "paramgen %s\n", version)
		return err
	}

	major, minor, patch := common.ParseVersion(version)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(versionInfo{Version: version, Major: major, Minor: minor, Patch: patch})
}
