package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/internal/codegen/meta"
	"github.com/Alia5/paramgen/ui"
)

var gainInput = filepath.Join("..", "codegen", "generator", "testdata", "gain.json")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plugin", "src", "params.rs")
	g := &Generate{
		Input:      gainInput,
		Output:     out,
		StructName: "GainFaustNihPlugParams",
		Target:     "rust",
		Precision:  1,
		CreateDirs: true,
	}
	require.NoError(t, g.Run(testLogger()))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "codegen", "generator", "testdata", "gain_params.rs"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	g.Check = true
	require.NoError(t, g.Run(testLogger()))

	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))
	err = g.Run(testLogger())
	assert.ErrorIs(t, err, cgerrors.ErrStale)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "stale", string(b), "check must never write")
}

func TestGenerateRunWithoutCreateDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "params.rs")
	g := &Generate{Input: gainInput, Output: out, Target: "rust"}

	err := g.Run(testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, cgerrors.ErrOutputIO)
	assert.NoDirExists(t, filepath.Dir(out))
}

func TestGenerateOptions(t *testing.T) {
	g := &Generate{Precision: 3, Header: true, IndexConsts: true, Double: true}
	assert.Equal(t, meta.Options{Precision: 3, Header: true, IndexConstants: true, Double: true}, g.options())
}

func TestPrintControls(t *testing.T) {
	reg := &meta.Registry{
		StructName: "P",
		Controls: []meta.Control{
			{Label: "Gain", Kind: ui.KindHorizontalSlider, Index: 0, Init: 0.5, Min: 0, Max: 1, Step: 0.01},
			{Label: "type", Kind: ui.KindNumEntry, Index: 1, Init: 1, Min: 0, Max: 3, Step: 1},
		},
	}

	t.Run("tab separated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printControls(&buf, reg, false))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "ID\tFIELD\tKIND\tINDEX\tINIT\tMIN\tMAX\tSTEP", lines[0])
		assert.Equal(t, "Gain\tgain\thslider\t0\t0.5\t0\t1\t0.01", lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "type\t!"), lines[2])
		assert.Contains(t, lines[2], "reserved keyword")
	})

	t.Run("aligned", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printControls(&buf, reg, true))
		assert.NotContains(t, buf.String(), "\t")
		assert.Contains(t, buf.String(), "hslider")
	})
}

func TestInspectRun(t *testing.T) {
	var buf bytes.Buffer
	i := &Inspect{Input: gainInput, out: &buf}
	require.NoError(t, i.Run(testLogger()))

	out := buf.String()
	assert.Contains(t, out, "input_gain\tinput_gain\tvslider\t0\t")
	assert.Contains(t, out, "GainParams: 9 params")
}

func TestIgnoredCounts(t *testing.T) {
	tree := &ui.Tree{Items: []ui.Item{
		{Kind: ui.KindTabGroup, Label: "strip", Items: []ui.Item{
			{Kind: ui.KindHorizontalGroup, Label: "in", Items: []ui.Item{
				{Kind: ui.KindCheckbox, Label: "bypass"},
				{Kind: ui.KindHorizontalSlider, Label: "drive"},
				{Kind: ui.KindHorizontalBargraph, Label: "in_level"},
			}},
			{Kind: ui.KindVerticalGroup, Label: "out", Items: []ui.Item{
				{Kind: ui.KindButton, Label: "reset"},
				{Kind: ui.KindNumEntry, Label: "ceiling"},
				{Kind: ui.KindVerticalBargraph, Label: "gr"},
			}},
		}},
	}}

	toggles, bargraphs := ignoredCounts(tree)
	assert.Equal(t, 2, toggles)
	assert.Equal(t, 2, bargraphs)
}

func TestConfigInit(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "paramgen.yaml")
	c := &ConfigInit{Command: "generate", Format: "yml", Output: dest}
	require.NoError(t, c.Run())

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, yaml.Unmarshal(b, &root))

	assert.NotContains(t, root, "input")
	assert.Equal(t, "rust", root["target"])
	assert.Equal(t, 1, root["precision"])
	assert.Equal(t, "", root["struct_name"])
	assert.Equal(t, false, root["index_consts"])
	require.Contains(t, root, "log")
	assert.Equal(t, map[string]any{"level": "info", "format": "auto", "file": ""}, root["log"])

	assert.Error(t, c.Run(), "existing file without --force")
	c.Force = true
	assert.NoError(t, c.Run())
}

func TestDefaultValueForField(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		def  string
		want any
	}{
		{"string", reflect.TypeOf(""), "rust", "rust"},
		{"empty string", reflect.TypeOf(""), "", ""},
		{"bool", reflect.TypeOf(false), "true", true},
		{"unset bool", reflect.TypeOf(false), "", false},
		{"int", reflect.TypeOf(0), "1", 1},
		{"unset int", reflect.TypeOf(0), "", 0},
		{"unsupported kind", reflect.TypeOf(0.5), "0.5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultValueForField(tt.typ, tt.def))
		})
	}
}

func TestConfigInitRejectsUnknownFormat(t *testing.T) {
	c := &ConfigInit{Command: "generate", Format: "ini", Output: filepath.Join(t.TempDir(), "x.ini")}
	assert.Error(t, c.Run())
}

func TestVersionRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Version{out: &buf}).Run())
	assert.Equal(t, "paramgen 0.0.1-dev\n", buf.String())

	buf.Reset()
	require.NoError(t, (&Version{JSON: true, out: &buf}).Run())
	var info versionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, versionInfo{Version: "0.0.1-dev", Major: 0, Minor: 0, Patch: 1}, info)
}
