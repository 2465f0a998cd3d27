package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/paramgen/internal/codegen/common"
)

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"gain":        "Gain",
		"my_gain":     "MyGain",
		"comp-stereo": "CompStereo",
		"gain.dsp":    "GainDsp",
		"LOUD limit":  "LoudLimit",
	}
	for in, want := range tests {
		assert.Equal(t, want, common.ToPascalCase(in), "input %q", in)
	}
}

func TestIsASCIIIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"input_gain", true},
		{"_private", true},
		{"Gain2", true},
		{"", false},
		{"2band", false},
		{"with space", false},
		{"dash-ed", false},
		{"gaïn", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, common.IsASCIIIdentifier(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeLeadingDigit(t *testing.T) {
	assert.Equal(t, "Num2band", common.SanitizeLeadingDigit("2band"))
	assert.Equal(t, "Band", common.SanitizeLeadingDigit("Band"))
	assert.Equal(t, "", common.SanitizeLeadingDigit(""))
}

func TestGetVersion(t *testing.T) {
	orig := common.Version
	defer func() { common.Version = orig }()

	common.Version = ""
	v, err := common.GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	common.Version = "v1.4.2-dirty"
	v, err = common.GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.2-dirty", v)

	major, minor, patch := common.ParseVersion(v)
	assert.Equal(t, []int{1, 4, 2}, []int{major, minor, patch})

	common.Version = "bogus"
	_, err = common.GetVersion()
	assert.Error(t, err)
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"StructName":  "struct_name",
		"IndexConsts": "index_consts",
		"XMLParser":   "xml_parser",
		"already_ok":  "already_ok",
	}
	for in, want := range tests {
		assert.Equal(t, want, common.ToSnakeCase(in), "input %q", in)
	}
}
