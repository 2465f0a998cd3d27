package rust

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Alia5/paramgen/internal/codegen/common"
	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
	"github.com/Alia5/paramgen/internal/codegen/meta"
)

// Strict, reserved and edition-specific keywords. None of them may be used as
// a plain field name.
var rustKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "typeof": true, "unsized": true,
	"virtual": true, "yield": true, "try": true, "gen": true,
}

func isRustKeyword(s string) bool {
	return rustKeywords[s]
}

func checkIdentifier(s string) string {
	switch {
	case !common.IsASCIIIdentifier(s):
		return "not a legal identifier"
	case s == "_":
		return "reserved placeholder"
	case isRustKeyword(s):
		return "reserved keyword"
	}
	return ""
}

// FieldName returns the struct field name for a control label.
func FieldName(label string) (string, error) {
	ident := strings.ToLower(label)
	if reason := checkIdentifier(ident); reason != "" {
		return "", cgerrors.NewIllegalIdentifier(label, ident, reason)
	}
	return ident, nil
}

// FieldNames maps every control to its field name, in order. It fails on the
// first illegal identifier or on the first label whose field name was
// already taken by an earlier control.
func FieldNames(controls []meta.Control) ([]string, error) {
	names := make([]string, len(controls))
	owner := make(map[string]string, len(controls))
	for i, c := range controls {
		ident, err := FieldName(c.Label)
		if err != nil {
			return nil, err
		}
		if prev, ok := owner[ident]; ok {
			return nil, cgerrors.NewCollision(c.Label, ident, prev)
		}
		owner[ident] = c.Label
		names[i] = ident
	}
	return names, nil
}

// CheckStructName validates the generated struct's name, which keeps its case.
func CheckStructName(name string) error {
	if reason := checkIdentifier(name); reason != "" {
		return cgerrors.NewIllegalIdentifier(name, name, "struct name is "+reason)
	}
	return nil
}

// IndexConstName returns the name of the ParamIndex constant of a field.
func IndexConstName(field string) string {
	return strings.ToUpper(field) + "_PI"
}

// stringLiteral renders s as a Rust string literal.
func stringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f || r == utf8.RuneError {
				b.WriteString(`\u{` + strconv.FormatInt(int64(r), 16) + `}`)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// floatLiteral formats v with a fixed number of decimals. The result does not
// depend on locale and always contains a decimal point.
func floatLiteral(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
