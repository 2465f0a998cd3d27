package common

import (
	"strings"
	"unicode"
)

// ToPascalCase joins the words of s (split on '_', '-', '.', '/' and spaces)
// with their first letter upper-cased. Example: "my_gain.dsp" -> "MyGainDsp".
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			result.WriteString(strings.ToUpper(string(word[0])))
			if len(word) > 1 {
				result.WriteString(strings.ToLower(word[1:]))
			}
		}
	}

	return result.String()
}

// ToSnakeCase converts PascalCase or camelCase to snake_case, keeping
// acronyms together ("XMLParser" -> "xml_parser").
func ToSnakeCase(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i > 0 && isUpper(c) {
			prevLower := isLower(s[i-1]) || isDigit(s[i-1])
			nextLower := i+1 < len(s) && isLower(s[i+1])
			if prevLower || (nextLower && isUpper(s[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

// IsASCIIIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsASCIIIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', isUpper(c), isLower(c):
		case isDigit(c) && i > 0:
		default:
			return false
		}
	}
	return true
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if isDigit(name[0]) {
		return "Num" + name
	}
	return name
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
