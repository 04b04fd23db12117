// Package naming holds the identifier rules shared by the spec validator and
// the Go renderer.
package naming

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConstName converts a source label into the constant identifier emitted for
// it. The label is lowercased, one leading '-', '_' or '.' is dropped, and a
// separator ('-', '_', '.' or space) directly before a letter a-z is removed
// and the letter upper-cased. The first rune is upper-cased. Every other rune
// is kept, so "CREATE_FAST" and "create-fast" become "CreateFast", "ÉTAT"
// becomes "État" and "IPV4ADDR" becomes "Ipv4addr".
func ConstName(label string) string {
	rs := []rune(strings.ToLower(label))
	if len(rs) > 0 && isLeadingSeparator(rs[0]) {
		rs = rs[1:]
	}
	if len(rs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteRune(unicode.ToUpper(rs[0]))
	for i := 1; i < len(rs); i++ {
		if isSeparator(rs[i]) && i+1 < len(rs) && 'a' <= rs[i+1] && rs[i+1] <= 'z' {
			b.WriteRune(unicode.ToUpper(rs[i+1]))
			i++
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

func isLeadingSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.'
}

func isSeparator(r rune) bool {
	return isLeadingSeparator(r) || unicode.IsSpace(r)
}

// Receiver returns the single-letter receiver used by generated methods on
// the named type.
func Receiver(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToLower(r))
}

// StringMapVar returns the name of the generated lookup table for the type.
func StringMapVar(name string) string {
	return "strings" + name
}

// IsIdentifier reports whether s is a Go identifier that is not a keyword.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}

// IsExported reports whether s is an identifier starting with an upper-case
// letter.
func IsExported(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
