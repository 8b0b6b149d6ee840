package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: CamelCase and
// separator-delimited words are lowercased and joined.
//
//	NormalizeIdent("HTTPServer") == "httpserver"
//	NormalizeIdent("http_server") == "httpserver"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words.
//
//	TokenizeIdent("XMLParser") == []string{"xml", "parser"}
//	TokenizeIdent("getHTTPResponse") == []string{"get", "http", "response"}
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}
	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports whether runes[i] begins a new CamelCase word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	// end of an acronym: "XMLParser" splits before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
