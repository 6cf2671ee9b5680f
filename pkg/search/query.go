package search

import (
	"strings"
	"unicode/utf8"
)

// minPrefixLength mirrors the RediSearch MINPREFIX default; shorter prefixes are rejected.
const minPrefixLength = 2

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`.`, `\.`,
	`/`, `\/`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`:`, `\:`,
	`&`, `\&`,
	`#`, `\#`,
	`+`, `\+`,
)

// words lower-cases the query and splits it on whitespace.
func words(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// autocompleteQuery matches every word as a prefix or within two edits on name, city and state.
func autocompleteQuery(query string) string {
	terms := make([]string, 0)

	for _, word := range words(query) {
		escaped := queryEscaper.Replace(word)

		if utf8.RuneCountInString(word) < minPrefixLength {
			terms = append(terms, "%%"+escaped+"%%")

			continue
		}

		terms = append(terms, "("+escaped+"*|%%"+escaped+"%%)")
	}

	if len(terms) == 0 {
		return ""
	}

	return "@name|city|state:(" + strings.Join(terms, " ") + ")"
}

// searchQuery matches every word exactly, as a prefix or within one edit on all text fields.
func searchQuery(query string) string {
	terms := make([]string, 0)

	for _, word := range words(query) {
		escaped := queryEscaper.Replace(word)

		if utf8.RuneCountInString(word) < minPrefixLength {
			terms = append(terms, escaped)

			continue
		}

		terms = append(terms, "("+escaped+"|"+escaped+"*|%"+escaped+"%)")
	}

	return strings.Join(terms, " ")
}
