// Package lang holds the language table for the migration study: the
// canonical language names, the tag text StackOverflow uses when it differs
// from the canonical name, and the tokens used to name output files.
package lang

import (
	"fmt"
	"sort"
	"strings"
)

// Set is an immutable language table. Construct one with New or Default;
// lookups on names outside the set fall back to identity rather than error.
type Set struct {
	names        []string // sorted
	tagOverrides map[string]string
	fileTokens   map[string]string
	canonical    map[string]string // file token -> canonical name
}

// New builds a Set from a list of canonical names plus the tag and filename
// override maps. Names are sorted lexicographically; duplicates are an error.
func New(names []string, tagOverrides, fileTokens map[string]string) (*Set, error) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("duplicate language %q", sorted[i])
		}
	}

	canonical := make(map[string]string, len(fileTokens))
	for name, token := range fileTokens {
		canonical[token] = name
	}

	return &Set{
		names:        sorted,
		tagOverrides: tagOverrides,
		fileTokens:   fileTokens,
		canonical:    canonical,
	}, nil
}

// Default returns the 26-language table used by the study.
// Language list source:
// https://erikbern.com/2017/03/15/the-eigenvector-of-why-we-moved-from-language-x-to-language-y.html
func Default() *Set {
	s, err := New(
		[]string{
			"java", "c", "c++", "c#", "python", "visual basic", "node",
			"perl", "php", "ruby", "go", "swift", "objective c", "cobol",
			"fortran", "lua", "scala", "lisp", "haskell", "rust", "erlang",
			"clojure", "matlab", "pascal", "r", "kotlin",
		},
		map[string]string{
			"visual basic": "vb.net",
			"node":         "node.js",
			"objective c":  "objective-c",
		},
		map[string]string{
			"c#":           "cs",
			"c++":          "cpp",
			"objective c":  "objectivec",
			"visual basic": "visualbasic",
		},
	)
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return s
}

// Names returns the languages in sorted order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of languages in the set.
func (s *Set) Len() int { return len(s.names) }

// Contains reports whether name is one of the canonical languages.
func (s *Set) Contains(name string) bool {
	i := sort.SearchStrings(s.names, name)
	return i < len(s.names) && s.names[i] == name
}

// Tag returns the tag text for a language: the override when one exists,
// the canonical name otherwise.
func (s *Set) Tag(name string) string {
	if tag, ok := s.tagOverrides[name]; ok {
		return tag
	}
	return name
}

// TagLike returns the LIKE pattern that matches the language's tag inside
// the Posts.Tags field, e.g. "%<node.js>%".
func (s *Set) TagLike(name string) string {
	return "%<" + s.Tag(name) + ">%"
}

// TextPattern returns the word-boundary pattern used to find the language
// in post titles and bodies. "c", "r", and "go" collide with ordinary
// English, so they require the phrase "in c" / "in r" / "in go".
func (s *Set) TextPattern(name string) string {
	switch name {
	case "c", "r", "go":
		return `/\bin ` + name + `\b/`
	default:
		return `/\b` + name + `\b/`
	}
}

// Token returns the filename-safe token for a language.
func (s *Set) Token(name string) string {
	if token, ok := s.fileTokens[name]; ok {
		return token
	}
	return name
}

// ColumnToken returns Token with internal spaces removed, suitable for use
// as a SQL column alias.
func (s *Set) ColumnToken(name string) string {
	return strings.ReplaceAll(s.Token(name), " ", "")
}

// FromToken is the inverse of Token: it returns the canonical name for a
// known file token, or the token unchanged.
func (s *Set) FromToken(token string) string {
	if name, ok := s.canonical[token]; ok {
		return name
	}
	return token
}
