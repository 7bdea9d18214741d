// Package prefilter accelerates unanchored scanning by locating candidate
// match positions with fast substring search before the regex engine runs.
//
// A prefilter is built from the required prefix literals of a pattern:
// a single literal uses the standard library's substring search, while a
// set of alternatives uses an Aho-Corasick automaton. Candidates are
// byte offsets; the engine still verifies every candidate, so a
// prefilter can only skip work, never change results.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexvm/literal"
)

// Prefilter locates candidate match start positions in a haystack.
type Prefilter interface {
	// Next returns the byte offset of the first candidate at or after
	// `at`, or -1 if there are none.
	Next(haystack []byte, at int) int
}

// FromSeq builds a prefilter for the given literal sequence.
// Returns nil when the sequence is empty or the automaton cannot be
// built; a nil prefilter means every position is a candidate.
func FromSeq(seq *literal.Seq) Prefilter {
	switch seq.Len() {
	case 0:
		return nil
	case 1:
		return &substringFilter{needle: []byte(seq.Lits[0].Str)}
	default:
		builder := ahocorasick.NewBuilder()
		for _, lit := range seq.Lits {
			builder.AddPattern([]byte(lit.Str))
		}
		auto, err := builder.Build()
		if err != nil {
			return nil
		}
		return &ahoFilter{auto: auto}
	}
}

// substringFilter finds candidates for a single required literal.
type substringFilter struct {
	needle []byte
}

func (f *substringFilter) Next(haystack []byte, at int) int {
	if at < 0 || at > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[at:], f.needle)
	if i < 0 {
		return -1
	}
	return at + i
}

// ahoFilter finds candidates for a set of alternative literals with an
// Aho-Corasick automaton (O(n) multi-pattern matching).
type ahoFilter struct {
	auto *ahocorasick.Automaton
}

func (f *ahoFilter) Next(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	m := f.auto.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
