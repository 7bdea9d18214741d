// Package literal extracts required literal prefixes from a parsed
// pattern for prefilter optimization.
//
// A pattern like `abc|def` can only match at positions where "abc" or
// "def" occurs, so an unanchored scan can skip straight to those
// positions with a fast multi-substring search instead of attempting the
// full engine everywhere.
//
// Extraction is conservative: when a node cannot contribute a required
// prefix (wildcards, assertions, zero-or-more repetition), the literals
// gathered so far are downgraded to incomplete prefixes, and a pattern
// with no usable prefix yields no sequence at all.
package literal

// Literal is a required prefix of a potential match. Complete reports
// whether the literal covers the entire pattern (true) or only a prefix
// of it (false).
type Literal struct {
	Str      string
	Complete bool
}

// Seq is a set of alternative required prefixes: every match of the
// pattern starts with one of them.
type Seq struct {
	Lits []Literal
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Lits)
}

// IsEmpty reports whether the sequence carries no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Strings returns the literal texts in order.
func (s *Seq) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.Lits))
	for i, l := range s.Lits {
		out[i] = l.Str
	}
	return out
}

// AllComplete reports whether every literal covers the entire pattern,
// i.e. matching a literal alone proves a match with no engine run.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.Lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// markIncomplete downgrades every literal to a prefix-only literal.
func (s *Seq) markIncomplete() {
	for i := range s.Lits {
		s.Lits[i].Complete = false
	}
}
