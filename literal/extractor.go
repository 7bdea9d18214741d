package literal

import "github.com/coregx/regexvm/syntax"

// Config bounds literal extraction.
//
// MaxLiterals prevents memory bloat from wide alternations and cross
// products; MaxLiteralLen keeps individual literals short enough for good
// prefilter cache locality.
type Config struct {
	MaxLiterals   int
	MaxLiteralLen int
}

// DefaultConfig returns extraction limits tuned for typical patterns.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extract returns the required prefix literals of the pattern using
// default limits, or nil when the pattern admits no usable prefilter
// (e.g. it can match starting with any character).
func Extract(re *syntax.Regexp) *Seq {
	return NewExtractor(DefaultConfig()).Extract(re)
}

// Extractor extracts literal prefixes under configured limits.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor with the given limits.
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the required prefix literals of re, or nil when no
// usable set exists. A returned sequence never contains an empty literal.
func (x *Extractor) Extract(re *syntax.Regexp) *Seq {
	seq := x.prefixes(re)
	if seq == nil {
		return nil
	}
	for _, l := range seq.Lits {
		if l.Str == "" {
			// An empty required prefix matches everywhere; the
			// prefilter would be pure overhead.
			return nil
		}
	}
	if seq.IsEmpty() {
		return nil
	}
	return seq
}

// prefixes walks the AST. A nil return means "no required prefix here".
func (x *Extractor) prefixes(re *syntax.Regexp) *Seq {
	switch re.Op {
	case syntax.OpChar:
		return &Seq{Lits: []Literal{{Str: string(re.Rune), Complete: true}}}

	case syntax.OpConcat:
		return x.concatPrefixes(re.Sub)

	case syntax.OpAlternate:
		left := x.prefixes(re.Sub[0])
		right := x.prefixes(re.Sub[1])
		if left == nil || right == nil {
			return nil
		}
		if left.Len()+right.Len() > x.config.MaxLiterals {
			return nil
		}
		return &Seq{Lits: append(left.Lits, right.Lits...)}

	case syntax.OpPlus:
		// One iteration is mandatory, so the body's prefixes are required,
		// but further iterations may follow: never complete.
		seq := x.prefixes(re.Sub[0])
		if seq != nil {
			seq.markIncomplete()
		}
		return seq

	default:
		// OpStar and OpQuest can match empty, OpAnyChar matches anything,
		// and assertions contribute no text.
		return nil
	}
}

// concatPrefixes builds the cross product of consecutive children's
// prefixes for as long as every literal so far is complete.
func (x *Extractor) concatPrefixes(subs []*syntax.Regexp) *Seq {
	cur := &Seq{Lits: []Literal{{Str: "", Complete: true}}}
	for _, sub := range subs {
		if !cur.AllComplete() {
			return cur
		}
		next := x.prefixes(sub)
		if next == nil {
			cur.markIncomplete()
			return cur
		}
		if cur.Len()*next.Len() > x.config.MaxLiterals {
			cur.markIncomplete()
			return cur
		}
		product := make([]Literal, 0, cur.Len()*next.Len())
		for _, a := range cur.Lits {
			for _, b := range next.Lits {
				lit := Literal{Str: a.Str + b.Str, Complete: b.Complete}
				if len(lit.Str) > x.config.MaxLiteralLen {
					lit.Str = lit.Str[:x.config.MaxLiteralLen]
					lit.Complete = false
				}
				product = append(product, lit)
			}
		}
		cur = &Seq{Lits: product}
	}
	return cur
}
