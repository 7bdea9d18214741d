// Package regexvm is a bytecode-VM regular-expression engine for a
// restricted dialect.
//
// A pattern is parsed into an AST, lowered into a flat instruction
// program for a small virtual machine, and evaluated against an input
// with either of two interchangeable strategies: recursive depth-first
// backtracking or breadth-first thread simulation. Both strategies
// return identical results for every well-formed program.
//
// The dialect supports literals, `.`, the `^`/`$` whole-input
// assertions, `+` `*` `?`, alternation and grouping. Character classes,
// captures and lazy quantifiers are not supported.
//
// Basic usage:
//
//	ok, err := regexvm.Match("abc|(de|cd)+", "decddede", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ok) // true
//
// Compile once, match many:
//
//	re := regexvm.MustCompile("(ab|cd)+")
//	ok, _ := re.Match("abcd", true)
//
// Matching is anchored at position 0 with prefix semantics: input
// remaining after the program accepts is ignored. Use Search for an
// unanchored scan over all start positions.
package regexvm

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/coregx/regexvm/literal"
	"github.com/coregx/regexvm/prefilter"
	"github.com/coregx/regexvm/syntax"
	"github.com/coregx/regexvm/vm"
)

// Regex is a compiled pattern. The program is produced once per pattern
// and may be evaluated against arbitrarily many inputs.
//
// A Regex is safe for concurrent use except for SetDedupThreads.
type Regex struct {
	pattern string
	ast     *syntax.Regexp
	prog    vm.Program

	backtracker *vm.Backtracker
	threadVM    *vm.ThreadVM

	// filter narrows unanchored scans to candidate positions; nil when
	// the pattern admits no useful required prefix.
	filter prefilter.Prefilter

	// headAnchored is true when every path through the pattern starts
	// with `^`, so unanchored scanning can stop after position 0.
	headAnchored bool
}

// Compile parses a pattern and lowers it into a VM program.
func Compile(pattern string) (*Regex, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexvm: parse %q: %w", pattern, err)
	}
	prog, err := vm.Compile(ast)
	if err != nil {
		return nil, fmt.Errorf("regexvm: compile %q: %w", pattern, err)
	}
	return &Regex{
		pattern:      pattern,
		ast:          ast,
		prog:         prog,
		backtracker:  vm.NewBacktracker(prog),
		threadVM:     vm.NewThreadVM(prog),
		filter:       prefilter.FromSeq(literal.Extract(ast)),
		headAnchored: headIsBegin(ast),
	}, nil
}

// MustCompile is like Compile but panics on error. Useful for patterns
// known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err.Error())
	}
	return re
}

// Pattern returns the source text the Regex was compiled from.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Program returns a copy of the compiled instruction sequence.
func (r *Regex) Program() vm.Program {
	prog := make(vm.Program, len(r.prog))
	copy(prog, r.prog)
	return prog
}

// SetDedupThreads enables (pc, sp) deduplication in the breadth-first
// engine, bounding live threads for patterns with heavy nested
// repetition. Results are unchanged.
// Not safe to call concurrently with matching.
func (r *Regex) SetDedupThreads(on bool) {
	r.threadVM.DedupThreads = on
}

// Match reports whether the pattern matches a prefix of input starting
// at position 0. depthFirst selects recursive backtracking (true) or
// breadth-first thread simulation (false).
func (r *Regex) Match(input string, depthFirst bool) (bool, error) {
	return r.MatchRunes([]rune(input), depthFirst)
}

// MatchRunes is like Match for a pre-decoded rune sequence.
func (r *Regex) MatchRunes(input []rune, depthFirst bool) (bool, error) {
	if depthFirst {
		return r.backtracker.Run(input)
	}
	return r.threadVM.Run(input)
}

// Search reports whether the pattern matches starting at any position of
// input. Candidate positions come from the literal prefilter when one
// exists; otherwise every rune start (and the end-of-input position) is
// attempted. Anchors keep their whole-input meaning everywhere in the
// scan: `^` holds only at position 0 and `$` only at end of input, so a
// branch beginning with `^` can never match at a later start position,
// and a pattern whose every branch begins with `^` is only attempted at
// position 0.
func (r *Regex) Search(input string, depthFirst bool) (bool, error) {
	runes := []rune(input)
	if r.headAnchored {
		return r.MatchRunes(runes, depthFirst)
	}
	if r.filter != nil {
		return r.searchFiltered(input, runes, depthFirst)
	}
	for i := 0; i <= len(runes); i++ {
		ok, err := r.matchAt(runes, i, depthFirst)
		if ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}

// matchAt runs the selected engine at an absolute start position, keeping
// anchor semantics relative to the whole input.
func (r *Regex) matchAt(runes []rune, start int, depthFirst bool) (bool, error) {
	if depthFirst {
		return r.backtracker.RunAt(runes, start)
	}
	return r.threadVM.RunAt(runes, start)
}

// searchFiltered attempts the engine only at prefilter candidates.
func (r *Regex) searchFiltered(input string, runes []rune, depthFirst bool) (bool, error) {
	haystack := []byte(input)
	byteOff, runeIdx := 0, 0
	at := 0
	for {
		off := r.filter.Next(haystack, at)
		if off < 0 {
			return false, nil
		}
		for byteOff < off && runeIdx < len(runes) {
			byteOff += utf8.RuneLen(runes[runeIdx])
			runeIdx++
		}
		// Literals start on rune boundaries, so candidates always align;
		// skip defensively if one ever does not.
		if byteOff == off {
			ok, err := r.matchAt(runes, runeIdx, depthFirst)
			if ok || err != nil {
				return ok, err
			}
		}
		at = off + 1
	}
}

// headIsBegin reports whether every path through the tree starts with `^`.
func headIsBegin(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginText:
		return true
	case syntax.OpConcat, syntax.OpPlus:
		return len(re.Sub) > 0 && headIsBegin(re.Sub[0])
	case syntax.OpAlternate:
		return headIsBegin(re.Sub[0]) && headIsBegin(re.Sub[1])
	default:
		return false
	}
}

// Match compiles pattern and reports whether it matches a prefix of
// input starting at position 0. depthFirst selects the evaluation
// strategy. The first error of any stage is returned.
func Match(pattern, input string, depthFirst bool) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(input, depthFirst)
}

// Fprint writes the pattern, its AST and its instruction listing to w
// for inspection.
func (r *Regex) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "pattern: %s\nast: %s\ncode:\n", r.pattern, r.ast); err != nil {
		return err
	}
	for i, inst := range r.prog {
		if _, err := fmt.Fprintf(w, "%04d: %s\n", i, inst); err != nil {
			return err
		}
	}
	return nil
}

// Print parses and compiles pattern, rendering the AST and the
// instruction listing to standard output for inspection.
func Print(pattern string) error {
	return Fprint(os.Stdout, pattern)
}

// Fprint is like Print but writes to w.
func Fprint(w io.Writer, pattern string) error {
	re, err := Compile(pattern)
	if err != nil {
		return err
	}
	return re.Fprint(w)
}
