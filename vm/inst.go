// Package vm defines the bytecode instruction set for the regex engine,
// the code generator that lowers a parsed pattern into it, and two
// interchangeable evaluators: a recursive backtracker and a breadth-first
// thread simulator.
//
// A compiled Program is immutable and may be evaluated against arbitrarily
// many inputs. Both evaluators must return identical boolean results for
// any well-formed program; this equivalence is a tested property.
//
// Example:
//
//	ast, _ := syntax.Parse("ab(c|d)")
//	prog, _ := vm.Compile(ast)
//	ok, _ := vm.Eval(prog, []rune("abd"), true)
package vm

import (
	"fmt"
	"strings"
)

// OpCode identifies the kind of a bytecode instruction.
type OpCode uint8

const (
	// OpChar consumes one input rune iff it equals Inst.Rune.
	OpChar OpCode = iota

	// OpAnyChar consumes one input rune unconditionally, failing only at
	// end of input.
	OpAnyChar

	// OpBeginText succeeds iff the input cursor is at position 0.
	// Zero-width: consumes nothing.
	OpBeginText

	// OpEndText succeeds iff the input cursor is at end of input.
	// Zero-width: consumes nothing.
	OpEndText

	// OpMatch accepts: the whole program succeeds.
	OpMatch

	// OpJump transfers control to address Inst.X.
	OpJump

	// OpSplit branches nondeterministically: try Inst.X, and depending on
	// the evaluation mode, also Inst.Y.
	OpSplit
)

// Inst is a single bytecode instruction. Rune is valid for OpChar,
// X for OpJump and OpSplit, Y for OpSplit only.
type Inst struct {
	Op   OpCode
	Rune rune
	X    int
	Y    int
}

// String renders the instruction in listing form: `char c`, `any`,
// `start`, `end`, `match`, `jmp NNNN` or `split NNNN, NNNN`, with jump
// targets zero-padded to 4 digits.
func (i Inst) String() string {
	switch i.Op {
	case OpChar:
		return fmt.Sprintf("char %c", i.Rune)
	case OpAnyChar:
		return "any"
	case OpBeginText:
		return "start"
	case OpEndText:
		return "end"
	case OpMatch:
		return "match"
	case OpJump:
		return fmt.Sprintf("jmp %04d", i.X)
	case OpSplit:
		return fmt.Sprintf("split %04d, %04d", i.X, i.Y)
	default:
		return fmt.Sprintf("unknown(%d)", i.Op)
	}
}

// Program is an ordered, 0-indexed instruction sequence. Jump and split
// targets are plain indices into it. A well-formed program keeps every
// target in range and ends with OpMatch.
type Program []Inst

// String renders the whole program, one instruction per line.
func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p {
		b.WriteString(inst.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Equal reports whether two programs are instruction-for-instruction
// identical.
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i, inst := range p {
		if inst != other[i] {
			return false
		}
	}
	return true
}
