package vm

import "github.com/coregx/regexvm/internal/conv"

// Backtracker evaluates a program by recursive depth-first backtracking.
//
// Splits are explored left branch first; the right branch runs only after
// the left has failed. Worst case is exponential in the number of splits
// on the explored path, and recursion depth is bounded by the
// quantifier/alternation nesting of the source pattern — pathological
// nesting can exhaust the call stack. Embedders concerned about
// catastrophic inputs should impose their own step or time budgets.
//
// A Backtracker borrows the program immutably and holds no per-search
// state, so a single instance may be shared across calls.
type Backtracker struct {
	prog Program
}

// NewBacktracker creates a depth-first evaluator for prog.
func NewBacktracker(prog Program) *Backtracker {
	return &Backtracker{prog: prog}
}

// Run reports whether prog matches input starting at position 0.
// Matching is prefix semantics: trailing input after OpMatch is ignored.
func (b *Backtracker) Run(input []rune) (bool, error) {
	return b.RunAt(input, 0)
}

// RunAt is like Run but starts matching at position start. Anchors keep
// their whole-input meaning: `^` holds only at position 0 of input and
// `$` only at its end, regardless of start.
func (b *Backtracker) RunAt(input []rune, start int) (bool, error) {
	if start < 0 || start > len(input) {
		return false, ErrSPOverflow
	}
	return b.eval(0, start, input)
}

func (b *Backtracker) eval(pc, sp int, input []rune) (bool, error) {
	for {
		if pc < 0 || pc >= len(b.prog) {
			return false, ErrInvalidPC
		}

		inst := b.prog[pc]
		switch inst.Op {
		case OpChar:
			if sp >= len(input) || input[sp] != inst.Rune {
				return false, nil
			}
			var err error
			if pc, sp, err = advance(pc, sp); err != nil {
				return false, err
			}

		case OpAnyChar:
			if sp >= len(input) {
				return false, nil
			}
			var err error
			if pc, sp, err = advance(pc, sp); err != nil {
				return false, err
			}

		case OpBeginText:
			if sp != 0 {
				return false, nil
			}
			next, ok := conv.Inc(pc)
			if !ok {
				return false, ErrPCOverflow
			}
			pc = next

		case OpEndText:
			if sp != len(input) {
				return false, nil
			}
			next, ok := conv.Inc(pc)
			if !ok {
				return false, ErrPCOverflow
			}
			pc = next

		case OpMatch:
			return true, nil

		case OpJump:
			pc = inst.X

		case OpSplit:
			ok, err := b.eval(inst.X, sp, input)
			if err != nil || ok {
				return ok, err
			}
			return b.eval(inst.Y, sp, input)

		default:
			return false, ErrInvalidPC
		}
	}
}

// advance moves both counters past a consumed rune with overflow checks.
func advance(pc, sp int) (int, int, error) {
	nextPC, ok := conv.Inc(pc)
	if !ok {
		return 0, 0, ErrPCOverflow
	}
	nextSP, ok := conv.Inc(sp)
	if !ok {
		return 0, 0, ErrSPOverflow
	}
	return nextPC, nextSP, nil
}
