package vm

import (
	"github.com/coregx/regexvm/internal/conv"
	"github.com/coregx/regexvm/internal/sparse"
)

// thread is a candidate execution state: a program counter paired with an
// input cursor. Threads never share or mutate one another's state.
type thread struct {
	pc, sp int
}

// ThreadVM evaluates a program by breadth-first thread simulation.
//
// One active (pc, sp) state runs alongside a FIFO queue of pending
// threads. A split makes its first target the active state and enqueues
// the second; after every other instruction the scheduler rotates: the
// active state goes to the back of the queue and the front becomes
// active, interleaving all live threads one instruction at a time. The
// match fails only when a thread fails with an empty queue.
//
// By default (pc, sp) states are NOT deduplicated: deeply nested
// repetition can enqueue an unbounded number of equivalent threads.
// Setting DedupThreads bounds live threads to one per (pc, sp) pair
// using a sparse visited set; this drops redundant threads from the
// rotation order but never changes the result.
type ThreadVM struct {
	prog Program

	// DedupThreads enables the sparse-set visited filter. It is ignored
	// for searches where program size times input length exceeds
	// maxDedupStates.
	DedupThreads bool
}

// maxDedupStates caps the visited-set allocation (entries, 4 bytes each).
const maxDedupStates = 4 << 20

// NewThreadVM creates a breadth-first evaluator for prog.
func NewThreadVM(prog Program) *ThreadVM {
	return &ThreadVM{prog: prog}
}

// Run reports whether prog matches input starting at position 0.
// Matching is prefix semantics: trailing input after OpMatch is ignored.
func (v *ThreadVM) Run(input []rune) (bool, error) {
	return v.RunAt(input, 0)
}

// RunAt is like Run but starts matching at position start. Anchors keep
// their whole-input meaning: `^` holds only at position 0 of input and
// `$` only at its end, regardless of start.
func (v *ThreadVM) RunAt(input []rune, start int) (bool, error) {
	if start < 0 || start > len(input) {
		return false, ErrSPOverflow
	}
	var (
		visited *sparse.Set
		stride  int
	)
	if v.DedupThreads && len(v.prog) > 0 {
		stride = len(input) + 1
		if stride <= maxDedupStates/len(v.prog) {
			visited = sparse.NewSet(conv.IntToUint32(len(v.prog) * stride))
		}
	}

	var q []thread
	pc, sp := 0, start
	for {
		if pc < 0 || pc >= len(v.prog) {
			return false, ErrInvalidPC
		}

		if visited != nil && !visited.Insert(conv.IntToUint32(pc*stride+sp)) {
			// An earlier thread already explored this state.
			if len(q) == 0 {
				return false, nil
			}
			t, err := popFront(&q)
			if err != nil {
				return false, err
			}
			pc, sp = t.pc, t.sp
			continue
		}

		inst := v.prog[pc]
		switch inst.Op {
		case OpSplit:
			// The first target stays active, the second waits its turn.
			// Splits do not participate in the round-robin step.
			q = append(q, thread{pc: inst.Y, sp: sp})
			pc = inst.X
			continue

		case OpMatch:
			return true, nil

		case OpJump:
			pc = inst.X

		case OpChar:
			if sp >= len(input) || input[sp] != inst.Rune {
				if len(q) == 0 {
					return false, nil
				}
				t, err := popFront(&q)
				if err != nil {
					return false, err
				}
				pc, sp = t.pc, t.sp
				continue
			}
			var err error
			if pc, sp, err = advance(pc, sp); err != nil {
				return false, err
			}

		case OpAnyChar:
			if sp >= len(input) {
				if len(q) == 0 {
					return false, nil
				}
				t, err := popFront(&q)
				if err != nil {
					return false, err
				}
				pc, sp = t.pc, t.sp
				continue
			}
			var err error
			if pc, sp, err = advance(pc, sp); err != nil {
				return false, err
			}

		case OpBeginText, OpEndText:
			hold := sp == 0
			if inst.Op == OpEndText {
				hold = sp == len(input)
			}
			if !hold {
				if len(q) == 0 {
					return false, nil
				}
				t, err := popFront(&q)
				if err != nil {
					return false, err
				}
				pc, sp = t.pc, t.sp
				continue
			}
			next, ok := conv.Inc(pc)
			if !ok {
				return false, ErrPCOverflow
			}
			pc = next

		default:
			return false, ErrInvalidPC
		}

		// Round-robin: rotate the active thread to the back of the queue.
		if len(q) > 0 {
			q = append(q, thread{pc: pc, sp: sp})
			t, err := popFront(&q)
			if err != nil {
				return false, err
			}
			pc, sp = t.pc, t.sp
		}
	}
}

// popFront removes and returns the oldest pending thread.
func popFront(q *[]thread) (thread, error) {
	if len(*q) == 0 {
		return thread{}, ErrInvalidContext
	}
	t := (*q)[0]
	*q = (*q)[1:]
	return t, nil
}

// Eval runs prog against input with the evaluation strategy selected by
// depthFirst: recursive backtracking when true, breadth-first thread
// simulation when false. Both strategies return the same boolean for any
// well-formed program.
func Eval(prog Program, input []rune, depthFirst bool) (bool, error) {
	if depthFirst {
		return NewBacktracker(prog).Run(input)
	}
	return NewThreadVM(prog).Run(input)
}
