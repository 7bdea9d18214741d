package vm

import "errors"

// Code generation errors.
//
// The backpatch failures indicate the generator's own bookkeeping found
// the wrong instruction kind at a recorded address. They signal a
// generator bug, not a malformed pattern, and are unrecoverable within a
// single compile call.
var (
	// ErrPCOverflow indicates the program counter exceeded its integer
	// range. Returned by both compilation (address space exhausted) and
	// evaluation (counter exhaustion); practically unreachable except
	// with extreme pattern or input size.
	ErrPCOverflow = errors.New("program counter overflow")

	// ErrFailStar indicates the star backpatch did not find its split.
	ErrFailStar = errors.New("star codegen: split not found at recorded address")

	// ErrFailOr indicates an alternation backpatch did not find its
	// split or jump.
	ErrFailOr = errors.New("alternation codegen: split or jump not found at recorded address")

	// ErrFailQuestion indicates the question backpatch did not find its split.
	ErrFailQuestion = errors.New("question codegen: split not found at recorded address")
)

// Evaluation errors.
var (
	// ErrSPOverflow indicates the input cursor exceeded its integer range,
	// or a RunAt start position outside the input.
	ErrSPOverflow = errors.New("input cursor overflow")

	// ErrInvalidPC indicates the program jumped outside its own bounds,
	// which means the program is malformed (a generator defect).
	ErrInvalidPC = errors.New("program counter out of range")

	// ErrInvalidContext indicates the breadth-first scheduler found an
	// empty thread queue where one was expected to be non-empty.
	ErrInvalidContext = errors.New("thread queue unexpectedly empty")
)
