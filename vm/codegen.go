package vm

import (
	"github.com/coregx/regexvm/internal/conv"
	"github.com/coregx/regexvm/syntax"
)

// generator lowers an AST into a flat instruction sequence.
//
// pc is the address of the next instruction to be appended; every append
// increments it by one. Forward jump targets that are unknown at emission
// time are written as 0 and backpatched by direct index writes once the
// jumped-to address is known. The placeholder is only ever the second
// operand of a split or the sole operand of a jump, and each is resolved
// exactly once before Compile returns.
type generator struct {
	pc    int
	insts Program
}

// Compile lowers an AST into a bytecode program. The last instruction of
// any generated program is OpMatch. Compiling the same AST twice yields
// identical instruction sequences.
func Compile(re *syntax.Regexp) (Program, error) {
	g := &generator{}
	if err := g.genCode(re); err != nil {
		return nil, err
	}
	return g.insts, nil
}

func (g *generator) incPC() error {
	pc, ok := conv.Inc(g.pc)
	if !ok {
		return ErrPCOverflow
	}
	g.pc = pc
	return nil
}

func (g *generator) genCode(re *syntax.Regexp) error {
	if err := g.genExpr(re); err != nil {
		return err
	}
	if err := g.incPC(); err != nil {
		return err
	}
	g.insts = append(g.insts, Inst{Op: OpMatch})
	return nil
}

func (g *generator) genExpr(re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpChar:
		return g.genInst(Inst{Op: OpChar, Rune: re.Rune})
	case syntax.OpAnyChar:
		return g.genInst(Inst{Op: OpAnyChar})
	case syntax.OpBeginText:
		return g.genInst(Inst{Op: OpBeginText})
	case syntax.OpEndText:
		return g.genInst(Inst{Op: OpEndText})
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := g.genExpr(sub); err != nil {
				return err
			}
		}
		return nil
	case syntax.OpPlus:
		return g.genPlus(re.Sub[0])
	case syntax.OpStar:
		return g.genStar(re.Sub[0])
	case syntax.OpQuest:
		return g.genQuestion(re.Sub[0])
	case syntax.OpAlternate:
		return g.genAlternate(re.Sub[0], re.Sub[1])
	default:
		// The parser cannot produce other ops; treat as a generator bug.
		return ErrFailOr
	}
}

// genInst appends a single consuming or zero-width instruction.
func (g *generator) genInst(inst Inst) error {
	g.insts = append(g.insts, inst)
	return g.incPC()
}

// genPlus emits:
//
//	L1: <e>
//	    split L1, L2
//	L2:
//
// The body runs at least once; the split loops back to retry or falls
// through to continue.
func (g *generator) genPlus(e *syntax.Regexp) error {
	start := g.pc
	if err := g.genExpr(e); err != nil {
		return err
	}
	if err := g.incPC(); err != nil {
		return err
	}
	g.insts = append(g.insts, Inst{Op: OpSplit, X: start, Y: g.pc})
	return nil
}

// genStar emits:
//
//	L1: split L2, L3
//	L2: <e>
//	    jmp L1
//	L3:
//
// L3 is unknown until the jump is emitted, so the split's second target
// is backpatched.
func (g *generator) genStar(e *syntax.Regexp) error {
	splitAddr := g.pc
	if err := g.incPC(); err != nil {
		return err
	}
	g.insts = append(g.insts, Inst{Op: OpSplit, X: g.pc})

	if err := g.genExpr(e); err != nil {
		return err
	}

	g.insts = append(g.insts, Inst{Op: OpJump, X: splitAddr})
	if err := g.incPC(); err != nil {
		return err
	}

	if splitAddr >= len(g.insts) || g.insts[splitAddr].Op != OpSplit {
		return ErrFailStar
	}
	g.insts[splitAddr].Y = g.pc
	return nil
}

// genQuestion emits:
//
//	L1: split L2, L3
//	L2: <e>
//	L3:
func (g *generator) genQuestion(e *syntax.Regexp) error {
	splitAddr := g.pc
	if err := g.incPC(); err != nil {
		return err
	}
	g.insts = append(g.insts, Inst{Op: OpSplit, X: g.pc})

	if err := g.genExpr(e); err != nil {
		return err
	}

	if splitAddr >= len(g.insts) || g.insts[splitAddr].Op != OpSplit {
		return ErrFailQuestion
	}
	g.insts[splitAddr].Y = g.pc
	return nil
}

// genAlternate emits:
//
//	L1: split L2, L3
//	L2: <e1>
//	    jmp L4
//	L3: <e2>
//	L4:
//
// Both the split's second target and the jump are backpatched once the
// addresses they refer to are reached.
func (g *generator) genAlternate(e1, e2 *syntax.Regexp) error {
	splitAddr := g.pc
	if err := g.incPC(); err != nil {
		return err
	}
	g.insts = append(g.insts, Inst{Op: OpSplit, X: g.pc})

	if err := g.genExpr(e1); err != nil {
		return err
	}

	jmpAddr := g.pc
	g.insts = append(g.insts, Inst{Op: OpJump})
	if err := g.incPC(); err != nil {
		return err
	}

	if splitAddr >= len(g.insts) || g.insts[splitAddr].Op != OpSplit {
		return ErrFailOr
	}
	g.insts[splitAddr].Y = g.pc

	if err := g.genExpr(e2); err != nil {
		return err
	}

	if jmpAddr >= len(g.insts) || g.insts[jmpAddr].Op != OpJump {
		return ErrFailOr
	}
	g.insts[jmpAddr].X = g.pc
	return nil
}
