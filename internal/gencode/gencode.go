// Package gencode renders a compiled vm.Program as a Go source file, so
// frequently used patterns can be embedded ahead of time and evaluated
// without parsing or compiling at runtime.
package gencode

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/regexvm/vm"
)

const vmPath = "github.com/coregx/regexvm/vm"

// File builds a Go source file for package pkg declaring
// `var name = vm.Program{...}` holding the given program.
func File(pkg, name, pattern string, prog vm.Program) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by regexvmgen. DO NOT EDIT.")
	f.Comment(fmt.Sprintf("%s is the compiled program for the pattern %q.", name, pattern))
	f.Var().Id(name).Op("=").Qual(vmPath, "Program").ValuesFunc(func(g *jen.Group) {
		for _, inst := range prog {
			g.Add(instValue(inst))
		}
	})
	return f
}

// Render writes the generated file for prog to w.
func Render(w io.Writer, pkg, name, pattern string, prog vm.Program) error {
	return File(pkg, name, pattern, prog).Render(w)
}

// instValue renders one instruction literal, emitting only the fields the
// opcode uses.
func instValue(inst vm.Inst) jen.Code {
	d := jen.Dict{
		jen.Id("Op"): jen.Qual(vmPath, opName(inst.Op)),
	}
	switch inst.Op {
	case vm.OpChar:
		d[jen.Id("Rune")] = jen.LitRune(inst.Rune)
	case vm.OpJump:
		d[jen.Id("X")] = jen.Lit(inst.X)
	case vm.OpSplit:
		d[jen.Id("X")] = jen.Lit(inst.X)
		d[jen.Id("Y")] = jen.Lit(inst.Y)
	}
	return jen.Values(d)
}

// opName returns the exported vm constant name for op.
func opName(op vm.OpCode) string {
	switch op {
	case vm.OpChar:
		return "OpChar"
	case vm.OpAnyChar:
		return "OpAnyChar"
	case vm.OpBeginText:
		return "OpBeginText"
	case vm.OpEndText:
		return "OpEndText"
	case vm.OpMatch:
		return "OpMatch"
	case vm.OpJump:
		return "OpJump"
	case vm.OpSplit:
		return "OpSplit"
	default:
		return fmt.Sprintf("OpCode(%d)", op)
	}
}
