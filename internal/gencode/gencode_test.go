package gencode

import (
	"strings"
	"testing"

	"github.com/coregx/regexvm/vm"
)

func TestRender(t *testing.T) {
	// Program for "a+".
	prog := vm.Program{
		{Op: vm.OpChar, Rune: 'a'},
		{Op: vm.OpSplit, X: 0, Y: 2},
		{Op: vm.OpMatch},
	}

	var b strings.Builder
	if err := Render(&b, "patterns", "letterA", "a+", prog); err != nil {
		t.Fatalf("Render: %v", err)
	}
	src := b.String()

	for _, want := range []string{
		"// Code generated by regexvmgen. DO NOT EDIT.",
		"package patterns",
		`"github.com/coregx/regexvm/vm"`,
		`// letterA is the compiled program for the pattern "a+".`,
		"var letterA = vm.Program{",
		"Op: vm.OpChar",
		"Rune: 'a'",
		"Op: vm.OpSplit",
		"X: 0",
		"Y: 2",
		"Op: vm.OpMatch",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestRenderOmitsUnusedFields(t *testing.T) {
	prog := vm.Program{
		{Op: vm.OpAnyChar},
		{Op: vm.OpJump, X: 0},
		{Op: vm.OpMatch},
	}

	var b strings.Builder
	if err := Render(&b, "p", "anyLoop", ".", prog); err != nil {
		t.Fatalf("Render: %v", err)
	}
	src := b.String()

	if strings.Contains(src, "Rune:") {
		t.Errorf("rune field emitted for runeless program:\n%s", src)
	}
	if strings.Contains(src, "Y:") {
		t.Errorf("Y field emitted without a split:\n%s", src)
	}
	if !strings.Contains(src, "Op: vm.OpJump") || !strings.Contains(src, "X: 0") {
		t.Errorf("jump target missing:\n%s", src)
	}
}
