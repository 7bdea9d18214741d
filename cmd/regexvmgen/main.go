// Command regexvmgen compiles a pattern and writes a Go source file
// declaring the resulting vm.Program, for ahead-of-time embedding.
//
// Usage:
//
//	regexvmgen -pattern 'abc|(de|cd)+' -name MyProgram -pkg patterns [-o file.go]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/regexvm"
	"github.com/coregx/regexvm/internal/gencode"
)

func main() {
	var (
		pattern = flag.String("pattern", "", "pattern to compile (required)")
		name    = flag.String("name", "Program", "name of the generated variable")
		pkg     = flag.String("pkg", "main", "package of the generated file")
		out     = flag.String("o", "", "output file (default stdout)")
	)
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "regexvmgen: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	re, err := regexvm.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexvmgen: %v\n", err)
		os.Exit(2)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "regexvmgen: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		w = f
	}

	if err := gencode.Render(w, *pkg, *name, *pattern, re.Program()); err != nil {
		fmt.Fprintf(os.Stderr, "regexvmgen: render: %v\n", err)
		os.Exit(2)
	}
}
