// Command regexvm is a grep-style line matcher for the engine's dialect.
//
// Usage:
//
//	regexvm [-b] [-dedup] [-p] pattern [file ...]
//
// Lines of the named files (or standard input) that contain a match are
// printed, prefixed with the file name when more than one file is given.
// Exit status is 0 if any line matched, 1 if none did, 2 on error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/regexvm"
)

func main() {
	var (
		breadth = flag.Bool("b", false, "use the breadth-first engine instead of backtracking")
		dedup   = flag.Bool("dedup", false, "deduplicate (pc, sp) thread states (breadth-first only)")
		dump    = flag.Bool("p", false, "print the AST and instruction listing before matching")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: regexvm [-b] [-dedup] [-p] pattern [file ...]")
		os.Exit(2)
	}
	pattern, files := args[0], args[1:]

	re, err := regexvm.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexvm: %v\n", err)
		os.Exit(2)
	}
	re.SetDedupThreads(*dedup)

	if *dump {
		if err := re.Fprint(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "regexvm: %v\n", err)
			os.Exit(2)
		}
	}

	matched := false
	if len(files) == 0 {
		ok, err := scan(os.Stdout, os.Stdin, "", re, !*breadth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "regexvm: %v\n", err)
			os.Exit(2)
		}
		matched = ok
	}
	for _, name := range files {
		prefix := ""
		if len(files) > 1 {
			prefix = name
		}
		ok, err := scanFile(name, prefix, re, !*breadth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "regexvm: %v\n", err)
			os.Exit(2)
		}
		matched = matched || ok
	}

	if !matched {
		os.Exit(1)
	}
}

func scanFile(name, prefix string, re *regexvm.Regex, depthFirst bool) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return scan(os.Stdout, f, prefix, re, depthFirst)
}

// scan prints every line of r that the pattern matches anywhere in and
// reports whether any line matched.
func scan(w io.Writer, r io.Reader, prefix string, re *regexvm.Regex, depthFirst bool) (bool, error) {
	matched := false
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		ok, err := re.Search(line, depthFirst)
		if err != nil {
			return matched, err
		}
		if !ok {
			continue
		}
		matched = true
		if prefix != "" {
			fmt.Fprintf(w, "%s:%s\n", prefix, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
	return matched, sc.Err()
}
