package main

import (
	"strings"
	"testing"

	"github.com/coregx/regexvm"
)

func TestScan(t *testing.T) {
	input := "abc def\n" +
		"nothing here\n" +
		"xxdefxx\n" +
		"abd\n"

	tests := []struct {
		name       string
		pattern    string
		prefix     string
		depthFirst bool
		wantOut    string
		wantMatch  bool
	}{
		{
			name:       "matching lines printed",
			pattern:    "abc|def",
			depthFirst: true,
			wantOut:    "abc def\nxxdefxx\n",
			wantMatch:  true,
		},
		{
			name:       "breadth first agrees",
			pattern:    "abc|def",
			depthFirst: false,
			wantOut:    "abc def\nxxdefxx\n",
			wantMatch:  true,
		},
		{
			name:       "prefix applied",
			pattern:    "abd",
			prefix:     "notes.txt",
			depthFirst: true,
			wantOut:    "notes.txt:abd\n",
			wantMatch:  true,
		},
		{
			name:       "no match",
			pattern:    "zzz",
			depthFirst: true,
			wantOut:    "",
			wantMatch:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexvm.MustCompile(tt.pattern)
			var out strings.Builder
			matched, err := scan(&out, strings.NewReader(input), tt.prefix, re, tt.depthFirst)
			if err != nil {
				t.Fatalf("scan: %v", err)
			}
			if matched != tt.wantMatch {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatch)
			}
			if got := out.String(); got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
		})
	}
}

func TestScanEmptyInput(t *testing.T) {
	re := regexvm.MustCompile("a")
	var out strings.Builder
	matched, err := scan(&out, strings.NewReader(""), "", re, true)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if matched || out.Len() != 0 {
		t.Errorf("empty input: matched=%v output=%q", matched, out.String())
	}
}
