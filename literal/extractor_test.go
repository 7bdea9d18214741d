package literal

import (
	"sort"
	"testing"

	"github.com/coregx/regexvm/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	ast, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return Extract(ast)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		want         []string
		wantComplete bool
	}{
		{"literal", "abc", []string{"abc"}, true},
		{"alternation", "abc|def", []string{"abc", "def"}, true},
		{"nested alternation", "a(b|c)d", []string{"abd", "acd"}, true},
		{"plus is never complete", "(ab|cd)+", []string{"ab", "cd"}, false},
		{"literal head before wildcard", "abc.*", []string{"abc"}, false},
		{"literal head before optional", "abz?", []string{"ab"}, false},
		{"alternation folds right", "a|b|c", []string{"a", "b", "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := extract(t, tt.pattern)
			if seq == nil {
				t.Fatalf("Extract(%q) = nil, want %v", tt.pattern, tt.want)
			}
			got := seq.Strings()
			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.pattern, got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("Extract(%q) = %v, want %v", tt.pattern, got, want)
				}
			}
			if seq.AllComplete() != tt.wantComplete {
				t.Errorf("Extract(%q).AllComplete() = %v, want %v", tt.pattern, seq.AllComplete(), tt.wantComplete)
			}
		})
	}
}

func TestExtractNoUsablePrefix(t *testing.T) {
	patterns := []string{
		".abc",     // wildcard head
		"a*bc",     // star head can match empty
		"x?yz",     // optional head can match empty
		"^abc",     // assertion head contributes no text
		"(a|.)bc",  // one branch has no literal
		".",        // no text at all
	}
	for _, pattern := range patterns {
		if seq := extract(t, pattern); seq != nil {
			t.Errorf("Extract(%q) = %v, want nil", pattern, seq.Strings())
		}
	}
}

func TestExtractLimits(t *testing.T) {
	x := NewExtractor(Config{MaxLiterals: 2, MaxLiteralLen: 3})

	// Alternation wider than MaxLiterals yields nothing.
	ast, err := syntax.Parse("a|b|c")
	if err != nil {
		t.Fatal(err)
	}
	if seq := x.Extract(ast); seq != nil {
		t.Errorf("wide alternation: got %v, want nil", seq.Strings())
	}

	// Long literals are truncated and downgraded to prefixes.
	ast, err = syntax.Parse("abcdef")
	if err != nil {
		t.Fatal(err)
	}
	seq := x.Extract(ast)
	if seq == nil {
		t.Fatal("long literal: got nil")
	}
	if got := seq.Strings(); len(got) != 1 || got[0] != "abc" {
		t.Errorf("long literal: got %v, want [abc]", got)
	}
	if seq.AllComplete() {
		t.Error("truncated literal should not be complete")
	}
}

func TestSeqHelpers(t *testing.T) {
	var nilSeq *Seq
	if !nilSeq.IsEmpty() || nilSeq.Len() != 0 || nilSeq.Strings() != nil {
		t.Error("nil Seq should behave as empty")
	}
	if nilSeq.AllComplete() {
		t.Error("nil Seq is not complete")
	}
}
