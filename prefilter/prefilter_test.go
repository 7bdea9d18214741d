package prefilter

import (
	"testing"

	"github.com/coregx/regexvm/literal"
)

func seqOf(lits ...string) *literal.Seq {
	s := &literal.Seq{}
	for _, l := range lits {
		s.Lits = append(s.Lits, literal.Literal{Str: l})
	}
	return s
}

func TestFromSeqEmpty(t *testing.T) {
	if pf := FromSeq(nil); pf != nil {
		t.Error("FromSeq(nil) != nil")
	}
	if pf := FromSeq(&literal.Seq{}); pf != nil {
		t.Error("FromSeq(empty) != nil")
	}
}

func TestSubstringFilter(t *testing.T) {
	pf := FromSeq(seqOf("abc"))
	if pf == nil {
		t.Fatal("no prefilter for single literal")
	}

	haystack := []byte("xxabcyyabc")
	tests := []struct {
		at   int
		want int
	}{
		{0, 2},
		{2, 2},
		{3, 7},
		{8, -1},
		{len(haystack), -1},
		{len(haystack) + 1, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := pf.Next(haystack, tt.at); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestAhoCorasickFilter(t *testing.T) {
	pf := FromSeq(seqOf("abc", "def", "zz"))
	if pf == nil {
		t.Fatal("no prefilter for literal set")
	}

	haystack := []byte("..def..zzabc")
	tests := []struct {
		at   int
		want int
	}{
		{0, 2},
		{3, 7},
		{8, 9},
		{10, -1},
		{len(haystack), -1},
	}
	for _, tt := range tests {
		if got := pf.Next(haystack, tt.at); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestFilterMiss(t *testing.T) {
	for _, pf := range []Prefilter{
		FromSeq(seqOf("needle")),
		FromSeq(seqOf("needle", "pin")),
	} {
		if got := pf.Next([]byte("just hay"), 0); got != -1 {
			t.Errorf("Next on miss = %d, want -1", got)
		}
	}
}
