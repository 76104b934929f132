package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/spag/regex"
)

func postfix(t *testing.T, p regex.Pattern) regex.Pattern {
	t.Helper()
	out, err := regex.Postfix(p)
	if err != nil {
		t.Fatalf("Postfix() error = %v", err)
	}
	return out
}

func TestExtract_FiniteLanguages(t *testing.T) {
	tests := []struct {
		name    string
		pattern regex.Pattern
		want    []string
	}{
		{
			"keyword",
			regex.Pattern{regex.Char('i'), regex.Char('f')},
			[]string{"if"},
		},
		{
			"alternation",
			regex.Pattern{
				regex.Char('i'), regex.Char('f'),
				regex.Alt(),
				regex.Char('o'), regex.Char('r'),
			},
			[]string{"if", "or"},
		},
		{
			"class times literal",
			regex.Pattern{
				regex.LeftClass(), regex.Char('0'), regex.Range(), regex.Char('2'), regex.RightClass(),
				regex.Char('x'),
			},
			[]string{"0x", "1x", "2x"},
		},
		{
			"optional suffix",
			regex.Pattern{regex.Char('a'), regex.Char('b'), regex.Maybe()},
			[]string{"a", "ab"},
		},
		{
			"bounded interval",
			regex.Pattern{regex.Char('a'), regex.LeftInterval(), regex.Integer(1), regex.Integer(2), regex.RightInterval()},
			[]string{"a", "aa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := Extract(postfix(t, tt.pattern), 0)
			if !seq.Exact() {
				t.Fatal("Exact() = false, want true")
			}
			if got := seq.Literals(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Literals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract_InfiniteLanguages(t *testing.T) {
	tests := []struct {
		name    string
		pattern regex.Pattern
	}{
		{"star", regex.Pattern{regex.Char('a'), regex.Star()}},
		{"plus", regex.Pattern{regex.Char('a'), regex.Plus()}},
		{"unbounded interval", regex.Pattern{regex.Char('a'), regex.LeftInterval(), regex.Integer(2), regex.Integer(0), regex.RightInterval()}},
		{"star under concat", regex.Pattern{regex.Char('a'), regex.Char('b'), regex.Star()}},
		{"star under alternation", regex.Pattern{regex.Char('a'), regex.Alt(), regex.Char('b'), regex.Star()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if seq := Extract(postfix(t, tt.pattern), 0); seq.Exact() {
				t.Errorf("Exact() = true for infinite language, literals %v", seq.Literals())
			}
		})
	}
}

func TestExtract_LimitOverflow(t *testing.T) {
	// [a-z][a-z][a-z] enumerates 17576 strings, far past any usable limit.
	az := regex.Pattern{regex.LeftClass(), regex.Char('a'), regex.Range(), regex.Char('z'), regex.RightClass()}
	var p regex.Pattern
	for i := 0; i < 3; i++ {
		p = append(p, az...)
	}
	if seq := Extract(postfix(t, p), 64); seq.Exact() {
		t.Error("Exact() = true past the extraction limit")
	}

	// The same pattern fits under a generous limit.
	if seq := Extract(postfix(t, p), 20000); !seq.Exact() || seq.Len() != 17576 {
		t.Errorf("Exact() = %v Len() = %d, want exact 17576", seq.Exact(), seq.Len())
	}
}
