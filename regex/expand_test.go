package regex

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpandClasses(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		want    []rune
	}{
		{
			"simple class",
			Pattern{LeftClass(), Char('b'), Char('a'), Char('c'), RightClass()},
			[]rune{'a', 'b', 'c'},
		},
		{
			"duplicates collapse",
			Pattern{LeftClass(), Char('a'), Char('a'), Char('a'), RightClass()},
			[]rune{'a'},
		},
		{
			"range",
			Pattern{LeftClass(), Char('a'), Range(), Char('e'), RightClass()},
			[]rune{'a', 'b', 'c', 'd', 'e'},
		},
		{
			"range and literals",
			Pattern{LeftClass(), Char('x'), Char('0'), Range(), Char('2'), RightClass()},
			[]rune{'0', '1', '2', 'x'},
		},
		{
			"negation over printable ascii",
			Pattern{LeftClass(), Negate(), Char('!'), Range(), Char('~'), RightClass()},
			[]rune{'\t', '\n', '\v', '\f', '\r', ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := expandClasses(tt.pattern)
			if err != nil {
				t.Fatalf("expandClasses() error = %v", err)
			}
			if len(out) != 1 || out[0].Kind() != AtomClass {
				t.Fatalf("expandClasses() = %v, want a single class atom", out)
			}
			if got := out[0].Class(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("class = %q, want %q", string(got), string(tt.want))
			}
		})
	}
}

func TestExpandClasses_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
	}{
		{"backwards range", Pattern{LeftClass(), Char('z'), Range(), Char('a'), RightClass()}},
		{"negation of everything", Pattern{LeftClass(), Negate(), Char(' '), Range(), Char('~'), Char('\t'), Char('\n'), Char('\v'), Char('\f'), Char('\r'), RightClass()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := expandClasses(tt.pattern); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expandClasses() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestExpandIntervals(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		want    Pattern
	}{
		{
			"exact count",
			Pattern{Char('a'), LeftInterval(), Integer(2), RightInterval()},
			Pattern{Char('a'), Char('a')},
		},
		{
			"bounded",
			Pattern{Char('a'), LeftInterval(), Integer(1), Integer(3), RightInterval()},
			Pattern{Char('a'), Char('a'), Maybe(), Char('a'), Maybe()},
		},
		{
			"upper bound only",
			Pattern{Char('a'), LeftInterval(), Integer(0), Integer(2), RightInterval()},
			Pattern{Char('a'), Maybe(), Char('a'), Maybe()},
		},
		{
			"unbounded",
			Pattern{Char('a'), LeftInterval(), Integer(2), Integer(0), RightInterval()},
			Pattern{Char('a'), Char('a'), Char('a'), Star()},
		},
		{
			"group operand",
			Pattern{LeftGroup(), Char('a'), Char('b'), RightGroup(), LeftInterval(), Integer(2), RightInterval()},
			Pattern{LeftGroup(), Char('a'), Char('b'), RightGroup(), LeftGroup(), Char('a'), Char('b'), RightGroup()},
		},
		{
			"nested group intervals",
			Pattern{LeftGroup(), Char('a'), LeftInterval(), Integer(2), RightInterval(), RightGroup(), LeftInterval(), Integer(2), RightInterval()},
			Pattern{LeftGroup(), Char('a'), Char('a'), RightGroup(), LeftGroup(), Char('a'), Char('a'), RightGroup()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandIntervals(tt.pattern)
			if err != nil {
				t.Fatalf("expandIntervals() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandIntervals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertConcat(t *testing.T) {
	got := insertConcat(Pattern{Char('a'), Char('b'), Star(), LeftGroup(), Char('c'), RightGroup(), Char('d')})
	want := Pattern{Char('a'), Concat(), Char('b'), Star(), Concat(), LeftGroup(), Char('c'), RightGroup(), Concat(), Char('d')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("insertConcat() = %v, want %v", got, want)
	}
}

func TestPostfix(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		want    Pattern
	}{
		{
			"alternation binds loosest",
			Pattern{Char('a'), Alt(), Char('b'), Star()},
			Pattern{Char('a'), Char('b'), Star(), Alt()},
		},
		{
			"concat before alternation",
			Pattern{Char('a'), Char('b'), Alt(), Char('c'), Char('d')},
			Pattern{Char('a'), Char('b'), Concat(), Char('c'), Char('d'), Concat(), Alt()},
		},
		{
			"group overrides precedence",
			Pattern{LeftGroup(), Char('a'), Alt(), Char('b'), RightGroup(), Char('c')},
			Pattern{Char('a'), Char('b'), Alt(), Char('c'), Concat()},
		},
		{
			"quantifier on group",
			Pattern{LeftGroup(), Char('a'), Char('b'), RightGroup(), Star()},
			Pattern{Char('a'), Char('b'), Concat(), Star()},
		},
		{
			"left associative concat",
			Pattern{Char('a'), Char('b'), Char('c')},
			Pattern{Char('a'), Char('b'), Concat(), Char('c'), Concat()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Postfix(tt.pattern)
			if err != nil {
				t.Fatalf("Postfix() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Postfix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostfix_ValidatesFirst(t *testing.T) {
	if _, err := Postfix(Pattern{Star()}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Postfix() error = %v, want ErrInvalidValue", err)
	}
}
