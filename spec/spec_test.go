package spec

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/spag/regex"
)

func TestRead(t *testing.T) {
	input := `
scanner_ini

header    \[[a-z]+\]
assign    =|:

number    [0-9]+
`
	f, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if f.Name != "scanner_ini" {
		t.Errorf("Name = %q, want scanner_ini", f.Name)
	}
	want := []Rule{
		{Name: "header", Body: `\[[a-z]+\]`},
		{Name: "assign", Body: "=|:"},
		{Name: "number", Body: "[0-9]+"},
	}
	if !reflect.DeepEqual(f.Rules, want) {
		t.Errorf("Rules = %v, want %v", f.Rules, want)
	}
}

func TestRead_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"blank lines only", "\n\n  \n"},
		{"name with spaces", "two tokens\n"},
		{"rule without body", "name\nheader\n"},
		{"rule with blank body", "name\nheader   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); !errors.Is(err, ErrFormat) {
				t.Errorf("Read() error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want regex.Pattern
	}{
		{
			"literals and operators",
			"ab*",
			regex.Pattern{regex.Char('a'), regex.Char('b'), regex.Star()},
		},
		{
			"grouped alternation",
			"(a|b)+",
			regex.Pattern{
				regex.LeftGroup(), regex.Char('a'), regex.Alt(), regex.Char('b'), regex.RightGroup(),
				regex.Plus(),
			},
		},
		{
			"class with range and negation",
			"[^a-z]?",
			regex.Pattern{
				regex.LeftClass(), regex.Negate(), regex.Char('a'), regex.Range(), regex.Char('z'), regex.RightClass(),
				regex.Maybe(),
			},
		},
		{
			"caret inside class body is literal",
			"[a^]",
			regex.Pattern{regex.LeftClass(), regex.Char('a'), regex.Char('^'), regex.RightClass()},
		},
		{
			"interval",
			"a{2,10}",
			regex.Pattern{
				regex.Char('a'),
				regex.LeftInterval(), regex.Integer(2), regex.Integer(10), regex.RightInterval(),
			},
		},
		{
			"escaped operators",
			`\*\(\\`,
			regex.Pattern{regex.Char('*'), regex.Char('('), regex.Char('\\')},
		},
		{
			"whitespace escapes",
			`\t\n\s`,
			regex.Pattern{regex.Char('\t'), regex.Char('\n'), regex.Char(' ')},
		},
		{
			"dash outside class is literal",
			"a-b",
			regex.Pattern{regex.Char('a'), regex.Char('-'), regex.Char('b')},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.body)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Translate(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestTranslate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"dangling escape", `ab\`},
		{"garbage in interval", "a{x}"},
		{"closing interval without opening", "a}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Translate(tt.body); !errors.Is(err, ErrFormat) {
				t.Errorf("Translate(%q) error = %v, want ErrFormat", tt.body, err)
			}
		})
	}
}

func TestFile_Expressions(t *testing.T) {
	f, err := Read(strings.NewReader("tokens\nnumber [0-9]+\nplus \\+\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	exprs, err := f.Expressions()
	if err != nil {
		t.Fatalf("Expressions() error = %v", err)
	}
	if len(exprs) != 2 || exprs[0].Name != "number" || exprs[1].Name != "plus" {
		t.Fatalf("Expressions() = %v", exprs)
	}
	if !reflect.DeepEqual(exprs[1].Pattern, regex.Pattern{regex.Char('+')}) {
		t.Errorf("escaped plus pattern = %v", exprs[1].Pattern)
	}
}

func TestFile_Productions(t *testing.T) {
	f, err := Read(strings.NewReader("json\n<VALUE> string | <OBJECT>\n<OBJECT> { }\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	productions, start := f.Productions()
	if start != "<VALUE>" {
		t.Errorf("start = %q, want <VALUE>", start)
	}
	if len(productions) != 2 || productions[0].Rhs != "string | <OBJECT>" {
		t.Errorf("productions = %v", productions)
	}
}
