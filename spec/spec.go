// Package spec reads scanner and parser specification files.
//
// The format is line oriented UTF-8. The first non-blank line holds a
// single whitespace-free token, the specification's name. Every following
// non-blank line is a rule: the first whitespace-separated field is the
// rule name and the rest of the line, right-trimmed, is its body. Blank
// lines are ignored.
//
// For parsers the body is a BNF right-hand side with '|' separating
// alternatives and is kept verbatim. For scanners the body is a regex in
// printable form and is translated into the symbolic atom sequence the
// compiler consumes:
//
//	* + ? | ( )      operators
//	[ ]              character class; inside, '-' is a range and a
//	                 leading '^' negates
//	{ }              repetition interval holding one or two integers
//	\x               the character x as a literal; \t \n \r \f \v \s
//	                 are tab, newline, return, form feed, vertical tab,
//	                 and space
//
// Outside a class '-' and '^' are ordinary literals, and concatenation is
// implicit.
package spec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/spag/grammar"
	"github.com/coregx/spag/regex"
	"github.com/coregx/spag/scanner"
)

// ErrFormat indicates a malformed specification file.
var ErrFormat = errors.New("invalid specification format")

// Rule is one raw NAME BODY line.
type Rule struct {
	Name string
	Body string
}

// File is a parsed specification file.
type File struct {
	Name  string
	Rules []Rule
}

// Read parses a specification from r.
func Read(r io.Reader) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if f.Name == "" {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: name must be a single token", ErrFormat, lineno)
			}
			f.Name = fields[0]
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		cut := strings.IndexAny(trimmed, " \t")
		if cut < 0 {
			return nil, fmt.Errorf("%w: line %d: rule %q has no body", ErrFormat, lineno, fields[0])
		}
		body := strings.Trim(trimmed[cut:], " \t")
		if body == "" {
			return nil, fmt.Errorf("%w: line %d: rule %q has no body", ErrFormat, lineno, fields[0])
		}
		f.Rules = append(f.Rules, Rule{Name: trimmed[:cut], Body: body})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if f.Name == "" {
		return nil, fmt.Errorf("%w: specification must be non-empty", ErrFormat)
	}
	return f, nil
}

// Expressions translates the file's rules into scanner expressions,
// converting each body from printable regex form to atoms.
func (f *File) Expressions() ([]scanner.Expression, error) {
	out := make([]scanner.Expression, 0, len(f.Rules))
	for _, r := range f.Rules {
		p, err := Translate(r.Body)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		out = append(out, scanner.Expression{Name: r.Name, Pattern: p})
	}
	return out, nil
}

// Productions returns the file's rules as grammar productions together
// with the start symbol, which is the first declared nonterminal.
func (f *File) Productions() ([]grammar.Production, string) {
	out := make([]grammar.Production, 0, len(f.Rules))
	for _, r := range f.Rules {
		out = append(out, grammar.Production{Lhs: r.Name, Rhs: r.Body})
	}
	start := ""
	if len(out) > 0 {
		start = out[0].Lhs
	}
	return out, start
}

// Translate converts a printable regex into its symbolic atom sequence.
func Translate(body string) (regex.Pattern, error) {
	var p regex.Pattern
	inClass, inInterval := false, false

	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\\' {
			if i == len(runes)-1 {
				return nil, fmt.Errorf("%w: dangling escape", ErrFormat)
			}
			i++
			p = append(p, regex.Char(unescape(runes[i])))
			continue
		}

		if inInterval {
			switch {
			case r >= '0' && r <= '9':
				n := 0
				for ; i < len(runes) && runes[i] >= '0' && runes[i] <= '9'; i++ {
					n = 10*n + int(runes[i]-'0')
				}
				i--
				p = append(p, regex.Integer(n))
			case r == ',':
				// bound separator, nothing to emit
			case r == '}':
				p = append(p, regex.RightInterval())
				inInterval = false
			default:
				return nil, fmt.Errorf("%w: unexpected %q inside interval", ErrFormat, r)
			}
			continue
		}

		if inClass {
			switch r {
			case ']':
				p = append(p, regex.RightClass())
				inClass = false
			case '-':
				p = append(p, regex.Range())
			case '^':
				if len(p) > 0 && p[len(p)-1].IsOp(regex.OpLeftClass) {
					p = append(p, regex.Negate())
				} else {
					p = append(p, regex.Char(r))
				}
			default:
				p = append(p, regex.Char(r))
			}
			continue
		}

		switch r {
		case '*':
			p = append(p, regex.Star())
		case '+':
			p = append(p, regex.Plus())
		case '?':
			p = append(p, regex.Maybe())
		case '|':
			p = append(p, regex.Alt())
		case '(':
			p = append(p, regex.LeftGroup())
		case ')':
			p = append(p, regex.RightGroup())
		case '[':
			p = append(p, regex.LeftClass())
			inClass = true
		case '{':
			p = append(p, regex.LeftInterval())
			inInterval = true
		case '}':
			return nil, fmt.Errorf("%w: unexpected } outside interval", ErrFormat)
		default:
			p = append(p, regex.Char(r))
		}
	}
	return p, nil
}

func unescape(r rune) rune {
	switch r {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case 's':
		return ' '
	default:
		return r
	}
}
