// Package literal extracts literal string sets from compiled patterns.
//
// A pattern whose language is a finite set of strings (keywords, operators,
// punctuation) needs no automaton at all to pre-scan input; the extracted
// set feeds a multi-pattern Aho-Corasick prefilter published next to the
// compiled DFA.
package literal

import "sort"

// DefaultLimit bounds the number of literals extracted per pattern before
// extraction gives up. Alternations and classes multiply under
// concatenation, so unbounded extraction could explode on patterns like
// [a-z][a-z][a-z].
const DefaultLimit = 256

// Seq is a set of alternative literals extracted from one pattern. Exact
// is true when the set is the pattern's entire language; when false the
// pattern matches strings outside the set and the set must not be used as
// a filter.
type Seq struct {
	literals map[string]struct{}
	exact    bool
}

// Exact reports whether the literal set covers the pattern's language.
func (s *Seq) Exact() bool { return s.exact }

// Len returns the number of distinct literals.
func (s *Seq) Len() int { return len(s.literals) }

// Literals returns the sorted literal strings.
func (s *Seq) Literals() []string {
	out := make([]string, 0, len(s.literals))
	for lit := range s.literals {
		out = append(out, lit)
	}
	sort.Strings(out)
	return out
}

func exactSeq(lits map[string]struct{}) *Seq { return &Seq{literals: lits, exact: true} }

// inexact marks a pattern whose language is infinite or too large to
// enumerate.
func inexact() *Seq { return &Seq{exact: false} }
