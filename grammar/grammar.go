// Package grammar compiles a BNF style context-free grammar into an LL(1)
// parse table.
//
// Any grammar can be given; grammars that are not LL(1) — left recursive,
// not left factored, or ambiguous — are not rejected, they simply produce
// parse table cells holding more than one rule index. Conflict cells are
// data for the caller to report, never an error here.
package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidValue indicates a well-typed but semantically rejected
// argument: an empty name, no productions, or a start symbol that is not a
// nonterminal of the grammar.
var ErrInvalidValue = errors.New("invalid value")

// Production is one raw input production: a nonterminal and its
// alternatives separated by '|'. An empty alternative denotes epsilon.
type Production struct {
	Lhs string
	Rhs string
}

// Rule is one normalized production: a nonterminal and a single
// whitespace-tokenized alternative. An empty Rhs is an epsilon rule.
type Rule struct {
	Lhs string
	Rhs []string
}

// RuleSet holds sorted rule indices; a parse table cell with more than one
// index is an LL(1) conflict.
type RuleSet []int

// Grammar is the compiled parser artifact: the classified symbol sets, the
// normalized rules in declaration order, the FIRST and FOLLOW sets, and
// the parse table. It is immutable once built and every accessor returns a
// copy.
type Grammar struct {
	name  string
	start string

	terminals    map[string]struct{}
	nonterminals map[string]struct{}
	rules        []Rule

	first  map[string]SymbolSet
	follow map[string]SymbolSet

	cells [][]cellSet
	rows  map[string]int
	cols  map[Symbol]int
}

// cellSet is the mutable cell representation used during construction.
type cellSet map[int]struct{}

// New compiles the productions into a Grammar. Productions keep their
// order: rule indices, and therefore table cell contents, are reproducible
// across runs. All validation happens here; accessors of a returned
// Grammar are total and infallible.
func New(name string, productions []Production, start string) (*Grammar, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: grammar name must be non-empty", ErrInvalidValue)
	}
	if start == "" {
		return nil, fmt.Errorf("%w: start symbol must be non-empty", ErrInvalidValue)
	}
	if len(productions) == 0 {
		return nil, fmt.Errorf("%w: grammar needs at least one production", ErrInvalidValue)
	}

	g := &Grammar{name: name, start: start}

	for _, p := range productions {
		if p.Lhs == "" {
			return nil, fmt.Errorf("%w: production nonterminal must be non-empty", ErrInvalidValue)
		}
		for _, alternative := range strings.Split(p.Rhs, "|") {
			g.rules = append(g.rules, Rule{Lhs: p.Lhs, Rhs: strings.Fields(alternative)})
		}
	}

	g.classifySymbols()
	if _, ok := g.nonterminals[start]; !ok {
		return nil, fmt.Errorf("%w: start symbol %q has no production", ErrInvalidValue, start)
	}

	g.computeFirst()
	g.computeFollow()
	g.buildTable()
	return g, nil
}

// Name returns the grammar's name.
func (g *Grammar) Name() string { return g.name }

// Start returns the start symbol.
func (g *Grammar) Start() string { return g.start }

// Terminals returns the sorted terminal symbols.
func (g *Grammar) Terminals() []string { return sortedKeys(g.terminals) }

// Nonterminals returns the sorted nonterminal symbols.
func (g *Grammar) Nonterminals() []string { return sortedKeys(g.nonterminals) }

// Rules returns the normalized rules in declaration order.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	for i, r := range g.rules {
		rhs := make([]string, len(r.Rhs))
		copy(rhs, r.Rhs)
		out[i] = Rule{Lhs: r.Lhs, Rhs: rhs}
	}
	return out
}

// First returns the FIRST set of every symbol. Terminal FIRST sets are the
// terminal itself; a nonterminal's set holds Epsilon iff it derives the
// empty string.
func (g *Grammar) First() map[string]SymbolSet {
	out := make(map[string]SymbolSet, len(g.first))
	for sym, set := range g.first {
		out[sym] = set.clone()
	}
	return out
}

// Follow returns the FOLLOW set of every nonterminal. The start symbol's
// set always holds EOI.
func (g *Grammar) Follow() map[string]SymbolSet {
	out := make(map[string]SymbolSet, len(g.follow))
	for sym, set := range g.follow {
		out[sym] = set.clone()
	}
	return out
}

// Predict returns the predict set of a rule: the terminals (and possibly
// EOI) on which the rule is the chosen expansion of its nonterminal.
func (g *Grammar) Predict(rule int) SymbolSet {
	r := g.rules[rule]
	predict := g.firstOfSequence(r.Rhs)
	if predict.Has(Epsilon) {
		delete(predict, Epsilon)
		predict.union(g.follow[r.Lhs])
	}
	return predict
}

// Table returns the parse table: cells indexed by [row][col] holding the
// applicable rule indices, rows mapping nonterminals to row indices, and
// cols mapping terminals plus EOI to column indices. Cells with more than
// one rule index are LL(1) conflicts, preserved as data. All returned
// values are copies.
func (g *Grammar) Table() (cells [][]RuleSet, rows map[string]int, cols map[Symbol]int) {
	cells = make([][]RuleSet, len(g.cells))
	for i, row := range g.cells {
		cells[i] = make([]RuleSet, len(row))
		for j, cell := range row {
			indices := make(RuleSet, 0, len(cell))
			for r := range cell {
				indices = append(indices, r)
			}
			sort.Ints(indices)
			cells[i][j] = indices
		}
	}

	rows = make(map[string]int, len(g.rows))
	for n, i := range g.rows {
		rows[n] = i
	}
	cols = make(map[Symbol]int, len(g.cols))
	for t, i := range g.cols {
		cols[t] = i
	}
	return cells, rows, cols
}

// HasConflicts reports whether any table cell holds more than one rule,
// i.e. whether the grammar is outside LL(1).
func (g *Grammar) HasConflicts() bool {
	for _, row := range g.cells {
		for _, cell := range row {
			if len(cell) > 1 {
				return true
			}
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
