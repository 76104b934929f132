// Package scanner compiles named token patterns into a single minimal DFA.
//
// Construction runs the full pipeline for every pattern — validation,
// class and interval expansion, postfix conversion, Thompson construction,
// subset construction, minimization — and then merges the per-pattern
// automata into one DFA whose accepting states carry token type labels.
// A Scanner is immutable once built, so the artifact can be shared between
// emitters without synchronization. Its accessors return copies, except DFA
// and Prefilter, which return the underlying automata.
package scanner

import (
	"fmt"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/spag/dfa"
	"github.com/coregx/spag/literal"
	"github.com/coregx/spag/nfa"
	"github.com/coregx/spag/regex"
)

// SinkType is the reserved token type labeling the sink state when the
// merged automaton needs one. It cannot be used as a pattern name.
const SinkType = "_sink"

// StateID is an opaque handle to a DFA state.
type StateID uint32

// Expression is one named token pattern. Declaration order is significant:
// when several patterns accept in the same DFA state, the earliest declared
// type wins ties.
type Expression struct {
	Name    string
	Pattern regex.Pattern
}

// ExpressionError wraps a pattern compilation failure with the name of the
// offending expression.
type ExpressionError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	return fmt.Sprintf("expression %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExpressionError) Unwrap() error { return e.Err }

// Scanner is the compiled scanner artifact: a minimal, complete DFA over
// the code points used by the patterns, plus the token type labeling of
// its accepting states.
type Scanner struct {
	name  string
	exprs []Expression
	dfa   *dfa.DFA

	prefilter *ahocorasick.Automaton
}

// New compiles the named patterns into a Scanner. All validation happens
// here; the accessors of a returned Scanner are total and infallible.
func New(name string, exprs []Expression) (*Scanner, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: scanner name must be non-empty", regex.ErrInvalidValue)
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("%w: scanner needs at least one expression", regex.ErrInvalidValue)
	}

	seen := map[string]struct{}{}
	for _, e := range exprs {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: expression name must be non-empty", regex.ErrInvalidValue)
		}
		if e.Name == SinkType {
			return nil, fmt.Errorf("%w: expression name %q is reserved", regex.ErrInvalidValue, SinkType)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate expression name %q", regex.ErrInvalidValue, e.Name)
		}
		seen[e.Name] = struct{}{}
		if len(e.Pattern) == 0 {
			return nil, &ExpressionError{Name: e.Name, Err: fmt.Errorf("%w: empty pattern", regex.ErrInvalidValue)}
		}
	}

	singles := make([]*dfa.DFA, 0, len(exprs))
	seqs := make([]*literal.Seq, 0, len(exprs))
	for i, e := range exprs {
		postfix, err := regex.Postfix(e.Pattern)
		if err != nil {
			return nil, &ExpressionError{Name: e.Name, Err: err}
		}
		auto, err := nfa.Compile(postfix, nfa.Accept{Type: e.Name, Priority: i})
		if err != nil {
			return nil, &ExpressionError{Name: e.Name, Err: err}
		}
		single := dfa.FromNFA(auto)
		single.Complete()
		singles = append(singles, dfa.Minimize(single))
		seqs = append(seqs, literal.Extract(postfix, 0))
	}

	merged := dfa.FromNFA(dfa.MergeNFA(singles))
	merged.Complete()

	s := &Scanner{
		name:  name,
		exprs: copyExpressions(exprs),
		dfa:   dfa.Minimize(merged),
	}
	s.prefilter = buildPrefilter(seqs)
	return s, nil
}

// buildPrefilter assembles a multi-pattern literal matcher when every
// expression's language turned out to be a finite literal set. Any
// unbounded pattern disables the prefilter: a filter that can miss matches
// of one token type would lie about the input.
func buildPrefilter(seqs []*literal.Seq) *ahocorasick.Automaton {
	b := ahocorasick.NewBuilder()
	added := 0
	for _, seq := range seqs {
		if !seq.Exact() {
			return nil
		}
		for _, lit := range seq.Literals() {
			if lit == "" {
				continue
			}
			b.AddPattern([]byte(lit))
			added++
		}
	}
	if added == 0 {
		return nil
	}
	auto, err := b.Build()
	if err != nil {
		return nil
	}
	return auto
}

// Name returns the scanner's name.
func (s *Scanner) Name() string { return s.name }

// Expressions returns a copy of the compiled expressions in declaration
// order.
func (s *Scanner) Expressions() []Expression { return copyExpressions(s.exprs) }

// Alphabet returns the sorted set of code points the automaton transitions
// on.
func (s *Scanner) Alphabet() []rune {
	out := make([]rune, len(s.dfa.Alphabet()))
	copy(out, s.dfa.Alphabet())
	return out
}

// States returns every state handle.
func (s *Scanner) States() []StateID {
	out := make([]StateID, s.dfa.Len())
	for q := range out {
		out[q] = StateID(q)
	}
	return out
}

// Start returns the start state.
func (s *Scanner) Start() StateID { return StateID(s.dfa.Start()) }

// Accepting returns the accepting states in ascending order.
func (s *Scanner) Accepting() []StateID {
	var out []StateID
	for q := 0; q < s.dfa.Len(); q++ {
		if s.dfa.IsAccepting(q) {
			out = append(out, StateID(q))
		}
	}
	return out
}

// Types maps every token type to the states accepting it. A state appears
// under several types when distinct patterns share a language; declaration
// order (see TypeOf) breaks such ties. The reserved _sink type identifies
// the sink state when one exists.
func (s *Scanner) Types() map[string][]StateID {
	out := map[string][]StateID{}
	for q := 0; q < s.dfa.Len(); q++ {
		for name := range s.dfa.Labels(q) {
			out[name] = append(out[name], StateID(q))
		}
	}
	if sink := s.dfa.Sink(); sink >= 0 {
		out[SinkType] = []StateID{StateID(sink)}
	}
	for name := range out {
		sort.Slice(out[name], func(i, j int) bool { return out[name][i] < out[name][j] })
	}
	return out
}

// TypeOf returns the winning token type of an accepting state: the earliest
// declared among its labels. The second result is false for non-accepting
// states.
func (s *Scanner) TypeOf(q StateID) (string, bool) {
	names := s.dfa.SortedLabels(int(q))
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// Transitions returns the transition table: cols maps each state to its
// column, rows maps each alphabet code point to its row, and table[r][c]
// is the successor state. The table is total; all three values are copies.
func (s *Scanner) Transitions() (cols map[StateID]int, rows map[rune]int, table [][]StateID) {
	alphabet := s.dfa.Alphabet()

	cols = make(map[StateID]int, s.dfa.Len())
	for q := 0; q < s.dfa.Len(); q++ {
		cols[StateID(q)] = q
	}
	rows = make(map[rune]int, len(alphabet))
	table = make([][]StateID, len(alphabet))
	for i, r := range alphabet {
		rows[r] = i
		row := make([]StateID, s.dfa.Len())
		for q := 0; q < s.dfa.Len(); q++ {
			row[q] = StateID(s.dfa.Step(q, r))
		}
		table[i] = row
	}
	return cols, rows, table
}

// Prefilter returns the multi-pattern literal automaton covering every
// token type, or false when any pattern's language is infinite or too
// large to enumerate.
func (s *Scanner) Prefilter() (*ahocorasick.Automaton, bool) {
	return s.prefilter, s.prefilter != nil
}

// DFA exposes the underlying automaton for equivalence checks and
// emitters working below the table view.
func (s *Scanner) DFA() *dfa.DFA { return s.dfa }

func copyExpressions(exprs []Expression) []Expression {
	out := make([]Expression, len(exprs))
	for i, e := range exprs {
		p := make(regex.Pattern, len(e.Pattern))
		copy(p, e.Pattern)
		out[i] = Expression{Name: e.Name, Pattern: p}
	}
	return out
}
