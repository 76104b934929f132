// Package nfa provides the Thompson NFA construction used by the scanner
// compiler.
//
// States are opaque dense identifiers. Transitions form a relation over
// code points plus epsilon; fragments produced during construction always
// have exactly one entry and one exit, and a finished automaton has exactly
// one start state.
package nfa

import (
	"errors"
	"sort"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// ErrConstruction indicates a malformed postfix stream reached the builder.
var ErrConstruction = errors.New("NFA construction failed")

// Accept carries the token information attached to an accepting state. The
// priority is the declaration index of the pattern; lower wins ties when a
// DFA state covers accepts of several patterns.
type Accept struct {
	Type     string
	Priority int
}

// state is a single NFA state: consuming transitions keyed by code point
// plus epsilon transitions.
type state struct {
	edges map[rune][]StateID
	eps   []StateID
}

// NFA is a non-deterministic finite automaton with labeled accepts.
type NFA struct {
	states  []state
	start   StateID
	accepts map[StateID]Accept
}

// Builder constructs NFAs incrementally using a low-level API.
type Builder struct {
	states []state
}

// NewBuilder creates a new NFA builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]state, 0, 16)}
}

// AddState adds a fresh state with no transitions and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, state{})
	return id
}

// AddTransition adds a consuming transition from one state to another on
// the given code point.
func (b *Builder) AddTransition(from StateID, r rune, to StateID) {
	s := &b.states[from]
	if s.edges == nil {
		s.edges = make(map[rune][]StateID)
	}
	s.edges[r] = append(s.edges[r], to)
}

// AddEpsilon adds an epsilon transition from one state to another.
func (b *Builder) AddEpsilon(from, to StateID) {
	s := &b.states[from]
	s.eps = append(s.eps, to)
}

// Build finalizes the automaton with the given start state and accept
// labeling. The builder must not be reused afterwards.
func (b *Builder) Build(start StateID, accepts map[StateID]Accept) *NFA {
	return &NFA{states: b.states, start: start, accepts: accepts}
}

// Len returns the number of states.
func (n *NFA) Len() int { return len(n.states) }

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// Epsilon returns the epsilon successors of a state. The returned slice is
// owned by the automaton.
func (n *NFA) Epsilon(q StateID) []StateID { return n.states[q].eps }

// Move returns the states reachable from q by consuming r. The returned
// slice is owned by the automaton.
func (n *NFA) Move(q StateID, r rune) []StateID { return n.states[q].edges[r] }

// Accept returns the token label of q, if q is an accepting state.
func (n *NFA) Accept(q StateID) (Accept, bool) {
	acc, ok := n.accepts[q]
	return acc, ok
}

// Alphabet returns the sorted set of code points appearing on any
// transition.
func (n *NFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range n.states {
		for r := range s.edges {
			seen[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
