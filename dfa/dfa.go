// Package dfa implements subset construction, sink completion, and
// partition-refinement minimization for the scanner compiler.
//
// A DFA here is always the image of an NFA: states are dense indices, the
// transition function is a dense table over the automaton's own alphabet,
// and accepting states carry the token labels inherited from the NFA
// accepts they cover. The transition table may be partial until Complete
// adds the sink state.
package dfa

import "sort"

// missing marks an undefined transition in a partial table.
const missing int32 = -1

// DFA is a deterministic finite automaton over an explicit code point
// alphabet.
type DFA struct {
	alphabet []rune       // sorted
	symIndex map[rune]int // alphabet rune -> column
	trans    [][]int32    // [state][column] -> state, missing until completed
	labels   []map[string]int
	start    int
	sink     int // -1 when the table was total without completion
}

// Len returns the number of states.
func (d *DFA) Len() int { return len(d.trans) }

// Start returns the start state.
func (d *DFA) Start() int { return d.start }

// Sink returns the sink state index, or -1 when the automaton needed none.
func (d *DFA) Sink() int { return d.sink }

// Alphabet returns the sorted transition alphabet. The slice is owned by
// the automaton.
func (d *DFA) Alphabet() []rune { return d.alphabet }

// Step returns the successor of state q on code point r, or -1 when the
// transition is undefined (possible only before completion, or for a rune
// outside the alphabet).
func (d *DFA) Step(q int, r rune) int {
	col, ok := d.symIndex[r]
	if !ok {
		return -1
	}
	return int(d.trans[q][col])
}

// IsAccepting reports whether q carries at least one token label.
func (d *DFA) IsAccepting(q int) bool { return len(d.labels[q]) > 0 }

// Labels returns the token labels of q with their declaration priorities.
// The map is owned by the automaton.
func (d *DFA) Labels(q int) map[string]int { return d.labels[q] }

// labelKey is the canonical form of a state's label set, used for the
// label-aware initial partition: accepting states whose label sets differ
// must never merge.
func (d *DFA) labelKey(q int) string {
	names := make([]string, 0, len(d.labels[q]))
	for name := range d.labels[q] {
		names = append(names, name)
	}
	sort.Strings(names)
	key := ""
	for _, name := range names {
		key += name + "\x00"
	}
	return key
}

// Complete totals the transition function: if any transition is undefined,
// a fresh non-accepting sink state absorbing every symbol is added and all
// undefined transitions are pointed at it.
func (d *DFA) Complete() {
	d.sink = -1
	partial := false
	for _, row := range d.trans {
		for _, t := range row {
			if t == missing {
				partial = true
			}
		}
	}
	if !partial {
		return
	}

	sink := len(d.trans)
	row := make([]int32, len(d.alphabet))
	for c := range row {
		row[c] = int32(sink)
	}
	d.trans = append(d.trans, row)
	d.labels = append(d.labels, nil)

	for q := 0; q < sink; q++ {
		for c, t := range d.trans[q] {
			if t == missing {
				d.trans[q][c] = int32(sink)
			}
		}
	}
	d.sink = sink
}
