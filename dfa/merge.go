package dfa

import "github.com/coregx/spag/nfa"

// MergeNFA combines independently compiled per-pattern automata into one
// NFA: a fresh start state is epsilon-linked to every pattern's start, and
// each accepting state keeps its pattern label. Sink states are dropped in
// the process; the combined automaton is re-determinized afterwards and
// completed again if needed.
func MergeNFA(ds []*DFA) *nfa.NFA {
	b := nfa.NewBuilder()
	start := b.AddState()
	accepts := map[nfa.StateID]nfa.Accept{}

	for _, d := range ds {
		ids := make([]nfa.StateID, d.Len())
		for q := 0; q < d.Len(); q++ {
			if q == d.sink {
				ids[q] = nfa.InvalidState
				continue
			}
			ids[q] = b.AddState()
		}

		b.AddEpsilon(start, ids[d.start])

		for q := 0; q < d.Len(); q++ {
			if q == d.sink {
				continue
			}
			for c, t := range d.trans[q] {
				if t == missing || int(t) == d.sink {
					continue
				}
				b.AddTransition(ids[q], d.alphabet[c], ids[t])
			}
			for name, prio := range d.labels[q] {
				acc, ok := accepts[ids[q]]
				if !ok || prio < acc.Priority {
					accepts[ids[q]] = nfa.Accept{Type: name, Priority: prio}
				}
			}
		}
	}

	return b.Build(start, accepts)
}
