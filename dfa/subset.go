package dfa

import (
	"sort"
	"strconv"

	"github.com/coregx/spag/internal/sparse"
	"github.com/coregx/spag/nfa"
)

// FromNFA runs the subset construction: DFA states are epsilon-closures of
// NFA state sets, and the alphabet is the set of code points actually
// appearing in the NFA. The resulting table is partial; callers wanting a
// total transition function follow up with Complete.
func FromNFA(n *nfa.NFA) *DFA {
	alphabet := n.Alphabet()
	symIndex := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		symIndex[r] = i
	}

	d := &DFA{
		alphabet: alphabet,
		symIndex: symIndex,
		sink:     -1,
	}

	closure := sparse.New(uint32(n.Len()))

	epsilonClosure(n, []nfa.StateID{n.Start()}, closure)
	startSet := canonical(closure)

	index := map[string]int{}
	var subsets [][]uint32

	addState := func(set []uint32) int {
		key := subsetKey(set)
		if q, ok := index[key]; ok {
			return q
		}
		q := len(subsets)
		index[key] = q
		subsets = append(subsets, set)
		row := make([]int32, len(alphabet))
		for c := range row {
			row[c] = missing
		}
		d.trans = append(d.trans, row)
		d.labels = append(d.labels, subsetLabels(n, set))
		return q
	}

	d.start = addState(startSet)

	for q := 0; q < len(subsets); q++ {
		for c, r := range alphabet {
			var moved []nfa.StateID
			for _, id := range subsets[q] {
				moved = append(moved, n.Move(nfa.StateID(id), r)...)
			}
			if len(moved) == 0 {
				continue
			}
			epsilonClosure(n, moved, closure)
			d.trans[q][c] = int32(addState(canonical(closure)))
		}
	}
	return d
}

// epsilonClosure fills dst with every state reachable from the seeds
// through epsilon transitions alone.
func epsilonClosure(n *nfa.NFA, seeds []nfa.StateID, dst *sparse.Set) {
	dst.Clear()
	for _, q := range seeds {
		dst.Insert(uint32(q))
	}
	// The dense member list doubles as the work queue.
	for i := 0; i < dst.Len(); i++ {
		q := dst.Values()[i]
		for _, next := range n.Epsilon(nfa.StateID(q)) {
			dst.Insert(uint32(next))
		}
	}
}

// canonical returns the closure members as a fresh sorted slice.
func canonical(set *sparse.Set) []uint32 {
	out := make([]uint32, set.Len())
	copy(out, set.Values())
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// subsetKey renders a sorted subset as a map key.
func subsetKey(set []uint32) string {
	key := make([]byte, 0, 4*len(set))
	for _, q := range set {
		key = strconv.AppendUint(key, uint64(q), 36)
		key = append(key, ',')
	}
	return string(key)
}

// subsetLabels unions the accept labels of the NFA states in the subset,
// keeping the smallest declaration priority per token type.
func subsetLabels(n *nfa.NFA, set []uint32) map[string]int {
	var labels map[string]int
	for _, q := range set {
		acc, ok := n.Accept(nfa.StateID(q))
		if !ok {
			continue
		}
		if labels == nil {
			labels = map[string]int{}
		}
		if prio, seen := labels[acc.Type]; !seen || acc.Priority < prio {
			labels[acc.Type] = acc.Priority
		}
	}
	return labels
}
