package dfa

// Isomorphic reports whether two automata are equal up to state renaming:
// same alphabet, same state/accept counts, and a bijection between state
// sets preserving the start state, transitions, and token label sets.
//
// Determinism makes the check cheap: the only candidate bijection is the
// one discovered by walking both automata from their start states in
// lockstep alphabet order.
func Isomorphic(a, b *DFA) bool {
	if a.Len() != b.Len() || len(a.alphabet) != len(b.alphabet) {
		return false
	}
	for i, r := range a.alphabet {
		if b.alphabet[i] != r {
			return false
		}
	}

	toB := make([]int, a.Len())
	for i := range toB {
		toB[i] = -1
	}
	seen := make([]bool, b.Len())

	var queue [][2]int
	match := func(qa, qb int) bool {
		if toB[qa] == -1 && !seen[qb] {
			toB[qa] = qb
			seen[qb] = true
			queue = append(queue, [2]int{qa, qb})
			return true
		}
		return toB[qa] == qb
	}

	if !match(a.start, b.start) {
		return false
	}
	for len(queue) > 0 {
		qa, qb := queue[0][0], queue[0][1]
		queue = queue[1:]

		if !sameLabels(a.labels[qa], b.labels[qb]) {
			return false
		}
		for c := range a.alphabet {
			ta, tb := a.trans[qa][c], b.trans[qb][c]
			if (ta == missing) != (tb == missing) {
				return false
			}
			if ta == missing {
				continue
			}
			if !match(int(ta), int(tb)) {
				return false
			}
		}
	}
	return true
}

func sameLabels(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}
