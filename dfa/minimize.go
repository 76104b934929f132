package dfa

import (
	"sort"
	"strconv"
)

// Minimize collapses equivalent states by partition refinement. The initial
// partition separates states by their token label sets, so accepting states
// recognizing different token types never merge even when their residual
// languages coincide. The transition function must be total (Complete must
// have run, or the construction produced a total table).
//
// The language recognized, per label, is unchanged; the result is minimal
// up to renaming of states.
func Minimize(d *DFA) *DFA {
	n := d.Len()

	// Initial partition: one block per distinct label set.
	blockOf := make([]int, n)
	{
		byKey := map[string]int{}
		for q := 0; q < n; q++ {
			key := d.labelKey(q)
			b, ok := byKey[key]
			if !ok {
				b = len(byKey)
				byKey[key] = b
			}
			blockOf[q] = b
		}
	}

	// Refine until the partition is a fixed point: states stay together
	// only while every symbol sends them to the same block.
	for {
		bySig := map[string]int{}
		next := make([]int, n)
		for q := 0; q < n; q++ {
			sig := signature(d, blockOf, q)
			b, ok := bySig[sig]
			if !ok {
				b = len(bySig)
				bySig[sig] = b
			}
			next[q] = b
		}
		if len(bySig) == countBlocks(blockOf) {
			blockOf = next
			break
		}
		blockOf = next
	}

	// Rebuild the automaton over block representatives, numbering blocks
	// in order of first appearance for stable output.
	blocks := countBlocks(blockOf)
	rep := make([]int, blocks)
	for i := range rep {
		rep[i] = -1
	}
	for q := 0; q < n; q++ {
		if rep[blockOf[q]] == -1 {
			rep[blockOf[q]] = q
		}
	}

	min := &DFA{
		alphabet: d.alphabet,
		symIndex: d.symIndex,
		trans:    make([][]int32, blocks),
		labels:   make([]map[string]int, blocks),
		start:    blockOf[d.start],
		sink:     -1,
	}
	if d.sink >= 0 {
		min.sink = blockOf[d.sink]
	}

	for b := 0; b < blocks; b++ {
		q := rep[b]
		row := make([]int32, len(d.alphabet))
		for c := range row {
			row[c] = int32(blockOf[d.trans[q][c]])
		}
		min.trans[b] = row
		min.labels[b] = mergeLabels(d, blockOf, b)
	}
	return min
}

// signature encodes a state's current block together with the blocks its
// transitions lead to.
func signature(d *DFA, blockOf []int, q int) string {
	sig := make([]byte, 0, 4*(len(d.alphabet)+1))
	sig = strconv.AppendInt(sig, int64(blockOf[q]), 36)
	for _, t := range d.trans[q] {
		sig = append(sig, '.')
		sig = strconv.AppendInt(sig, int64(blockOf[t]), 36)
	}
	return string(sig)
}

func countBlocks(blockOf []int) int {
	max := -1
	for _, b := range blockOf {
		if b > max {
			max = b
		}
	}
	return max + 1
}

// mergeLabels unions the labels of every state in a block. The label sets
// are identical by construction; only the priorities need folding.
func mergeLabels(d *DFA, blockOf []int, b int) map[string]int {
	var merged map[string]int
	for q := 0; q < d.Len(); q++ {
		if blockOf[q] != b {
			continue
		}
		for name, prio := range d.labels[q] {
			if merged == nil {
				merged = map[string]int{}
			}
			if old, ok := merged[name]; !ok || prio < old {
				merged[name] = prio
			}
		}
	}
	return merged
}

// SortedLabels returns the token labels of q ordered by declaration
// priority, earliest declared first.
func (d *DFA) SortedLabels(q int) []string {
	names := make([]string, 0, len(d.labels[q]))
	for name := range d.labels[q] {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := d.labels[q][names[i]], d.labels[q][names[j]]
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}
