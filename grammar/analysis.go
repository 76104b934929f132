package grammar

// classifySymbols splits the grammar's symbols: every left-hand side is a
// nonterminal, and everything appearing on a right-hand side that is not a
// nonterminal is a terminal.
func (g *Grammar) classifySymbols() {
	g.terminals = map[string]struct{}{}
	g.nonterminals = map[string]struct{}{}
	for _, r := range g.rules {
		g.nonterminals[r.Lhs] = struct{}{}
	}
	for _, r := range g.rules {
		for _, sym := range r.Rhs {
			if _, ok := g.nonterminals[sym]; !ok {
				g.terminals[sym] = struct{}{}
			}
		}
	}
}

// firstOfSequence computes the FIRST set of a symbol sequence: Epsilon for
// the empty sequence, otherwise FIRST of the head plus, while the head is
// nullable, FIRST of the tail.
func (g *Grammar) firstOfSequence(seq []string) SymbolSet {
	first := SymbolSet{Epsilon: struct{}{}}
	for _, sym := range seq {
		first.union(g.first[sym])
		if !g.first[sym].Has(Epsilon) {
			delete(first, Epsilon)
			break
		}
	}
	return first
}

// computeFirst iterates the monotone FIRST update to its fixed point.
func (g *Grammar) computeFirst() {
	g.first = map[string]SymbolSet{}
	for t := range g.terminals {
		g.first[t] = SymbolSet{Sym(t): struct{}{}}
	}
	for n := range g.nonterminals {
		g.first[n] = SymbolSet{}
	}

	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if g.first[r.Lhs].union(g.firstOfSequence(r.Rhs)) {
				changed = true
			}
		}
	}
}

// computeFollow iterates the monotone FOLLOW update to its fixed point.
// FOLLOW sets are defined for nonterminals only; the start symbol's set is
// seeded with EOI.
func (g *Grammar) computeFollow() {
	g.follow = map[string]SymbolSet{}
	for n := range g.nonterminals {
		g.follow[n] = SymbolSet{}
	}
	g.follow[g.start].add(EOI)

	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			for i, sym := range r.Rhs {
				if _, ok := g.nonterminals[sym]; !ok {
					continue
				}
				rest := g.firstOfSequence(r.Rhs[i+1:])
				if rest.Has(Epsilon) {
					delete(rest, Epsilon)
					rest.union(g.follow[r.Lhs])
				}
				if g.follow[sym].union(rest) {
					changed = true
				}
			}
		}
	}
}

// buildTable fills the parse table from the predict set of every rule.
// Rows and columns are index maps so emitters can lay the table out as a
// dense 2D array; cells collect every applicable rule so conflicts survive
// construction intact.
func (g *Grammar) buildTable() {
	g.rows = map[string]int{}
	for i, n := range sortedKeys(g.nonterminals) {
		g.rows[n] = i
	}
	g.cols = map[Symbol]int{}
	for i, t := range sortedKeys(g.terminals) {
		g.cols[Sym(t)] = i
	}
	g.cols[EOI] = len(g.cols)

	g.cells = make([][]cellSet, len(g.rows))
	for i := range g.cells {
		row := make([]cellSet, len(g.cols))
		for j := range row {
			row[j] = cellSet{}
		}
		g.cells[i] = row
	}

	for idx, r := range g.rules {
		predict := g.firstOfSequence(r.Rhs)
		if predict.Has(Epsilon) {
			delete(predict, Epsilon)
			predict.union(g.follow[r.Lhs])
		}
		for sym := range predict {
			g.cells[g.rows[r.Lhs]][g.cols[sym]][idx] = struct{}{}
		}
	}
}
