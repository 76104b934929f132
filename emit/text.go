package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/spag/grammar"
	"github.com/coregx/spag/scanner"
)

func init() {
	Register(Text{})
}

// Text renders the compiled artifacts as human-readable tables. It is the
// reference generator: it exercises every read-only view and documents the
// artifact layout for authors of real target language generators.
type Text struct{}

// Language implements Generator.
func (Text) Language() string { return "text" }

// Generate implements Generator.
func (Text) Generate(s *scanner.Scanner, g *grammar.Grammar, base string) (map[string]string, error) {
	files := map[string]string{}
	if s != nil {
		files[base+".scanner.txt"] = renderScanner(s)
	}
	if g != nil {
		files[base+".parser.txt"] = renderGrammar(g)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("text generator needs a scanner or a parser")
	}
	return files, nil
}

func renderScanner(s *scanner.Scanner) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scanner %s\n\n", s.Name())

	fmt.Fprintf(&b, "start: %d\n", s.Start())
	fmt.Fprintf(&b, "states: %d\n", len(s.States()))
	fmt.Fprintf(&b, "alphabet:%s\n", renderRunes(s.Alphabet()))

	fmt.Fprintf(&b, "types:\n")
	types := s.Types()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %-16s %v\n", name, types[name])
	}

	cols, rows, table := s.Transitions()
	fmt.Fprintf(&b, "transitions:\n")
	fmt.Fprintf(&b, "  %-8s", "")
	for q := 0; q < len(cols); q++ {
		fmt.Fprintf(&b, "%6d", q)
	}
	b.WriteByte('\n')
	for _, r := range s.Alphabet() {
		fmt.Fprintf(&b, "  %-8s", renderRune(r))
		for _, to := range table[rows[r]] {
			fmt.Fprintf(&b, "%6d", to)
		}
		b.WriteByte('\n')
	}

	if _, ok := s.Prefilter(); ok {
		fmt.Fprintf(&b, "prefilter: literal\n")
	}
	return b.String()
}

func renderGrammar(g *grammar.Grammar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "grammar %s\n\n", g.Name())
	fmt.Fprintf(&b, "start: %s\n", g.Start())
	fmt.Fprintf(&b, "terminals: %s\n", strings.Join(g.Terminals(), " "))
	fmt.Fprintf(&b, "nonterminals: %s\n", strings.Join(g.Nonterminals(), " "))

	fmt.Fprintf(&b, "rules:\n")
	for i, r := range g.Rules() {
		rhs := strings.Join(r.Rhs, " ")
		if rhs == "" {
			rhs = "ε"
		}
		fmt.Fprintf(&b, "  %3d  %s -> %s\n", i, r.Lhs, rhs)
	}

	first, follow := g.First(), g.Follow()
	fmt.Fprintf(&b, "first:\n")
	for _, n := range g.Nonterminals() {
		fmt.Fprintf(&b, "  %-16s %s\n", n, renderSymbolSet(first[n]))
	}
	fmt.Fprintf(&b, "follow:\n")
	for _, n := range g.Nonterminals() {
		fmt.Fprintf(&b, "  %-16s %s\n", n, renderSymbolSet(follow[n]))
	}

	cells, rows, cols := g.Table()
	colSyms := make([]grammar.Symbol, len(cols))
	for sym, i := range cols {
		colSyms[i] = sym
	}
	fmt.Fprintf(&b, "table:\n")
	fmt.Fprintf(&b, "  %-16s", "")
	for _, sym := range colSyms {
		fmt.Fprintf(&b, "%-10s", sym)
	}
	b.WriteByte('\n')
	for _, n := range g.Nonterminals() {
		fmt.Fprintf(&b, "  %-16s", n)
		for j := range colSyms {
			cell := cells[rows[n]][j]
			if len(cell) == 0 {
				fmt.Fprintf(&b, "%-10s", ".")
				continue
			}
			parts := make([]string, len(cell))
			for k, idx := range cell {
				parts[k] = fmt.Sprint(idx)
			}
			fmt.Fprintf(&b, "%-10s", strings.Join(parts, ","))
		}
		b.WriteByte('\n')
	}
	if g.HasConflicts() {
		fmt.Fprintf(&b, "conflicts: grammar is not LL(1)\n")
	}
	return b.String()
}

func renderSymbolSet(set grammar.SymbolSet) string {
	parts := make([]string, 0, len(set))
	for sym := range set {
		parts = append(parts, sym.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func renderRunes(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteByte(' ')
		b.WriteString(renderRune(r))
	}
	return b.String()
}

func renderRune(r rune) string {
	switch r {
	case ' ':
		return "' '"
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	default:
		return string(r)
	}
}
