// Package spag compiles declarative specifications into the two artifacts
// a recognizer generator needs: a minimal DFA labeling token types, and an
// LL(1) parse table with conflict cells preserved.
//
// The two compilers are independent and share no state; compile scanners
// and grammars concurrently if you like. Construction validates
// everything; a returned artifact is immutable and all of its accessors
// are total.
//
// Most users want the subpackages directly — scanner, grammar, spec for
// reading specification files, and emit for rendering artifacts. This
// package only bundles the two entry points.
package spag

import (
	"github.com/coregx/spag/grammar"
	"github.com/coregx/spag/scanner"
)

// Version is the library version.
const Version = "0.1.0"

// CompileScanner compiles named token patterns into a scanner artifact.
// Pattern declaration order decides label precedence when several patterns
// accept the same input.
func CompileScanner(name string, exprs []scanner.Expression) (*scanner.Scanner, error) {
	return scanner.New(name, exprs)
}

// CompileGrammar compiles BNF productions into a parser artifact. The
// grammar need not be LL(1); conflicts end up as multi-rule cells in the
// parse table.
func CompileGrammar(name string, productions []grammar.Production, start string) (*grammar.Grammar, error) {
	return grammar.New(name, productions, start)
}
