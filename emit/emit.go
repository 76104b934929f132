// Package emit defines the interface between the compilers and the code
// generators that consume their artifacts.
//
// Generators only see the read-only views of the compiled Scanner and
// Grammar; they never reach into compiler internals. The package keeps a
// registry of generators keyed by target language name so the CLI can
// resolve -g flags dynamically.
package emit

import (
	"fmt"
	"sort"

	"github.com/coregx/spag/grammar"
	"github.com/coregx/spag/scanner"
)

// Generator renders compiled artifacts into target language source. Either
// artifact may be nil when the corresponding specification was not given;
// a generator decides for itself whether that is acceptable.
type Generator interface {
	// Language returns the registry key, e.g. "text" or "go".
	Language() string

	// Generate renders the artifacts into output files, keyed by file
	// name relative to the output base.
	Generate(s *scanner.Scanner, g *grammar.Grammar, base string) (map[string]string, error)
}

var registry = map[string]Generator{}

// Register makes a generator available to Lookup under its language name.
// Registering the same language twice panics, mirroring database/sql.
func Register(g Generator) {
	if _, dup := registry[g.Language()]; dup {
		panic(fmt.Sprintf("emit: generator %q registered twice", g.Language()))
	}
	registry[g.Language()] = g
}

// Lookup resolves a generator by language name.
func Lookup(language string) (Generator, error) {
	g, ok := registry[language]
	if !ok {
		return nil, fmt.Errorf("no generator for language %q (have %v)", language, Languages())
	}
	return g, nil
}

// Languages returns the registered language names, sorted.
func Languages() []string {
	out := make([]string, 0, len(registry))
	for lang := range registry {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
