// Package runner drives the command line interface: flag parsing,
// specification file reading, compilation, and writing generated output.
//
// Handled failures are reported on stdout and the process still exits 0,
// preserving the behavior scripts built around the original tool depend
// on. Only the runner does I/O; the compilers stay pure.
package runner

import (
	"os"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/spag/emit"
	"github.com/coregx/spag/grammar"
	"github.com/coregx/spag/scanner"
	"github.com/coregx/spag/spec"
)

const defaultOutput = "out"

// Options holds the parsed command line flags.
type Options struct {
	Generate goflags.StringSlice // target languages
	Output   string              // base filename for generated output
	Scanner  string              // scanner specification file
	Parser   string              // parser specification file
	Config   string              // optional yaml config with defaults
	Force    bool                // overwrite existing output files
	Time     bool                // report wall time per stage
	Verbose  bool
}

// ParseFlags parses the command line into Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generate scanners (regex -> minimal DFA) and LL(1) parsers (BNF -> parse table) from declarative specifications.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Scanner, "scanner", "s", "", "file containing scanner name and type/pattern pairs"),
		flagSet.StringVarP(&opts.Parser, "parser", "p", "", "file containing parser name and LL(1) BNF grammar"),
		flagSet.StringVar(&opts.Config, "config", "", "yaml config file with default flag values"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringSliceVarP(&opts.Generate, "generate", "g", nil, "target language(s) for code generation", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Output, "output", "o", defaultOutput, "base filename to use for generated output"),
		flagSet.BoolVarP(&opts.Force, "force", "f", false, "overwrite output file(s) if already present"),
		flagSet.BoolVarP(&opts.Time, "time", "t", false, "display the wall time taken for each component"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "output more information when running"),
		flagSet.CallbackVarP(printVersion, "version", "V", "show version information and exit"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Error().Msgf("could not read flags: %s", err)
		os.Exit(0)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if opts.Config != "" {
		if err := loadConfig(opts.Config, opts); err != nil {
			gologger.Error().Msgf("could not read config file: %s", err)
		}
	}
	return opts
}

func printVersion() {
	showBanner()
	gologger.Info().Msgf("spag version %s", version)
	os.Exit(0)
}

// Run compiles the requested specifications and writes generated output.
// Every failure is handled: it is logged and Run returns, leaving the
// process to exit 0.
func Run(opts *Options) {
	if len(opts.Generate) == 0 {
		gologger.Error().Msgf("no target language given, use -g (have %v)", emit.Languages())
		return
	}
	if opts.Scanner == "" && opts.Parser == "" {
		gologger.Error().Msgf("nothing to do: give a scanner (-s) or parser (-p) specification")
		return
	}

	var (
		s   *scanner.Scanner
		g   *grammar.Grammar
		err error
	)

	if opts.Scanner != "" {
		s, err = compileScanner(opts.Scanner, opts.Time)
		if err != nil {
			gologger.Error().Msgf("invalid scanner specification: %s", err)
			return
		}
	}
	if opts.Parser != "" {
		g, err = compileParser(opts.Parser, opts.Time)
		if err != nil {
			gologger.Error().Msgf("invalid parser specification: %s", err)
			return
		}
		if g.HasConflicts() {
			gologger.Info().Msgf("grammar %s is not LL(1): parse table has conflict cells", g.Name())
		}
	}

	for _, language := range opts.Generate {
		generator, err := emit.Lookup(language)
		if err != nil {
			gologger.Error().Msgf("%s", err)
			continue
		}

		gologger.Verbose().Msgf("generating %s code...", language)
		start := time.Now()
		files, err := generator.Generate(s, g, opts.Output)
		if err != nil {
			gologger.Error().Msgf("generating %s code: %s", language, err)
			continue
		}
		if opts.Time {
			gologger.Info().Msgf("elapsed time (generator: %s): %s", language, time.Since(start))
		}

		for name, content := range files {
			writeFile(name, content, opts.Force)
		}
	}
}

func compileScanner(path string, timed bool) (*scanner.Scanner, error) {
	file, err := readSpec(path)
	if err != nil {
		return nil, err
	}
	exprs, err := file.Expressions()
	if err != nil {
		return nil, err
	}

	gologger.Verbose().Msgf("compiling scanner specification %s...", file.Name)
	start := time.Now()
	s, err := scanner.New(file.Name, exprs)
	if err != nil {
		return nil, err
	}
	if timed {
		gologger.Info().Msgf("elapsed time (scanner): %s", time.Since(start))
	}
	return s, nil
}

func compileParser(path string, timed bool) (*grammar.Grammar, error) {
	file, err := readSpec(path)
	if err != nil {
		return nil, err
	}
	productions, startSymbol := file.Productions()

	gologger.Verbose().Msgf("compiling parser specification %s...", file.Name)
	start := time.Now()
	g, err := grammar.New(file.Name, productions, startSymbol)
	if err != nil {
		return nil, err
	}
	if timed {
		gologger.Info().Msgf("elapsed time (parser): %s", time.Since(start))
	}
	return g, nil
}

func readSpec(path string) (*spec.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return spec.Read(f)
}

func writeFile(name, content string, force bool) {
	if _, err := os.Stat(name); err == nil && !force {
		gologger.Info().Msgf("%s already exists; not overwriting (use -f)", name)
		return
	}
	gologger.Verbose().Msgf("writing %s...", name)
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		gologger.Error().Msgf("writing %s: %s", name, err)
	}
}
