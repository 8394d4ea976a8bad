// Package cli implements the chimec command surface. Run is the real
// entry point; cmd/chimec wraps it so tests can drive the CLI directly.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/chime/internal/config"
	"github.com/funvibe/chime/internal/diagnostics"
	"github.com/funvibe/chime/internal/emit"
	"github.com/funvibe/chime/internal/runtime"
)

const usage = `chimec - Chime JavaScript emitter

Usage:
  chimec emit <file%s> [flags]   render a serialized tree to JavaScript
  chimec runtime                       print the runtime prelude
  chimec version                       print the tool version

Emit flags:
  -o <path>        output file (default: stdout)
  -runtime         prepend the runtime prelude
  -banner <text>   verbatim line placed at the top of the output
  -config <path>   chime.yaml to use (default: nearest chime.yaml upward
                   from the input file)
`

// Run executes one chimec invocation. Exit codes: 0 ok, 1 operational
// error, 2 usage error.
func Run(args []string, stdout, stderr io.Writer) int {
	rep := diagnostics.NewReporter(stderr)

	if len(args) == 0 {
		fmt.Fprintf(stderr, usage, config.ASTFileExt)
		return 2
	}

	switch args[0] {
	case "emit":
		return runEmit(args[1:], stdout, stderr, rep)
	case "runtime":
		fmt.Fprint(stdout, runtime.Source())
		return 0
	case "version":
		fmt.Fprintln(stdout, "chimec "+config.Version)
		return 0
	case "help", "-h", "--help":
		fmt.Fprintf(stdout, usage, config.ASTFileExt)
		return 0
	default:
		rep.Errorf("unknown command %q", args[0])
		fmt.Fprintf(stderr, usage, config.ASTFileExt)
		return 2
	}
}

func runEmit(args []string, stdout, stderr io.Writer, rep *diagnostics.Reporter) int {
	fs := flag.NewFlagSet("emit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "output file")
	withRuntime := fs.Bool("runtime", false, "prepend the runtime prelude")
	banner := fs.String("banner", "", "verbatim banner line")
	configPath := fs.String("config", "", "chime.yaml path")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		rep.Errorf("emit expects exactly one input file, got %d", fs.NArg())
		return 2
	}
	input := fs.Arg(0)
	if !strings.HasSuffix(input, config.ASTFileExt) {
		rep.Warnf("%s does not look like a %s file", input, config.ASTFileExt)
	}

	opts := emit.Options{Out: *out, Banner: *banner}
	if flagWasSet(fs, "runtime") {
		opts.SetRuntime(*withRuntime)
	}

	if err := applyConfig(&opts, input, *configPath); err != nil {
		rep.Errorf("%v", err)
		return 1
	}

	if opts.Out == "" {
		data, err := os.ReadFile(input)
		if err != nil {
			rep.Errorf("reading %s: %v", input, err)
			return 1
		}
		text, err := emit.Build(data, opts)
		if err != nil {
			rep.Errorf("%s: %v", input, err)
			return 1
		}
		fmt.Fprint(stdout, text)
		return 0
	}

	if err := emit.File(input, opts); err != nil {
		rep.Errorf("%v", err)
		return 1
	}
	return 0
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// applyConfig loads the explicit config file, or the nearest chime.yaml
// above the input when none is given. Missing implicit config is fine;
// a missing explicit one is an error.
func applyConfig(opts *emit.Options, input, explicit string) error {
	path := explicit
	if path == "" {
		found, err := emit.FindConfig(filepath.Dir(input))
		if err != nil {
			return err
		}
		if found == "" {
			return nil
		}
		path = found
	}
	cfg, err := emit.LoadConfig(path)
	if err != nil {
		return err
	}
	cfg.Apply(opts)
	return nil
}
