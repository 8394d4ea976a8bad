package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/chime/internal/astio"
	"github.com/funvibe/chime/internal/printer"
	"github.com/funvibe/chime/internal/runtime"
)

// Options controls one emission.
type Options struct {
	// Out is the output path; empty means the caller writes the result
	// itself (stdout).
	Out string

	// Runtime prepends the runtime prelude to the output.
	Runtime bool

	// Banner is a verbatim line placed before everything else.
	Banner string

	runtimeSet bool
}

// SetRuntime records an explicit runtime choice so a config file cannot
// override it.
func (o *Options) SetRuntime(v bool) {
	o.Runtime = v
	o.runtimeSet = true
}

// Build decodes a serialized tree and renders the final output text.
func Build(astData []byte, opts Options) (string, error) {
	stmts, err := astio.DecodeProgram(astData)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if opts.Banner != "" {
		sb.WriteString(opts.Banner)
		if !strings.HasSuffix(opts.Banner, "\n") {
			sb.WriteByte('\n')
		}
	}
	if opts.Runtime {
		sb.WriteString(runtime.Source())
		if !strings.HasSuffix(runtime.Source(), "\n") {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(printer.PrintProgram(stmts))
	return sb.String(), nil
}

// File reads the AST at astPath, builds the output and writes it to
// opts.Out. The write is atomic: a uuid-suffixed temp file in the target
// directory, then a rename.
func File(astPath string, opts Options) error {
	if opts.Out == "" {
		return fmt.Errorf("emit: no output path")
	}
	data, err := os.ReadFile(astPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", astPath, err)
	}
	text, err := Build(data, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", astPath, err)
	}
	if err := writeAtomic(opts.Out, []byte(text)); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Out, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
