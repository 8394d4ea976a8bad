// Package diagnostics formats CLI errors, with ANSI color when the
// destination is a terminal.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"
)

// Reporter writes error and warning lines to a single destination.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter builds a reporter for out, enabling color only when out is
// a terminal and NO_COLOR is unset.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, color: useColor(out)}
}

func useColor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Errorf writes one "error: ..." line.
func (r *Reporter) Errorf(format string, args ...any) {
	if r.color {
		fmt.Fprintf(r.out, "%s%serror:%s ", colorBold, colorRed, colorReset)
	} else {
		fmt.Fprint(r.out, "error: ")
	}
	fmt.Fprintf(r.out, format, args...)
	fmt.Fprintln(r.out)
}

// Warnf writes one "warning: ..." line.
func (r *Reporter) Warnf(format string, args ...any) {
	if r.color {
		fmt.Fprintf(r.out, "%swarning:%s ", colorBold, colorReset)
	} else {
		fmt.Fprint(r.out, "warning: ")
	}
	fmt.Fprintf(r.out, format, args...)
	fmt.Fprintln(r.out)
}
