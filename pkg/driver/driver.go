// Package driver implements the compilation entry point from spec.md
// §6.1: Compile(args) maps a command-line invocation to one of five exit
// codes, driving argument parsing (internal/opts), context construction
// (internal/ctx), and diagnostic rendering to an output stream.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/javac-core/internal/ctx"
	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/opts"
)

// ExitCode is the driver's outcome, per spec §6.1.
type ExitCode int

const (
	OK       ExitCode = 0
	ERROR    ExitCode = 1
	CMDERR   ExitCode = 2
	SYSERR   ExitCode = 3
	ABNORMAL ExitCode = 4
)

func (c ExitCode) String() string {
	switch c {
	case OK:
		return "OK"
	case ERROR:
		return "ERROR"
	case CMDERR:
		return "CMDERR"
	case SYSERR:
		return "SYSERR"
	case ABNORMAL:
		return "ABNORMAL"
	default:
		return "UNKNOWN"
	}
}

// Driver wires option parsing, context construction, and diagnostic
// output for one or more Compile invocations. A zero Driver writes to
// os.Stderr; use New to target a different writer (e.g. in tests).
type Driver struct {
	out      io.Writer
	colorize bool
	stages   []Stage
}

// New constructs a Driver writing diagnostics to out. colorize follows
// out's TTY-ness when out is *os.File and is off for any other writer.
func New(out io.Writer) *Driver {
	return &Driver{out: out, colorize: ttyColorize(out)}
}

func ttyColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Std returns a Driver writing to os.Stderr, the default for cmd/javac-core.
func Std() *Driver {
	return New(os.Stderr)
}

// SetStages replaces the pipeline Compile drives after option/context
// setup with an explicit Stage chain (e.g. parse, attribute, resolve,
// lint, each an external or internal collaborator). Production callers
// assemble their own lex/parse front end as a Stage; the lexer/parser
// themselves are out of this package's scope (spec §1: the core is the
// symbol/type/resolve/lint machinery, not file discovery or a full
// javac clone).
func (d *Driver) SetStages(stages ...Stage) {
	d.stages = stages
}

// SetCompileFn is a convenience for wiring a single-function pipeline
// (most tests, and simple embeddings that don't need multiple Stages).
func (d *Driver) SetCompileFn(fn func(c *ctx.Context, sources []string) error) {
	d.stages = []Stage{StageFunc(func(c *ctx.Context, sources []string, prev any) (any, error) {
		return nil, fn(c, sources)
	})}
}

// Compile maps one command-line invocation to an ExitCode, per spec
// §6.1. It never panics outward: an error returned by the wired pipeline
// is reported as SYSERR, and a panic inside it as ABNORMAL.
func (d *Driver) Compile(args []string) (code ExitCode) {
	if d.out == nil {
		d.out = os.Stderr
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(d.out, "fatal error: %v\n", r)
			code = ABNORMAL
		}
	}()

	o, sources, err := opts.Parse(args)
	if err != nil {
		fmt.Fprintln(d.out, err.Error())
		return CMDERR
	}
	if len(sources) == 0 {
		fmt.Fprintln(d.out, "error: no source files")
		return CMDERR
	}

	c := ctx.New(o)

	runErr := d.run(c, sources)
	d.report(c.Diag)

	switch {
	case runErr != nil:
		return SYSERR
	case c.Diag.HasErrors():
		return ERROR
	default:
		return OK
	}
}

func (d *Driver) run(c *ctx.Context, sources []string) error {
	if len(d.stages) == 0 {
		return fmt.Errorf("driver: no compile pipeline configured")
	}
	return runStages(c, sources, d.stages)
}

// report renders every retained diagnostic per the §6.5 raw formatter
// contract, colorizing each whole line by severity when writing to a TTY.
func (d *Driver) report(log *diag.Log) {
	for _, dg := range log.All() {
		line := diag.Format(*dg)
		if d.colorize {
			line = colorForSeverity(dg.Severity) + line + resetColor
		}
		fmt.Fprintln(d.out, line)
	}
}

const resetColor = "\x1b[0m"

func colorForSeverity(s diag.Severity) string {
	switch s {
	case diag.Error:
		return "\x1b[31m" // red
	case diag.Warning, diag.MandatoryWarning:
		return "\x1b[33m" // yellow
	default:
		return ""
	}
}
