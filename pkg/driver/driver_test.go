package driver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/funvibe/javac-core/internal/ctx"
	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/source"
	"github.com/funvibe/javac-core/pkg/driver"
)

func TestCompileNoSourcesIsCmdErr(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	if got := d.Compile([]string{"-Werror"}); got != driver.CMDERR {
		t.Fatalf("expected CMDERR, got %v", got)
	}
}

func TestCompileBadOptionIsCmdErr(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	if got := d.Compile([]string{"-Xlint:bogus", "Main.java"}); got != driver.CMDERR {
		t.Fatalf("expected CMDERR for a malformed option, got %v", got)
	}
}

func TestCompileSuccessIsOK(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	d.SetCompileFn(func(c *ctx.Context, sources []string) error {
		return nil
	})
	if got := d.Compile([]string{"Main.java"}); got != driver.OK {
		t.Fatalf("expected OK, got %v", got)
	}
}

func TestCompileDiagErrorIsERROR(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	d.SetCompileFn(func(c *ctx.Context, sources []string) error {
		c.Diag.Report(diag.Diagnostic{Severity: diag.Error, Key: "compiler.err.cant.resolve", Source: source.NoSource})
		return nil
	})
	if got := d.Compile([]string{"Main.java"}); got != driver.ERROR {
		t.Fatalf("expected ERROR, got %v", got)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected the diagnostic to be rendered to output")
	}
}

func TestCompilePipelineFailureIsSYSERR(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	d.SetCompileFn(func(c *ctx.Context, sources []string) error {
		return errors.New("disk exploded")
	})
	if got := d.Compile([]string{"Main.java"}); got != driver.SYSERR {
		t.Fatalf("expected SYSERR, got %v", got)
	}
}

func TestCompileUnconfiguredPipelineIsSYSERR(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	if got := d.Compile([]string{"Main.java"}); got != driver.SYSERR {
		t.Fatalf("expected SYSERR when no compile function is wired, got %v", got)
	}
}

func TestCompilePanicIsABNORMAL(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(&buf)
	d.SetCompileFn(func(c *ctx.Context, sources []string) error {
		panic("unreachable")
	})
	if got := d.Compile([]string{"Main.java"}); got != driver.ABNORMAL {
		t.Fatalf("expected ABNORMAL after a recovered panic, got %v", got)
	}
}
