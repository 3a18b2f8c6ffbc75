package driver

import "github.com/funvibe/javac-core/internal/ctx"

// Stage is one step of the compile pipeline (parse, attribute, resolve,
// lint, ...), each able to see and extend the prior stage's result.
// Adapted from the teacher's Pipeline/Processor chaining idiom: a
// Pipeline ran a fixed Processor slice over a shared context, continuing
// through every stage even after one reported diagnostics so later
// stages (e.g. an LSP's need for both parse and semantic errors) still
// ran. Compile preserves that "continue on errors" behavior: a Stage
// returning an error still lets subsequent stages run, since diagnostics
// already landed in ctx.Context.Diag and a stage can choose to no-op on
// a nil/erroneous predecessor result.
type Stage interface {
	Run(c *ctx.Context, sources []string, prev any) (any, error)
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc func(c *ctx.Context, sources []string, prev any) (any, error)

func (f StageFunc) Run(c *ctx.Context, sources []string, prev any) (any, error) {
	return f(c, sources, prev)
}

// runStages drives sources through every stage in order, threading each
// stage's result into the next as prev. The first stage error is
// remembered and returned after every stage has run (diagnostics from
// later stages are still collected).
func runStages(c *ctx.Context, sources []string, stages []Stage) error {
	var prev any
	var firstErr error
	for _, s := range stages {
		result, err := s.Run(c, sources, prev)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		prev = result
	}
	return firstErr
}
