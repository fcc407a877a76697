// The optimization driver: runs the rewrite passes in a fixed order and
// repeats rounds until a round changes nothing or the round limit is hit.
package optimize

import (
	"fmt"
	"time"

	"stackc/pkg/ast"
	"stackc/pkg/config"
)

// Optimizer iterates the enabled passes to a fixed point.
type Optimizer struct {
	cfg config.Config
}

// New creates an optimizer for the given configuration.
func New(cfg config.Config) *Optimizer {
	return &Optimizer{cfg: cfg}
}

// Run optimizes prog and returns the outcome record. The input tree is never
// mutated; the result carries a new tree wherever a pass changed anything.
// An unexpected panic inside a pass is converted into a generic error record
// so callers never observe an unhandled fault.
func (o *Optimizer) Run(prog *ast.Program) (res *Result) {
	start := time.Now()
	rec := NewRecorder()
	res = &Result{State: StatePending, Tree: prog}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Errors = append(res.Errors, fmt.Sprintf("internal error during optimization: %v", r))
		}
		res.Log = rec.Log()
		res.Stats = rec.Stats()
		res.Warnings = rec.Warnings()
		res.Duration = time.Since(start)
	}()

	type pass struct {
		enabled bool
		run     func(*ast.Program, *Recorder) *ast.Program
	}
	// Fixed order: folding exposes literal operands the simplifier catches in
	// the same round; dead-code runs last against the round's final shape.
	passes := []pass{
		{o.cfg.Fold, Fold},
		{o.cfg.Simplify, Simplify},
		{o.cfg.CSE, DetectCSE},
		{o.cfg.DeadCode, EliminateDeadCode},
	}

	maxRounds := o.cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = config.DefaultMaxRounds
	}

	tree := prog
	res.State = StateRunning
	for res.Rounds < maxRounds {
		before := rec.Stats().treeChanges()
		for _, p := range passes {
			if p.enabled {
				tree = p.run(tree, rec)
			}
		}
		res.Rounds++
		if rec.Stats().treeChanges() == before {
			res.State = StateConverged
			break
		}
	}
	if res.State != StateConverged {
		res.State = StateRoundLimitReached
	}
	res.Tree = tree
	res.Success = true
	return res
}
