// Package optimize implements the tree-rewriting optimization passes and the
// driver that iterates them to a fixed point.
package optimize

import (
	"fmt"
	"time"

	"stackc/pkg/ast"
)

// RewriteKind labels a log entry with the pass that produced it.
type RewriteKind int

const (
	RewriteFold RewriteKind = iota
	RewriteSimplify
	RewriteCSE
	RewriteDeadCode
)

func (k RewriteKind) String() string {
	names := []string{"fold", "simplify", "cse", "dead-code"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Rewrite is one applied (or, for CSE, detected) rewrite.
type Rewrite struct {
	Kind        RewriteKind
	Description string
	Pos         ast.Position
}

// Stats counts rewrites per category.
type Stats struct {
	Folds           int
	Simplifications int
	CSEHits         int
	DeadRemovals    int
}

// Total returns the total number of recorded rewrites.
func (s Stats) Total() int {
	return s.Folds + s.Simplifications + s.CSEHits + s.DeadRemovals
}

// treeChanges counts the rewrites that changed the tree. CSE hits are
// observational: the detector leaves the tree as-is, so counting them toward
// convergence would keep any program with a repeated subexpression iterating
// until the round limit.
func (s Stats) treeChanges() int {
	return s.Folds + s.Simplifications + s.DeadRemovals
}

// State is the driver's lifecycle state.
type State int

const (
	StatePending State = iota
	StateRunning
	StateConverged
	StateRoundLimitReached
)

func (s State) String() string {
	names := []string{"pending", "running", "converged", "round-limit-reached"}
	if int(s) < len(names) {
		return names[s]
	}
	return "?"
}

// Result is the outcome of one optimization invocation.
type Result struct {
	Success  bool
	Tree     *ast.Program
	Log      []Rewrite
	Stats    Stats
	Warnings []string
	Errors   []string
	Rounds   int
	State    State
	Duration time.Duration
}

// Recorder collects the observability channel of the passes: the rewrite
// log, per-category counters, and warnings. Passes take a Recorder so they
// are callable in isolation without capturing any output device.
type Recorder struct {
	log      []Rewrite
	stats    Stats
	warnings []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Stats returns a snapshot of the counters.
func (r *Recorder) Stats() Stats { return r.stats }

// Log returns the rewrites recorded so far, in application order.
func (r *Recorder) Log() []Rewrite { return r.log }

// Warnings returns the warnings recorded so far.
func (r *Recorder) Warnings() []string { return r.warnings }

func (r *Recorder) record(kind RewriteKind, pos ast.Position, format string, args ...interface{}) {
	r.log = append(r.log, Rewrite{
		Kind:        kind,
		Description: fmt.Sprintf(format, args...),
		Pos:         pos,
	})
	switch kind {
	case RewriteFold:
		r.stats.Folds++
	case RewriteSimplify:
		r.stats.Simplifications++
	case RewriteCSE:
		r.stats.CSEHits++
	case RewriteDeadCode:
		r.stats.DeadRemovals++
	}
}

func (r *Recorder) warn(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
