// Package codegen walks an optimized tree and emits stack-machine
// instructions, assigning variable addresses and resolving control flow
// through synthesized labels.
package codegen

import (
	"fmt"
	"sort"
	"time"

	"stackc/pkg/asm"
	"stackc/pkg/ast"
	"stackc/pkg/config"
	"stackc/pkg/peephole"
)

// Symbol is one entry of the external semantic analyzer's symbol table.
type Symbol struct {
	Kind string
}

// SymbolTable maps variable names to their descriptors. Only entries whose
// Kind is "variable" receive an address.
type SymbolTable map[string]Symbol

// Result is the outcome of one generation run. When Success is false there
// is no best-effort guarantee about the instruction stream and no assembly
// is rendered.
type Result struct {
	Success    bool
	Program    *asm.Program
	Assembly   string
	Errors     []string
	Warnings   []string
	InstrCount int
	VarCount   int
	LabelCount int
	Duration   time.Duration
}

// Generator turns trees into stack-machine programs.
type Generator struct {
	cfg config.Config
}

// New creates a generator for the given configuration.
func New(cfg config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate emits code for tree, pre-seeding variable addresses from symbols.
// The whole tree is bracketed by a synthetic prologue (PUSH 0) and epilogue
// (HALT). Fatal errors (undefined variable, unsupported operator) abort the
// failing sub-tree but not its siblings; any fatal error marks the run
// unsuccessful. A panic during traversal is converted into a single generic
// error record.
func (g *Generator) Generate(tree ast.Node, symbols SymbolTable) (res *Result) {
	start := time.Now()
	res = &Result{}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Errors = append(res.Errors, fmt.Sprintf("internal error during code generation: %v", r))
		}
		res.Duration = time.Since(start)
	}()

	ctx := &genContext{prog: asm.NewProgram()}

	// Pre-seed addresses from the analyzer's table. The table arrives as a
	// map, so sort names to keep address assignment stable across runs.
	names := make([]string, 0, len(symbols))
	for name, sym := range symbols {
		if sym.Kind == "variable" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		ctx.prog.Vars.Assign(name)
	}

	ctx.emit(asm.OpPush, asm.Imm{Value: 0}, "prologue")
	ctx.genNode(tree)
	ctx.emit(asm.OpHalt, nil, "epilogue")

	res.Errors = ctx.errors
	res.Warnings = ctx.warnings
	res.Program = ctx.prog
	res.Success = len(ctx.errors) == 0
	if res.Success {
		if g.cfg.Peephole {
			peephole.Optimize(ctx.prog)
		}
		res.Assembly = asm.Render(ctx.prog, g.cfg.Comments)
	}
	res.InstrCount = ctx.prog.Code.Len()
	res.VarCount = ctx.prog.Vars.Len()
	res.LabelCount = ctx.prog.Labels.Len()
	return res
}

// genContext is the per-run generation state: the program under
// construction, the label counter, and the collected diagnostics. A fresh
// context per run keeps label and address counters from leaking between
// invocations.
type genContext struct {
	prog      *asm.Program
	nextLabel int
	errors    []string
	warnings  []string
}

func (c *genContext) emit(op asm.Opcode, operand asm.Operand, comment string) {
	c.prog.Code.Append(op, operand, comment)
}

// newLabel synthesizes a unique label from a semantic prefix and the
// monotonic per-run counter: else_0, endif_1, loop_2, ...
func (c *genContext) newLabel(prefix string) string {
	name := fmt.Sprintf("%s_%d", prefix, c.nextLabel)
	c.nextLabel++
	return name
}

// place binds a label to the next instruction address.
func (c *genContext) place(name string) {
	c.prog.Labels.Bind(name, c.prog.Code.Len())
}

func (c *genContext) errorf(format string, args ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *genContext) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// genNode dispatches on what the caller handed in: a whole program, a
// single statement, or a bare expression.
func (c *genContext) genNode(n ast.Node) {
	switch node := n.(type) {
	case *ast.Program:
		for _, s := range node.Body {
			c.genStmt(s)
		}
	case ast.Stmt:
		c.genStmt(node)
	case ast.Expr:
		if err := c.genExpr(node); err != nil {
			c.errorf("%v", err)
		}
	default:
		c.warnf("unsupported node kind %T; no code emitted", n)
	}
}
