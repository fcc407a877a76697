package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stackc/pkg/ast"
	"stackc/pkg/codegen"
	"stackc/pkg/config"
	"stackc/pkg/optimize"
)

var version = "0.1.0"

// Debug flags for dumping intermediate stages
var (
	dAst bool
	dOpt bool
	dAsm bool
)

// Pass and output options
var (
	noFold     bool
	noSimplify bool
	noCSE      bool
	noDCE      bool
	noPeephole bool
	noComments bool
	maxRounds  int
	configPath string
	symbolPath string
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackc [file]",
		Short: "stackc optimizes a parse tree and compiles it to stack-machine assembly",
		Long: `stackc is the back half of a small educational compiler. It reads a
parse-tree JSON file produced by the external parser, runs the
tree-rewriting optimization passes to a fixed point, and emits
assembly for an abstract stack machine.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			cfg, err := buildConfig(cmd)
			if err != nil {
				fmt.Fprintf(errOut, "stackc: %v\n", err)
				return err
			}
			return compile(args[0], cfg, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Dump flags
	rootCmd.Flags().BoolVar(&dAst, "dast", false, "Dump the decoded parse tree")
	rootCmd.Flags().BoolVar(&dOpt, "dopt", false, "Dump the optimized tree and rewrite log")
	rootCmd.Flags().BoolVar(&dAsm, "dasm", false, "Dump the generated assembly to stdout")

	// Pass flags
	rootCmd.Flags().BoolVar(&noFold, "no-fold", false, "Disable constant folding")
	rootCmd.Flags().BoolVar(&noSimplify, "no-simplify", false, "Disable algebraic simplification")
	rootCmd.Flags().BoolVar(&noCSE, "no-cse", false, "Disable common-subexpression detection")
	rootCmd.Flags().BoolVar(&noDCE, "no-dce", false, "Disable dead-code elimination")
	rootCmd.Flags().BoolVar(&noPeephole, "no-peephole", false, "Disable peephole optimization")
	rootCmd.Flags().BoolVar(&noComments, "no-comments", false, "Omit per-instruction comments")
	rootCmd.Flags().IntVar(&maxRounds, "max-rounds", config.DefaultMaxRounds, "Maximum optimization rounds")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&symbolPath, "symbols", "", "Symbol table JSON file from the semantic analyzer")

	return rootCmd
}

// buildConfig layers the defaults, then the config file, then any explicit
// flags.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if noFold {
		cfg.Fold = false
	}
	if noSimplify {
		cfg.Simplify = false
	}
	if noCSE {
		cfg.CSE = false
	}
	if noDCE {
		cfg.DeadCode = false
	}
	if noPeephole {
		cfg.Peephole = false
	}
	if noComments {
		cfg.Comments = false
	}
	if cmd.Flags().Changed("max-rounds") {
		cfg.MaxRounds = maxRounds
	}
	return cfg, nil
}

// symbolEntry mirrors the analyzer's JSON descriptor shape.
type symbolEntry struct {
	Kind string `json:"kind"`
}

func loadSymbols(path string) (codegen.SymbolTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]symbolEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	table := make(codegen.SymbolTable, len(entries))
	for name, e := range entries {
		table[name] = codegen.Symbol{Kind: e.Kind}
	}
	return table, nil
}

func compile(filename string, cfg config.Config, out, errOut io.Writer) error {
	tree, err := ast.DecodeFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "stackc: %v\n", err)
		return err
	}

	if dAst {
		printer := ast.NewPrinter(out)
		printer.PrintProgram(tree)
		return nil
	}

	symbols, err := loadSymbols(symbolPath)
	if err != nil {
		fmt.Fprintf(errOut, "stackc: %v\n", err)
		return err
	}

	optRes := optimize.New(cfg).Run(tree)
	for _, w := range optRes.Warnings {
		fmt.Fprintf(errOut, "stackc: warning: %s\n", w)
	}
	if !optRes.Success {
		for _, e := range optRes.Errors {
			fmt.Fprintf(errOut, "stackc: error: %s\n", e)
		}
		return fmt.Errorf("optimization failed with %d errors", len(optRes.Errors))
	}

	if dOpt {
		printer := ast.NewPrinter(out)
		printer.PrintProgram(optRes.Tree)
		fmt.Fprintf(out, "; %d rewrites in %d rounds (%s)\n",
			optRes.Stats.Total(), optRes.Rounds, optRes.State)
		for _, rw := range optRes.Log {
			fmt.Fprintf(out, "; [%s] %s\n", rw.Kind, rw.Description)
		}
		return nil
	}

	genRes := codegen.New(cfg).Generate(optRes.Tree, symbols)
	for _, w := range genRes.Warnings {
		fmt.Fprintf(errOut, "stackc: warning: %s\n", w)
	}
	if !genRes.Success {
		for _, e := range genRes.Errors {
			fmt.Fprintf(errOut, "stackc: error: %s\n", e)
		}
		return fmt.Errorf("code generation failed with %d errors", len(genRes.Errors))
	}

	if dAsm {
		fmt.Fprint(out, genRes.Assembly)
		return nil
	}

	outputFilename := asmOutputFilename(filename)
	if err := os.WriteFile(outputFilename, []byte(genRes.Assembly), 0o644); err != nil {
		fmt.Fprintf(errOut, "stackc: error writing %s: %v\n", outputFilename, err)
		return err
	}
	fmt.Fprintf(errOut, "stackc: wrote %s (%d instructions, %d variables, %d labels)\n",
		outputFilename, genRes.InstrCount, genRes.VarCount, genRes.LabelCount)
	return nil
}

// asmOutputFilename returns the output filename: input.json -> input.s
func asmOutputFilename(filename string) string {
	ext := ".json"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".s"
	}
	return filename + ".s"
}
