package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags() {
	dAst = false
	dOpt = false
	dAsm = false
	noFold = false
	noSimplify = false
	noCSE = false
	noDCE = false
	noPeephole = false
	noComments = false
	maxRounds = 3
	configPath = ""
	symbolPath = ""
}

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}
}

func TestFlagsExist(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)

	expectedFlags := []string{
		"dast", "dopt", "dasm",
		"no-fold", "no-simplify", "no-cse", "no-dce",
		"no-peephole", "no-comments", "max-rounds", "config", "symbols",
	}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag --%s to exist", flagName)
		}
	}
}

func TestAsmOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"prog.json", "prog.s"},
		{"dir/prog.json", "dir/prog.s"},
		{"prog", "prog.s"},
	}
	for _, tt := range tests {
		if got := asmOutputFilename(tt.input); got != tt.want {
			t.Errorf("asmOutputFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

const sampleTree = `{
	"type": "Program",
	"body": [
		{"type": "VariableDeclaration", "name": "x",
		 "init": {"type": "BinaryExpression", "operator": "+",
			"left": {"type": "NumericLiteral", "value": "2"},
			"right": {"type": "NumericLiteral", "value": "3"}}},
		{"type": "ExpressionStatement",
		 "expression": {"type": "CallExpression", "callee": "print",
			"arguments": [{"type": "Identifier", "name": "x"}]}}
	]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.json")
	if err := os.WriteFile(path, []byte(sampleTree), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileWritesAssemblyFile(t *testing.T) {
	resetFlags()
	path := writeSample(t)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v\nstderr: %s", err, errOut.String())
	}

	outPath := strings.TrimSuffix(path, ".json") + ".s"
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	asmText := string(data)
	if !strings.Contains(asmText, "LOAD 5") {
		t.Errorf("folded constant missing from output:\n%s", asmText)
	}
	if !strings.Contains(asmText, "HALT") {
		t.Errorf("epilogue missing from output:\n%s", asmText)
	}
	if !strings.Contains(errOut.String(), "wrote") {
		t.Errorf("expected a summary line on stderr, got %q", errOut.String())
	}
}

func TestDumpAssemblyToStdout(t *testing.T) {
	resetFlags()
	path := writeSample(t)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dasm", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "; Symbol table:") {
		t.Errorf("assembly listing missing from stdout:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "PRINT") {
		t.Errorf("print call missing from stdout:\n%s", out.String())
	}
}

func TestDumpOptimizedTree(t *testing.T) {
	resetFlags()
	path := writeSample(t)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dopt", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "let x = 5;") {
		t.Errorf("optimized tree missing fold result:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[fold]") {
		t.Errorf("rewrite log missing:\n%s", out.String())
	}
}

func TestNoFoldDisablesFolding(t *testing.T) {
	resetFlags()
	path := writeSample(t)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--no-fold", "--dasm", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "ADD") {
		t.Errorf("addition should survive with folding disabled:\n%s", out.String())
	}
}

func TestUndefinedVariableFailsCompile(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "bad.json")
	tree := `{"type":"Program","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"q"}}]}`
	if err := os.WriteFile(path, []byte(tree), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected compilation to fail")
	}
	if !strings.Contains(errOut.String(), `"q"`) {
		t.Errorf("stderr %q does not identify the undefined variable", errOut.String())
	}
}

func TestConfigFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "stackc.yaml")
	if err := os.WriteFile(cfgPath, []byte("fold: false\nmax_rounds: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	treePath := filepath.Join(dir, "prog.json")
	if err := os.WriteFile(treePath, []byte(sampleTree), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--config", cfgPath, "--dasm", treePath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "ADD") {
		t.Errorf("config file should have disabled folding:\n%s", out.String())
	}
}

func TestSymbolsFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	symPath := filepath.Join(dir, "symbols.json")
	if err := os.WriteFile(symPath, []byte(`{"q": {"kind": "variable"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	treePath := filepath.Join(dir, "prog.json")
	tree := `{"type":"Program","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"q"}}]}`
	if err := os.WriteFile(treePath, []byte(tree), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--symbols", symPath, "--dasm", treePath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pre-seeded symbol should make q defined: %v\nstderr: %s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "LOAD_VAR 0") {
		t.Errorf("expected LOAD_VAR for q:\n%s", out.String())
	}
}
