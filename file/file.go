/*
File    : go-flux/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package file drives the Flux compilation pipeline over source files.

It wires the phases together with the propagation policy of the
pipeline: each phase completes its whole input, then its error list is
inspected and the run aborts before the next phase if the list is
non-empty. Failures are data, not panics.
*/
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/akashmaji946/go-flux/compiler"
	"github.com/akashmaji946/go-flux/optimizer"
	"github.com/akashmaji946/go-flux/parser"
)

// Color definitions for pipeline output
// - redColor: phase errors
// - cyanColor: informational messages (files written)
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Result carries the artifacts of a successful compilation.
type Result struct {
	Root   *parser.RootNode   // the parsed program
	Com    *compiler.Compiler // the emitter holding the finished module
	LlvmIR string             // serialized module text
}

// CompileSource runs lex+parse+emit over a source string and returns the
// artifacts. Phase boundaries are enforced in order: lexical diagnostics
// first, then parser errors, then emitter errors. The first non-empty
// list aborts the pipeline with a joined error.
func CompileSource(src string) (*Result, error) {
	par := parser.NewParser(src)
	root := par.Parse()

	// lexing is lazy, so the lexer's list is complete only after Parse
	if par.Lex.HasErrors() {
		return nil, phaseError("lexer", par.Lex.GetErrors())
	}

	if par.HasErrors() {
		return nil, phaseError("parser", par.GetErrors())
	}

	com := compiler.NewCompiler()
	com.Compile(root)

	if com.HasErrors() {
		return nil, phaseError("compiler", com.GetErrors())
	}

	return &Result{Root: root, Com: com, LlvmIR: com.Module.String()}, nil
}

// CompileFile reads a Flux source file and compiles it.
func CompileFile(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", path, err)
	}
	return CompileSource(string(src))
}

// Build compiles a source file and writes the serialized module to
// outPath. When optimize is true, the textual post-pass runs first and
// the optimized IR is written instead.
func Build(path string, outPath string, optimize bool) error {
	result, err := CompileFile(path)
	if err != nil {
		return err
	}

	llvmIR := result.LlvmIR
	if optimize {
		llvmIR = optimizer.Optimize(llvmIR)
	}

	if err := os.WriteFile(outPath, []byte(llvmIR), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", outPath, err)
	}

	cyanColor.Printf("created %s\n", outPath)
	return nil
}

// DumpAST parses a source file and writes the serializable AST dump to
// outPath as indented JSON. Emission is not run; only the lexer and
// parser phase boundaries apply.
func DumpAST(path string, outPath string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	par := parser.NewParser(string(src))
	root := par.Parse()

	if par.Lex.HasErrors() {
		return phaseError("lexer", par.Lex.GetErrors())
	}
	if par.HasErrors() {
		return phaseError("parser", par.GetErrors())
	}

	dump, err := json.MarshalIndent(root.Json(), "", "    ")
	if err != nil {
		return fmt.Errorf("could not serialize AST: %w", err)
	}

	if err := os.WriteFile(outPath, dump, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", outPath, err)
	}

	cyanColor.Printf("created %s\n", outPath)
	return nil
}

// OptimizeFile runs the textual post-pass over an existing .ll file and
// writes the result to outPath.
func OptimizeFile(path string, outPath string) error {
	llvmIR, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	optimized := optimizer.Optimize(string(llvmIR))

	if err := os.WriteFile(outPath, []byte(optimized), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", outPath, err)
	}

	cyanColor.Printf("created %s\n", outPath)
	return nil
}

// PrintErrors writes each message of a phase error list in red.
func PrintErrors(errs []string) {
	for _, err := range errs {
		redColor.Fprintf(os.Stderr, "%s\n", err)
	}
}

// phaseError folds a phase's error list into a single error value for
// the driver to report.
func phaseError(phase string, errs []string) error {
	return fmt.Errorf("%s reported %d error(s):\n%s", phase, len(errs), strings.Join(errs, "\n"))
}
