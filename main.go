/*
File    : go-flux/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Flux compiler.
It exposes the pipeline through subcommands:

	flux build  - compile a .fx source file to LLVM IR (code.ll)
	flux lex    - print the token stream of a source file
	flux parse  - dump the AST of a source file as JSON (AST.json)
	flux opt    - run the textual optimizer over an existing .ll file
	flux repl   - start the interactive compile loop
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/go-flux/file"
	"github.com/akashmaji946/go-flux/lexer"
	"github.com/akashmaji946/go-flux/repl"
)

// VERSION represents the current version of the Go-Flux compiler
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the compiler's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "flux >>> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `
   ________        ________
  / ____/ /_  ____/ ____/ /_  ___  __
 / / __/ __ \/___/ /_  / / / / / |/_/
/ /_/ / /_/ /   / __/ / / /_/ />  <
\____/\____/   /_/   /_/\____/_/|_|
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for CLI output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "flux",
	Short: "Flux compiler emitting LLVM IR",
	Long: `go-flux is a compiler for the Flux toy language.

Flux is a small static, statically-typed, expression-oriented language:
  - explicit type annotations on every binding and parameter (int, float)
  - functions with an '@' return-type sentinel
  - if/else conditionals and while loops
  - compiled to LLVM IR through a lexer -> Pratt parser -> IR emitter pipeline`,
	Version: VERSION,
}

var (
	buildOutput string
	parseOutput string
	optOutput   string
	optimizeIR  bool
	emitAST     bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile a Flux source file to LLVM IR",
	Long: `Compile a Flux program and write the emitted LLVM IR to code.ll.

Examples:
  # Compile a source file
  flux build program.fx

  # Compile with the textual optimizer post-pass
  flux build program.fx --optimize

  # Choose the output path and also dump the AST
  flux build program.fx -o out.ll --emit-ast`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if emitAST {
			if err := file.DumpAST(path, "AST.json"); err != nil {
				return err
			}
		}

		return file.Build(path, buildOutput, optimizeIR)
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Flux source file and print the tokens",
	Long: `Tokenize (lex) a Flux program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Flux source code is tokenized.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read file %s: %w", args[0], err)
		}

		lex := lexer.NewLexer(string(src))
		for !lex.AtEOF() {
			tok := lex.NextToken()
			if tok.Type == lexer.EOF_TYPE {
				break
			}
			yellowColor.Println(tok.String())
		}

		if lex.HasErrors() {
			for _, lexErr := range lex.GetErrors() {
				redColor.Fprintf(os.Stderr, "%s\n", lexErr)
			}
			return fmt.Errorf("found %d lexical error(s)", len(lex.GetErrors()))
		}

		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Flux source file and dump the AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.DumpAST(args[0], parseOutput)
	},
}

var optCmd = &cobra.Command{
	Use:   "opt [file]",
	Short: "Run the textual optimizer over an existing .ll file",
	Long: `Run the regex-based post-pass (dead-function elimination and
store/load sinking) over already-emitted LLVM IR text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.OptimizeFile(args[0], optOutput)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive compile loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "code.ll", "output file for the emitted IR")
	buildCmd.Flags().BoolVar(&optimizeIR, "optimize", false, "run the textual optimizer post-pass")
	buildCmd.Flags().BoolVar(&emitAST, "emit-ast", false, "also write the AST dump to AST.json")

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "AST.json", "output file for the AST dump")

	optCmd.Flags().StringVarP(&optOutput, "output", "o", "optimized_code.ll", "output file for the optimized IR")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(optCmd)
	rootCmd.AddCommand(replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
