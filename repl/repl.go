/*
File    : go-flux/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive compile loop for the Flux compiler.
The REPL provides an environment where users can:
- Enter Flux code line by line
- See the LLVM IR their code lowers to, immediately
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

Each line is compiled standalone into a fresh module; there is no
cross-line state. The REPL uses the readline library for enhanced line
editing capabilities.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-flux/compiler"
	"github.com/akashmaji946/go-flux/parser"
)

// Color definitions for REPL output
// These colors provide visual feedback:
// - blueColor: Decorative lines and separators
// - yellowColor: Emitted IR and version info
// - redColor: Error messages and warnings
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive compile loop instance.
// It encapsulates all the configuration needed to run a session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the compiler
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "flux >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This is called once when the REPL starts.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)

	greenColor.Fprintf(writer, "%s\n", r.Banner)

	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	blueColor.Fprintf(writer, "%s\n", r.Line)

	cyanColor.Fprintf(writer, "%s\n", "Welcome to Go-Flux!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of code to see the LLVM IR it compiles to")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Enters the read-compile-print loop
// 4. Processes user input until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Compile the input with panic recovery to prevent crashes
		r.compileWithRecovery(writer, line)
	}
}

// compileWithRecovery runs the pipeline over one input line with panic
// recovery. Unlike file mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again.
//
// Error Handling:
//   - Panics: Caught and displayed, REPL continues
//   - Lexer/parse errors: Displayed in red, REPL continues
//   - Emitter errors: Displayed in red, REPL continues
//   - Success: Emitted IR displayed in yellow
func (r *Repl) compileWithRecovery(writer io.Writer, line string) {
	// Recover from any panics that might occur during compilation
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[COMPILER PANIC] %v\n", recovered)
		}
	}()

	// Parse the input line into an Abstract Syntax Tree (AST)
	par := parser.NewParser(line)
	root := par.Parse()

	// Lexing is lazy, so check the lexer's list after Parse
	if par.Lex.HasErrors() {
		for _, err := range par.Lex.GetErrors() {
			redColor.Fprintf(writer, "[LEXER ERROR] %s\n", err)
		}
		return
	}

	// Check for parser errors
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "[PARSE ERROR] %s\n", err)
		}
		return // Return to REPL prompt for user to try again
	}

	// Emit the module for this line
	com := compiler.NewCompiler()
	com.Compile(root)

	if com.HasErrors() {
		for _, err := range com.GetErrors() {
			redColor.Fprintf(writer, "[COMPILE ERROR] %s\n", err)
		}
		return
	}

	// Successful compilation - display the IR in yellow
	yellowColor.Fprintf(writer, "%s\n", com.Module.String())
}
