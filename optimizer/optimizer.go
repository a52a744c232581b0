/*
File    : go-flux/optimizer/optimizer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package optimizer implements a textual post-pass over already-serialized
LLVM IR. It is independent of the compiler core: input and output are
plain .ll text.

Two passes are provided:
  - dead-function elimination: a define block is dropped when the
    function is not "main" and no call site in the module references it
  - store/load sinking: the last i32 store to each stack slot is held
    back and re-emitted only when a load of that slot follows; stores
    that are overwritten or never read again are dropped

The regexes accept both llir/llvm serialization (unquoted @name and %n
locals) and llvmlite-style quoted names.
*/
package optimizer

import (
	"regexp"
	"strings"
)

var (
	// call sites: call <type> @name(  /  call <type> @"name"(
	callRegex = regexp.MustCompile(`call\s+\S+\s+@"?(\w+)"?\(`)

	// function headers: define <type> @name(  /  define <type> @"name"(
	defineRegex = regexp.MustCompile(`define\s+\S+\s+@"?(\w+)"?\(`)

	// i32 stores into a local slot: store i32 <value>, i32* %ptr
	storeRegex = regexp.MustCompile(`^\s*store\s+i32\s+(-?\w+),\s+i32\*\s+(%"?[\w.]+"?)\s*$`)

	// i32 loads from a local slot: %n = load i32, i32* %ptr
	loadRegex = regexp.MustCompile(`^\s*%"?[\w.]+"?\s*=\s*load\s+i32,\s+i32\*\s+(%"?[\w.]+"?)\s*$`)
)

// FindCalledFunctions scans IR text for call sites and returns the set
// of callee names.
func FindCalledFunctions(llvmIR string) map[string]bool {
	called := make(map[string]bool)
	for _, match := range callRegex.FindAllStringSubmatch(llvmIR, -1) {
		called[match[1]] = true
	}
	return called
}

// OptimizeUnusedFunctions drops the define blocks of functions that are
// neither "main" nor called anywhere in the module. Globals and all
// other lines pass through untouched.
func OptimizeUnusedFunctions(llvmIR string) string {
	called := FindCalledFunctions(llvmIR)

	lines := strings.Split(llvmIR, "\n")

	inFunction := false
	currentFunction := ""

	optimized := make([]string, 0, len(lines))

	for _, line := range lines {
		if match := defineRegex.FindStringSubmatch(line); match != nil {
			currentFunction = match[1]
			inFunction = true
		}

		if inFunction && currentFunction != "main" && !called[currentFunction] {
			// swallow the body; the closing brace ends the region
			if strings.TrimSpace(line) == "}" {
				inFunction = false
			}
			continue
		}

		optimized = append(optimized, line)
	}

	return strings.Join(optimized, "\n")
}

// OptimizeVariableAssignments sinks i32 stores toward their loads.
// The most recent store to each slot is buffered; when a load of that
// slot appears, the buffered store is re-emitted immediately before it.
// A buffered store that is overwritten by a later store, or never
// followed by a load, is dropped.
func OptimizeVariableAssignments(llvmIR string) string {
	lines := strings.Split(llvmIR, "\n")

	lastAssignment := make(map[string]string)

	optimized := make([]string, 0, len(lines))

	for _, line := range lines {
		if match := storeRegex.FindStringSubmatch(line); match != nil {
			ptr := match[2]
			lastAssignment[ptr] = line
			continue
		}

		if match := loadRegex.FindStringSubmatch(line); match != nil {
			ptr := match[1]
			if buffered, ok := lastAssignment[ptr]; ok {
				optimized = append(optimized, buffered)
				delete(lastAssignment, ptr)
			}
		}

		optimized = append(optimized, line)
	}

	return strings.Join(optimized, "\n")
}

// Optimize runs both passes in order: dead functions first, then
// store/load sinking on the surviving text.
func Optimize(llvmIR string) string {
	llvmIR = OptimizeUnusedFunctions(llvmIR)
	llvmIR = OptimizeVariableAssignments(llvmIR)
	return llvmIR
}
