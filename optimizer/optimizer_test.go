/*
File    : go-flux/optimizer/optimizer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sampleIR is a hand-written module: main calls helper, and orphan is
// never referenced.
const sampleIR = `@true = constant i1 true
@false = constant i1 false

define i32 @orphan(i32 %a) {
orphan_entry:
	%0 = alloca i32
	store i32 %a, i32* %0
	%1 = load i32, i32* %0
	ret i32 %1
}

define i32 @helper(i32 %a) {
helper_entry:
	ret i32 %a
}

define i32 @main() {
main_entry:
	%0 = call i32 @helper(i32 7)
	ret i32 %0
}
`

func TestFindCalledFunctions(t *testing.T) {
	called := FindCalledFunctions(sampleIR)

	assert.True(t, called["helper"])
	assert.False(t, called["orphan"])
	assert.False(t, called["main"])
}

func TestOptimizeUnusedFunctions(t *testing.T) {
	optimized := OptimizeUnusedFunctions(sampleIR)

	// the orphan define block is gone
	assert.NotContains(t, optimized, "@orphan")
	assert.NotContains(t, optimized, "orphan_entry:")

	// main and its callee survive
	assert.Contains(t, optimized, "define i32 @main()")
	assert.Contains(t, optimized, "define i32 @helper(i32 %a)")

	// globals outside functions pass through untouched
	assert.Contains(t, optimized, "@true = constant i1 true")
}

func TestOptimizeUnusedFunctions_QuotedNames(t *testing.T) {
	// llvmlite-style quoted names are accepted too
	quoted := `define i32 @"dead"() {
entry:
	ret i32 0
}

define i32 @"main"() {
entry:
	%0 = call i32 @"live"()
	ret i32 %0
}

define i32 @"live"() {
entry:
	ret i32 1
}
`
	optimized := OptimizeUnusedFunctions(quoted)

	assert.NotContains(t, optimized, `@"dead"`)
	assert.Contains(t, optimized, `@"main"`)
	assert.Contains(t, optimized, `@"live"`)
}

func TestOptimizeVariableAssignments_SinksStoreToLoad(t *testing.T) {
	ir := `define i32 @main() {
main_entry:
	%0 = alloca i32
	store i32 5, i32* %0
	%1 = load i32, i32* %0
	ret i32 %1
}
`
	optimized := OptimizeVariableAssignments(ir)
	lines := strings.Split(optimized, "\n")

	// the store is re-emitted immediately before the load
	storeIdx, loadIdx := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "store i32 5") {
			storeIdx = i
		}
		if strings.Contains(line, "load i32") {
			loadIdx = i
		}
	}
	assert.NotEqual(t, -1, storeIdx)
	assert.NotEqual(t, -1, loadIdx)
	assert.Equal(t, loadIdx-1, storeIdx)
}

func TestOptimizeVariableAssignments_DropsOverwrittenStore(t *testing.T) {
	ir := `define i32 @main() {
main_entry:
	%0 = alloca i32
	store i32 5, i32* %0
	store i32 7, i32* %0
	%1 = load i32, i32* %0
	ret i32 %1
}
`
	optimized := OptimizeVariableAssignments(ir)

	// the overwritten store is dropped, the live one survives
	assert.NotContains(t, optimized, "store i32 5")
	assert.Contains(t, optimized, "store i32 7")
}

func TestOptimizeVariableAssignments_DropsDeadStore(t *testing.T) {
	ir := `define i32 @main() {
main_entry:
	%0 = alloca i32
	store i32 5, i32* %0
	ret i32 0
}
`
	optimized := OptimizeVariableAssignments(ir)

	// a store that is never read again disappears
	assert.NotContains(t, optimized, "store i32 5")
	assert.Contains(t, optimized, "ret i32 0")
}

func TestOptimize_BothPasses(t *testing.T) {
	optimized := Optimize(sampleIR)

	assert.NotContains(t, optimized, "@orphan")
	assert.Contains(t, optimized, "define i32 @main()")
	assert.Contains(t, optimized, "call i32 @helper(i32 7)")
}
