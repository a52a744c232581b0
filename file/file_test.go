/*
File    : go-flux/file/file_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const goodProgram = `
func add(a: int, b: int) @ int {
	ret a + b;
}
func main() @ int {
	ret add(2, 3);
}
`

func TestCompileSource_Success(t *testing.T) {
	result, err := CompileSource(goodProgram)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 2, len(result.Root.Statements))
	assert.Contains(t, result.LlvmIR, "define i32 @main()")
	assert.Contains(t, result.LlvmIR, "call i32 @add(i32 2, i32 3)")
}

func TestCompileSource_LexerPhaseAborts(t *testing.T) {
	result, err := CompileSource(`func main() @ int { ret 1.2.3; }`)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "lexer")
	assert.Contains(t, err.Error(), "Too many dots in number")
}

func TestCompileSource_ParserPhaseAborts(t *testing.T) {
	result, err := CompileSource(`var x int = 5;`)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "parser")
	assert.Contains(t, err.Error(), "Expected :")
}

func TestCompileSource_CompilerPhaseAborts(t *testing.T) {
	result, err := CompileSource(`
	func main() @ int {
		y = 1;
		ret 0;
	}
	`)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "compiler")
	assert.Contains(t, err.Error(), "has not been declared before re-assignment")
}

func TestBuild_WritesIRFile(t *testing.T) {
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "program.fx")
	outPath := filepath.Join(dir, "code.ll")
	assert.NoError(t, os.WriteFile(srcPath, []byte(goodProgram), 0644))

	err := Build(srcPath, outPath, false)
	assert.NoError(t, err)

	written, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(written), "define i32 @add(i32 %a, i32 %b)")
}

func TestBuild_Optimized(t *testing.T) {
	dir := t.TempDir()

	// orphan is never called, so the optimized output drops it
	src := goodProgram + `
func orphan() @ int {
	ret 9;
}
`
	srcPath := filepath.Join(dir, "program.fx")
	outPath := filepath.Join(dir, "code.ll")
	assert.NoError(t, os.WriteFile(srcPath, []byte(src), 0644))

	err := Build(srcPath, outPath, true)
	assert.NoError(t, err)

	written, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(written), "@main")
	assert.Contains(t, string(written), "@add")
	assert.NotContains(t, string(written), "@orphan")
}

func TestDumpAST_WritesJson(t *testing.T) {
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "program.fx")
	outPath := filepath.Join(dir, "AST.json")
	assert.NoError(t, os.WriteFile(srcPath, []byte(`var x : int = 5;`), 0644))

	err := DumpAST(srcPath, outPath)
	assert.NoError(t, err)

	written, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(written), `"type": "Program"`)
	assert.Contains(t, string(written), `"VarStatement"`)
}
