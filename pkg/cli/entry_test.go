package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/funvibe/chime/internal/ast"
	"github.com/funvibe/chime/internal/astio"
)

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	data, err := astio.EncodeProgram([]ast.Stmt{
		&ast.SVarDecl{
			Name: ast.Name{Text: "greeting"},
			Init: &ast.ELit{Value: &ast.LitString{Value: "hi"}},
		},
	})
	be.Err(t, err, nil)
	path := filepath.Join(dir, "prog.ast.json")
	be.Err(t, os.WriteFile(path, data, 0o644), nil)
	return path
}

func TestRun_EmitToStdout(t *testing.T) {
	path := writeSample(t, t.TempDir())
	var stdout, stderr bytes.Buffer

	code := Run([]string{"emit", path}, &stdout, &stderr)
	be.Equal(t, code, 0)
	be.Equal(t, stdout.String(), `var greeting = "hi";`)
	be.Equal(t, stderr.String(), "")
}

func TestRun_EmitToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir)
	out := filepath.Join(dir, "prog.js")
	var stdout, stderr bytes.Buffer

	code := Run([]string{"emit", "-o", out, path}, &stdout, &stderr)
	be.Equal(t, code, 0)
	data, err := os.ReadFile(out)
	be.Err(t, err, nil)
	be.Equal(t, string(data), `var greeting = "hi";`)
}

func TestRun_EmitUsesConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir)
	cfg := "out: " + filepath.Join(dir, "cfg.js") + "\nbanner: \"// from config\"\n"
	be.Err(t, os.WriteFile(filepath.Join(dir, "chime.yaml"), []byte(cfg), 0o644), nil)
	var stdout, stderr bytes.Buffer

	code := Run([]string{"emit", path}, &stdout, &stderr)
	be.Equal(t, code, 0)
	data, err := os.ReadFile(filepath.Join(dir, "cfg.js"))
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(string(data), "// from config\n"))
}

func TestRun_EmitWithRuntime(t *testing.T) {
	path := writeSample(t, t.TempDir())
	var stdout, stderr bytes.Buffer

	code := Run([]string{"emit", "-runtime", path}, &stdout, &stderr)
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout.String(), "Chime$$cons"))
	be.True(t, strings.HasSuffix(stdout.String(), `var greeting = "hi";`))
}

func TestRun_Runtime(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"runtime"}, &stdout, &stderr)
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout.String(), "Chime$$unit"))
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"version"}, &stdout, &stderr)
	be.Equal(t, code, 0)
	be.True(t, strings.HasPrefix(stdout.String(), "chimec "))
}

func TestRun_UsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	be.Equal(t, Run(nil, &stdout, &stderr), 2)

	stderr.Reset()
	be.Equal(t, Run([]string{"unknown"}, &stdout, &stderr), 2)
	be.True(t, strings.Contains(stderr.String(), "unknown command"))

	stderr.Reset()
	be.Equal(t, Run([]string{"emit"}, &stdout, &stderr), 2)
}

func TestRun_EmitMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"emit", filepath.Join(t.TempDir(), "nope.ast.json")}, &stdout, &stderr)
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr.String(), "error:"))
}
