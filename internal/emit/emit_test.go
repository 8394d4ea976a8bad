package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/chime/internal/ast"
	"github.com/funvibe/chime/internal/astio"
)

func sampleAST(t *testing.T) []byte {
	t.Helper()
	data, err := astio.EncodeProgram([]ast.Stmt{
		&ast.SVarDecl{
			Name: ast.Name{Text: "x"},
			Init: &ast.ELit{Value: &ast.LitInt{Value: 5}},
		},
	})
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return data
}

func TestBuild_Plain(t *testing.T) {
	out, err := Build(sampleAST(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "var x = 5;" {
		t.Errorf("got %q", out)
	}
}

func TestBuild_BannerAndRuntime(t *testing.T) {
	opts := Options{Banner: "// generated by chimec"}
	opts.SetRuntime(true)
	out, err := Build(sampleAST(t), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "// generated by chimec\n") {
		t.Errorf("banner missing: %q", out[:40])
	}
	if !strings.Contains(out, "Chime$$cons") {
		t.Error("runtime prelude missing")
	}
	if !strings.HasSuffix(out, "var x = 5;") {
		t.Errorf("program text must come last: %q", out[len(out)-20:])
	}
}

func TestBuild_DecodeErrorPropagates(t *testing.T) {
	_, err := Build([]byte(`{"format":"other"}`), Options{})
	if err == nil {
		t.Fatal("expected an error for a foreign file")
	}
}

func TestFile_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.ast.json")
	if err := os.WriteFile(in, sampleAST(t), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "prog.js")

	if err := File(in, Options{Out: out}); err != nil {
		t.Fatalf("File: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "var x = 5;" {
		t.Errorf("output = %q", data)
	}

	// No temp files may survive the rename.
	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestFile_RequiresOutputPath(t *testing.T) {
	if err := File("whatever.ast.json", Options{}); err == nil {
		t.Fatal("expected an error without an output path")
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("out: dist/app.js\nruntime: true\nbanner: \"// hi\"\n"), "chime.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Out != "dist/app.js" {
		t.Errorf("out = %q", cfg.Out)
	}
	if cfg.Runtime == nil || !*cfg.Runtime {
		t.Error("runtime should parse as set and true")
	}
	if cfg.Banner != "// hi" {
		t.Errorf("banner = %q", cfg.Banner)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte(":\n  - broken"), "chime.yaml")
	if err == nil || !strings.Contains(err.Error(), "chime.yaml") {
		t.Errorf("expected a path-prefixed parse error, got %v", err)
	}
}

func TestApply_FlagsWinOverConfig(t *testing.T) {
	off := false
	cfg := &FileConfig{Out: "from-config.js", Runtime: &off, Banner: "// config"}

	opts := Options{Out: "from-flag.js", Banner: "// flag"}
	opts.SetRuntime(true)
	cfg.Apply(&opts)

	if opts.Out != "from-flag.js" {
		t.Errorf("out = %q", opts.Out)
	}
	if !opts.Runtime {
		t.Error("explicit runtime flag must not be overridden")
	}
	if opts.Banner != "// flag" {
		t.Errorf("banner = %q", opts.Banner)
	}

	// Unset fields inherit from the config, including an explicit false.
	opts = Options{}
	cfg.Apply(&opts)
	if opts.Out != "from-config.js" || opts.Runtime || opts.Banner != "// config" {
		t.Errorf("config not applied: %+v", opts)
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "chime.yaml")
	if err := os.WriteFile(cfgPath, []byte("out: x.js\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("found %q, want %q", found, cfgPath)
	}
}
