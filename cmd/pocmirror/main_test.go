package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pocmirror/internal/cli/output"
	"pocmirror/internal/failure"
	"pocmirror/internal/log"
)

// workspace creates a catalog and source files in a temp dir and makes it
// the working directory for the test.
func workspace(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })

	if err := os.MkdirAll("files", 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range map[string]string{"a.pdf": "alpha", "b.pdf": "bravo", "c.pdf": "charlie"} {
		if err := os.WriteFile(filepath.Join("files", name), []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	catalog := `[
		{"volume": 1, "year": 2010, "month": "January", "description": "First", "files": ["a.pdf"]},
		{"volume": 2, "year": 2010, "month": "March", "description": "Second", "files": ["b.pdf", "c.pdf"]}
	]`
	if err := os.WriteFile("config.json", []byte(catalog), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldLog := output.Out, log.Out
	output.Out, log.Out = &buf, &buf
	t.Cleanup(func() { output.Out, log.Out = oldOut, oldLog })

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return buf.String(), err
}

func TestBuildThenVerify(t *testing.T) {
	workspace(t)

	out, err := run(t)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Wrote public/index.html (2 issues, 3 files)") {
		t.Fatalf("unexpected build output %q", out)
	}
	if _, err := os.Stat(filepath.Join("public", "files", "c.pdf")); err != nil {
		t.Fatalf("copy missing: %v", err)
	}

	out, err = run(t, "verify")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All 3 files match the ledger") {
		t.Fatalf("unexpected verify output %q", out)
	}

	if err := os.WriteFile(filepath.Join("public", "files", "b.pdf"), []byte("tampered"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err = run(t, "verify")
	if err == nil {
		t.Fatalf("verify should fail after tampering:\n%s", out)
	}
	if !strings.Contains(out, "MODIFIED") || !strings.Contains(out, "b.pdf") {
		t.Fatalf("tampered file not reported:\n%s", out)
	}
}

func TestBuildExplicitCatalogMissing(t *testing.T) {
	workspace(t)

	_, err := run(t, "other.json")
	if !failure.Is(err, failure.Input) {
		t.Fatalf("expected input failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "other.json") {
		t.Fatalf("error should name the catalog: %v", err)
	}
}

func TestList(t *testing.T) {
	workspace(t)

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Volume", "Description", "0x01", "0x02", "March", "b.pdf, c.pdf", "2 issues in 1 year groups"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat("public"); !os.IsNotExist(err) {
		t.Fatalf("list must not write output")
	}
}

func TestInitWritesSettings(t *testing.T) {
	workspace(t)

	out, err := run(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Settings saved to pocmirror.yml") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat("pocmirror.yml"); err != nil {
		t.Fatalf("settings file missing: %v", err)
	}

	if _, err := run(t, "init"); err == nil {
		t.Fatalf("second init without --force should fail")
	}
}
