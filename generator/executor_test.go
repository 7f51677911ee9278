package generator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/backforge/generator"
)

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: true,
		Writer: &buf,
	})

	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	// File should NOT be created
	if _, err := os.Stat(filepath.Join(tmpDir, "test.txt")); !os.IsNotExist(err) {
		t.Error("dry run created file")
	}

	// Output should show dry run
	output := buf.String()
	if !strings.Contains(output, "[DRY RUN]") {
		t.Errorf("output missing [DRY RUN] marker, got: %s", output)
	}
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}

	if string(content) != "hello" {
		t.Errorf("wrong content: got %q, want %q", content, "hello")
	}
}

func TestExecute_ConflictRejectedBeforeAnyWrite(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "fresh.txt"),
			Content: []byte("new"),
			Mode:    0644,
		},
		&generator.WriteFileOp{
			Path:    existing,
			Content: []byte("clobber"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err == nil {
		t.Fatal("expected validation error for existing file")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}

	// Validation happens before execution, so even the fresh file is untouched.
	if _, statErr := os.Stat(filepath.Join(tmpDir, "fresh.txt")); !os.IsNotExist(statErr) {
		t.Error("fresh.txt written despite failed validation phase")
	}

	content, _ := os.ReadFile(existing)
	if string(content) != "old" {
		t.Error("existing file was modified")
	}
}

func TestExecute_NilContentRejected(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path: filepath.Join(tmpDir, "nil.txt"),
			Mode: 0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err == nil {
		t.Fatal("expected validation error for nil content")
	}
}

func TestExecute_MkdirOp(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "uploads", "images")
	ops := []generator.Operation{
		&generator.MkdirOp{Path: dir, Mode: 0755},
	}

	var buf bytes.Buffer
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestExecute_QuietSuppressesOutput(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "quiet.txt"),
			Content: []byte("sh"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Quiet: true, Writer: &buf})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}
}
