package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating parent directories).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create my-app/server.js (234 bytes)").
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file with content.
//
// Validation behavior:
//   - Creates parent directories if they don't exist (via os.MkdirAll)
//   - Rejects paths that already exist (archetype emission never overwrites)
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes the file with the specified Mode
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if _, err := os.Stat(op.Path); err == nil {
		return fmt.Errorf("file already exists: %s", op.Path)
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// MkdirOp creates a directory (and any missing parents).
//
// Archetypes use this for directories that must exist even when no file is
// generated inside them yet (e.g., an empty uploads/ directory).
type MkdirOp struct {
	Path string
	Mode fs.FileMode // Directory permissions (e.g., 0755)
}

func (op *MkdirOp) Validate(ctx context.Context) error {
	if op.Path == "" {
		return fmt.Errorf("mkdir path is empty")
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, op.Mode)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}
