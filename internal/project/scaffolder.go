package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/simonhull/backforge"
	"github.com/simonhull/backforge/generator"
	"github.com/simonhull/backforge/output"
	"gopkg.in/yaml.v3"
)

// Scaffolder turns a validated project request into an on-disk directory
// tree, guaranteeing no partial artifact survives a failure.
//
// The template registry is injected at construction time; an unknown kind is
// a lookup miss against a closed set, not an open-ended string dispatch.
type Scaffolder struct {
	templates map[Kind]Template
	root      string
	writer    io.Writer

	// now is swappable so marker timestamps are stable in tests.
	now func() time.Time
}

// NewScaffolder creates a scaffolder over the given template registry.
// Projects are created under the current working directory unless WithRoot
// is used.
func NewScaffolder(templates map[Kind]Template) *Scaffolder {
	return &Scaffolder{
		templates: templates,
		writer:    os.Stdout,
		now:       time.Now,
	}
}

// WithRoot sets the directory projects are created under.
func (s *Scaffolder) WithRoot(dir string) *Scaffolder {
	s.root = dir
	return s
}

// WithWriter redirects per-file progress output.
func (s *Scaffolder) WithWriter(w io.Writer) *Scaffolder {
	s.writer = w
	return s
}

// Plan validates the request and returns the operations that Scaffold would
// execute, without creating anything. The returned paths live under the
// would-be project directory.
//
// Plan performs steps 1-3 of the scaffold sequence: name validation, the
// target-collision pre-check, and registry lookup. Any failure leaves the
// filesystem untouched.
func (s *Scaffolder) Plan(name string, kind Kind) ([]generator.Operation, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	target, err := s.target(name)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(target); err == nil {
		return nil, &DirectoryExistsError{Path: target}
	}

	tmpl, ok := s.templates[kind]
	if !ok {
		return nil, &UnknownTemplateError{Kind: string(kind)}
	}

	ops, err := tmpl.Generate(target, name)
	if err != nil {
		return nil, fmt.Errorf("generating %s template: %w", kind, err)
	}

	markerOp, err := s.markerOp(target, name, kind)
	if err != nil {
		return nil, err
	}

	return append(ops, markerOp), nil
}

// Scaffold creates the project directory for name and populates it from the
// kind's template. On any failure after the directory has been created, the
// directory is removed again; the primary error always propagates, with a
// cleanup failure attached as a *RollbackError.
func (s *Scaffolder) Scaffold(ctx context.Context, name string, kind Kind) error {
	ops, err := s.Plan(name, kind)
	if err != nil {
		return err
	}

	target, err := s.target(name)
	if err != nil {
		return err
	}

	// Atomic create-exclusive: a concurrent invocation that won the race on
	// the same name surfaces here as DirectoryExistsError, not as
	// interleaved writes.
	if err := os.Mkdir(target, 0755); err != nil {
		if os.IsExist(err) {
			return &DirectoryExistsError{Path: target}
		}
		return fmt.Errorf("creating project directory: %w", err)
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: s.writer}); err != nil {
		return s.rollback(target, err)
	}

	return nil
}

// target resolves the project directory path for name.
func (s *Scaffolder) target(name string) (string, error) {
	root := s.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	return filepath.Join(root, name), nil
}

// markerOp builds the backforge.yml write for the new project.
func (s *Scaffolder) markerOp(target, name string, kind Kind) (generator.Operation, error) {
	marker := Marker{
		Name:      name,
		Template:  string(kind),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
		Version:   backforge.Version,
	}

	content, err := yaml.Marshal(marker)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", MarkerFile, err)
	}

	return &generator.WriteFileOp{
		Path:    filepath.Join(target, MarkerFile),
		Content: content,
		Mode:    0644,
	}, nil
}

// rollback removes the partial project directory after a failure. The primary
// error is always the one returned; a cleanup failure is surfaced as a
// warning and attached as a *RollbackError.
func (s *Scaffolder) rollback(target string, primary error) error {
	if rmErr := os.RemoveAll(target); rmErr != nil {
		output.Warn(fmt.Sprintf("could not fully remove partial project at %s: %v", target, rmErr))
		return &RollbackError{Err: primary, CleanupErr: rmErr, Path: target}
	}
	return primary
}
