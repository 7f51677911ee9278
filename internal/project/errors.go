package project

import (
	"fmt"
	"strings"
)

// InvalidNameError reports a project name that fails validation.
// Nothing has touched the filesystem when this is returned.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}

// DirectoryExistsError reports that the target project directory already
// exists. The existing directory is never modified.
type DirectoryExistsError struct {
	Path string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %s", e.Path)
}

// UnknownTemplateError reports a template kind that is not in the registry.
type UnknownTemplateError struct {
	Kind string
}

func (e *UnknownTemplateError) Error() string {
	names := make([]string, len(AllKinds))
	for i, k := range AllKinds {
		names[i] = string(k)
	}
	return fmt.Sprintf("unknown template %q (available: %s)", e.Kind, strings.Join(names, ", "))
}

// RollbackError carries a generation failure whose cleanup also failed.
//
// The primary error stays the one callers observe: Unwrap returns it, so
// errors.Is and errors.As look through to the template's own failure. The
// cleanup outcome rides along as metadata instead of replacing it.
type RollbackError struct {
	Err        error  // Primary generation failure
	CleanupErr error  // Why the partial directory could not be removed
	Path       string // The directory left behind
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("%v (cleanup of %s also failed: %v)", e.Err, e.Path, e.CleanupErr)
}

func (e *RollbackError) Unwrap() error {
	return e.Err
}
