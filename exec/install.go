package exec

import (
	"context"
	"fmt"
	"os/exec"
)

// PackageManager installs a generated project's dependencies.
//
// Implementations wrap a concrete Node.js package manager. They receive an
// Executor at execution time rather than storing one, so the same wrapper
// works against a mocked executor in tests.
type PackageManager interface {
	// Name returns the binary name (also the user-facing identifier)
	Name() string
	// Install runs the dependency install inside dir
	Install(ctx context.Context, e *Executor, dir string) error
}

type npm struct{}

func (npm) Name() string { return "npm" }

func (npm) Install(ctx context.Context, e *Executor, dir string) error {
	return e.withDir(dir).RunWithSpinner(ctx, "Installing dependencies with npm", "npm", "install")
}

type yarn struct{}

func (yarn) Name() string { return "yarn" }

func (yarn) Install(ctx context.Context, e *Executor, dir string) error {
	return e.withDir(dir).RunWithSpinner(ctx, "Installing dependencies with yarn", "yarn", "install")
}

type pnpm struct{}

func (pnpm) Name() string { return "pnpm" }

func (pnpm) Install(ctx context.Context, e *Executor, dir string) error {
	return e.withDir(dir).RunWithSpinner(ctx, "Installing dependencies with pnpm", "pnpm", "install")
}

// packageManagers is the closed set of supported install tools, in detection
// preference order.
var packageManagers = []PackageManager{npm{}, yarn{}, pnpm{}}

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// DetectPackageManager returns the package manager to use.
//
// When preferred is non-empty it must name a supported manager that is present
// on PATH. When empty, the first available manager wins (npm, then yarn, then
// pnpm).
func DetectPackageManager(preferred string) (PackageManager, error) {
	if preferred != "" {
		for _, pm := range packageManagers {
			if pm.Name() == preferred {
				if _, err := lookPath(pm.Name()); err != nil {
					return nil, fmt.Errorf("package manager '%s' not found on PATH: %w", preferred, err)
				}
				return pm, nil
			}
		}
		return nil, fmt.Errorf("unsupported package manager '%s' (supported: npm, yarn, pnpm)", preferred)
	}

	for _, pm := range packageManagers {
		if _, err := lookPath(pm.Name()); err == nil {
			return pm, nil
		}
	}

	return nil, fmt.Errorf("no supported package manager found on PATH (looked for npm, yarn, pnpm)")
}

// withDir returns a copy of the executor that runs in dir.
func (e *Executor) withDir(dir string) *Executor {
	clone := *e
	clone.dir = dir
	return &clone
}
