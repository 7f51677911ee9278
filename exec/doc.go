// Package exec provides utilities for executing external commands with
// streamed, styled output.
//
// The backforge core never spawns processes; this package belongs to the CLI
// layer, which uses it for the optional dependency-install step after a
// project has been scaffolded.
//
// # Basic Usage
//
//	executor := exec.NewExecutor(nil)
//	err := executor.Run(ctx, "npm", "install")
//
// Long-running commands can show a spinner instead of raw output:
//
//	err := executor.RunWithSpinner(ctx, "Installing dependencies", "npm", "install")
//
// # Package Managers
//
// DetectPackageManager picks the install tool (npm, yarn, pnpm) from a
// preference or from what is available on PATH:
//
//	pm, err := exec.DetectPackageManager("npm")
//	err = pm.Install(ctx, executor, projectDir)
package exec
