package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/backforge/exec"
	"github.com/simonhull/backforge/input"
	"github.com/simonhull/backforge/internal/config"
	"github.com/simonhull/backforge/internal/project"
	"github.com/simonhull/backforge/internal/templates"
	"github.com/simonhull/backforge/output"
	"github.com/spf13/cobra"
)

// CreateCmd creates and returns the 'create' command for scaffolding projects
func CreateCmd() *cobra.Command {
	var (
		templateFlag string
		pmFlag       string
		dryRun       bool
		skipInstall  bool
	)

	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new backend project",
		Long: `Creates a new Node.js backend project from a preset archetype.

When the project name or template is omitted, backforge asks interactively.

Example:
  backforge create my-app --template basic
  backforge create`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCreate(cmd.Context(), args, templateFlag, pmFlag, dryRun, skipInstall); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Template kind (basic, chatapp, ecom, blog, aichat)")
	cmd.Flags().StringVar(&pmFlag, "pm", "", "Package manager for the install step (npm, yarn, pnpm)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing anything")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip the dependency install step")

	return cmd
}

func runCreate(ctx context.Context, args []string, templateFlag, pmFlag string, dryRun, skipInstall bool) error {
	cfg, err := config.Load()
	if err != nil {
		output.Warn(fmt.Sprintf("ignoring user config: %v", err))
		cfg = &config.Config{}
	}

	name, err := resolveName(args)
	if err != nil {
		return err
	}

	kind, err := resolveKind(templateFlag, cfg.Template)
	if err != nil {
		return err
	}

	scaffolder := project.NewScaffolder(templates.Registry())

	if dryRun {
		ops, err := scaffolder.Plan(name, kind)
		if err != nil {
			return err
		}
		output.Info(fmt.Sprintf("Dry run for %s (%s):", name, kind))
		for _, op := range ops {
			output.Step(op.Description())
		}
		output.Info("Nothing was written.")
		return nil
	}

	output.Verbose(fmt.Sprintf("Creating project %s from template %s", name, kind))

	if err := scaffolder.Scaffold(ctx, name, kind); err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Created project: %s", name))

	installed := false
	if !skipInstall && !cfg.SkipInstall {
		installed = installDeps(ctx, name, firstNonEmpty(pmFlag, cfg.PackageManager))
	}

	output.Info("Next steps:")
	output.Step(fmt.Sprintf("cd %s", name))
	if !installed {
		output.Step("npm install")
	}
	output.Step("npm run dev")

	return nil
}

// resolveName returns the project name from args or asks for one.
func resolveName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	name, err := input.Ask("Project name", "my-app", project.ValidateName)
	if err != nil {
		return "", err
	}
	return name, nil
}

// resolveKind returns the template kind from the flag, the user config, or an
// interactive selection, in that order.
func resolveKind(flag, configured string) (project.Kind, error) {
	raw := firstNonEmpty(flag, configured)
	if raw != "" {
		return project.ParseKind(raw)
	}

	opts := make([]input.Option, len(project.AllKinds))
	for i, kind := range project.AllKinds {
		opts[i] = input.Option{
			Label: string(kind),
			Desc:  templates.Describe(kind),
			Value: string(kind),
		}
	}

	chosen, err := input.Select("Choose a template", opts)
	if err != nil {
		return "", err
	}
	return project.ParseKind(chosen)
}

// installDeps runs the package-manager install inside the new project.
// A failed install never undoes the scaffold; the user can rerun it by hand.
func installDeps(ctx context.Context, name, preferred string) bool {
	if !input.Confirm("Install dependencies now?", true) {
		return false
	}

	pm, err := exec.DetectPackageManager(preferred)
	if err != nil {
		output.Warn(err.Error())
		return false
	}

	target, err := filepath.Abs(name)
	if err != nil {
		output.Warn(fmt.Sprintf("could not resolve project path: %v", err))
		return false
	}

	executor := exec.NewExecutor(nil)
	if err := pm.Install(ctx, executor, target); err != nil {
		if errors.Is(err, context.Canceled) {
			output.Warn("dependency install cancelled")
		} else {
			output.Warn(fmt.Sprintf("dependency install failed: %v", err))
		}
		return false
	}

	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
