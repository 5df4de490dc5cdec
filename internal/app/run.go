package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/scaffoldgo/internal/codec"
	"github.com/vk/scaffoldgo/internal/ctxlog"
	"github.com/vk/scaffoldgo/internal/fsutil"
	"github.com/vk/scaffoldgo/internal/scaffold"
	"github.com/vk/scaffoldgo/internal/venv"
)

// Run executes one scaffolding run: a single linear flow with no branching
// back. Any step's failure aborts the run before the success report.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.EnvOnly {
		a.logger.Info("Environment-only mode: skipping structure creation.")
	} else {
		// The description is parsed in full before anything touches disk,
		// so a malformed file causes zero side effects.
		root, err := codec.LoadFile(ctx, cfg.DescriptionPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.outW, "Creating project structure in %s\n", cfg.Destination)
		if err := scaffold.Materialize(ctx, cfg.Destination, root); err != nil {
			return err
		}
		fmt.Fprintln(a.outW, "Project structure created successfully")

		a.copyGitignore(ctx, cfg)
	}

	prov := venv.New(a.runner, venv.Options{
		EnvDir:       cfg.EnvDir,
		Requirements: cfg.Requirements,
	})
	envPath, err := prov.Provision(ctx, cfg.Destination, cfg.Interpreter)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Virtual environment created at %s\n", envPath)
	fmt.Fprintln(a.outW, "Project setup complete!")
	fmt.Fprintln(a.outW)
	fmt.Fprintln(a.outW, "To activate the virtual environment:")
	fmt.Fprintf(a.outW, "  source %s\n", filepath.Join(envPath, "bin", "activate"))
	fmt.Fprintln(a.outW, "To run the application:")
	fmt.Fprintf(a.outW, "  python %s\n", filepath.Join(cfg.Destination, "run.py"))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// copyGitignore looks for a <GitignoreDir>/.gitignore template under the
// search root and copies it into the destination. Best effort only: any
// failure downgrades to a warning and the run continues.
func (a *App) copyGitignore(ctx context.Context, cfg *Config) {
	logger := ctxlog.FromContext(ctx)

	src, err := fsutil.FindFileUnderDir(cfg.SearchRoot, cfg.GitignoreDir, ".gitignore")
	if err != nil {
		logger.Warn("No .gitignore template found, skipping copy.",
			"search_root", cfg.SearchRoot, "dir", cfg.GitignoreDir, "error", err)
		return
	}

	dst := filepath.Join(cfg.Destination, ".gitignore")
	if err := fsutil.CopyFile(src, dst); err != nil {
		logger.Warn("Could not copy .gitignore, continuing.", "src", src, "error", err)
		return
	}
	logger.Debug("Copied .gitignore.", "src", src, "dst", dst)
}
