package venv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/scaffoldgo/internal/ctxlog"
)

const (
	// DefaultEnvDir is the environment directory name under the
	// destination. Earlier revisions of this tool used "venv"; the name
	// is now fixed to ".venv".
	DefaultEnvDir = ".venv"

	// DefaultRequirements is the dependency list file name under the
	// destination. Absent or blank means nothing to install.
	DefaultRequirements = "requirements.txt"

	// DefaultInterpreter is the interpreter invoked when the caller does
	// not name one.
	DefaultInterpreter = "python3"
)

// Runner executes one external command to completion and reports its
// outcome as an error. Implementations must block until the process exits.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner is the production Runner: it runs commands with os/exec and
// captures combined output so a failing subprocess surfaces what it
// printed. No timeout is imposed; a hung subprocess hangs the run.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Options tune the fixed names a Provisioner works with. Zero values fall
// back to the defaults above.
type Options struct {
	EnvDir       string
	Requirements string
}

// Provisioner creates isolated environments under a destination directory.
type Provisioner struct {
	runner       Runner
	envDir       string
	requirements string
}

// New builds a Provisioner around the given runner.
func New(runner Runner, opts Options) *Provisioner {
	if opts.EnvDir == "" {
		opts.EnvDir = DefaultEnvDir
	}
	if opts.Requirements == "" {
		opts.Requirements = DefaultRequirements
	}
	return &Provisioner{
		runner:       runner,
		envDir:       opts.EnvDir,
		requirements: opts.Requirements,
	}
}

// Provision creates the environment under dest with the named interpreter
// and, when a non-blank dependency list is present, installs it with the
// environment's pip. Both subprocesses run to completion in order; a
// non-zero exit from either is fatal. Returns the environment root path.
func (p *Provisioner) Provision(ctx context.Context, dest, interpreter string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	envPath := filepath.Join(dest, p.envDir)
	logger.Info("🐍 Creating virtual environment", "path", envPath, "interpreter", interpreter)
	if err := p.runner.Run(ctx, dest, interpreter, "-m", "venv", envPath); err != nil {
		return "", fmt.Errorf("virtual environment creation failed: %w", err)
	}

	reqPath := filepath.Join(dest, p.requirements)
	install, err := hasRequirements(reqPath)
	if err != nil {
		return "", err
	}
	if !install {
		logger.Debug("No dependencies to install.", "requirements", reqPath)
		return envPath, nil
	}

	logger.Info("Installing dependencies", "requirements", reqPath)
	pip := filepath.Join(envPath, "bin", "pip")
	if err := p.runner.Run(ctx, dest, pip, "install", "-r", reqPath); err != nil {
		return "", fmt.Errorf("dependency installation failed: %w", err)
	}
	return envPath, nil
}

// hasRequirements reports whether the dependency list exists and names at
// least one dependency. An absent file means skip; an unreadable one is an
// error.
func hasRequirements(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot read dependency list %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)) != "", nil
}
