package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/scaffoldgo/internal/app"
	"github.com/vk/scaffoldgo/internal/codec"
	"github.com/vk/scaffoldgo/internal/settings"
	"github.com/vk/scaffoldgo/internal/venv"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageErr builds the exit-code-2 error used for all argument and
// precondition violations. These are reported before any side effect.
func usageErr(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError. Precedence per value: explicit flag, then environment
// variable, then settings file, then built-in default.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("scaffoldgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ScaffoldGo - Materializes a project layout from a declarative description
and provisions an isolated Python virtual environment for it.

Usage:
  scaffoldgo [options] [DESCRIPTION_PATH]

Arguments:
  DESCRIPTION_PATH
    Path to a structure description file (.json, .yaml, .yml or .toml).
    Mandatory unless -env-only is set.

Options:
`)
		flagSet.PrintDefaults()
	}

	destFlag := flagSet.String("destination", "", "Destination directory; must already exist. Defaults to the current directory.")
	dFlag := flagSet.String("d", "", "Destination directory (shorthand).")
	interpreterFlag := flagSet.String("interpreter", "", "Interpreter used to create the virtual environment. Defaults to 'python3'.")
	envOnlyFlag := flagSet.Bool("env-only", false, "Skip structure creation and only provision the environment.")
	settingsFlag := flagSet.String("settings", "", "Path to an HCL settings file. Defaults to './scaffold.hcl' when present.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, usageErr("expected at most one positional argument, got %d", flagSet.NArg())
	}
	descPath := flagSet.Arg(0)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, false, fmt.Errorf("cannot determine working directory: %w", err)
	}

	var sets *settings.Settings
	if *settingsFlag != "" {
		sets, err = settings.Load(*settingsFlag)
	} else {
		sets, err = settings.Discover(cwd)
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	dest := firstNonEmpty(*destFlag, *dFlag, os.Getenv("SCAFFOLDGO_DESTINATION"), cwd)
	interpreter := firstNonEmpty(*interpreterFlag, os.Getenv("SCAFFOLDGO_INTERPRETER"), sets.Interpreter, venv.DefaultInterpreter)
	logFormat := strings.ToLower(firstNonEmpty(*logFormatFlag, sets.LogFormat, "text"))
	logLevel := strings.ToLower(firstNonEmpty(*logLevelFlag, sets.LogLevel, "info"))

	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageErr("invalid log-format: must be 'text' or 'json'")
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageErr("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *envOnlyFlag {
		if descPath != "" {
			return nil, false, usageErr("a description file and -env-only are mutually exclusive")
		}
	} else {
		if descPath == "" {
			flagSet.Usage()
			return nil, false, usageErr("a structure description file is required unless -env-only is set")
		}
		if err := validateDescriptionPath(descPath); err != nil {
			return nil, false, err
		}
	}

	if info, err := os.Stat(dest); err != nil {
		return nil, false, usageErr("destination directory %q does not exist", dest)
	} else if !info.IsDir() {
		return nil, false, usageErr("%q exists but is not a directory", dest)
	}

	config, err := app.NewConfig(app.Config{
		DescriptionPath: descPath,
		Destination:     dest,
		Interpreter:     interpreter,
		EnvOnly:         *envOnlyFlag,
		EnvDir:          sets.EnvDir,
		Requirements:    sets.Requirements,
		GitignoreDir:    sets.GitignoreDir,
		SearchRoot:      cwd,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// validateDescriptionPath enforces the preconditions on the positional
// argument: the file must exist, be regular, and carry a recognized
// structured-data extension. Content is not parsed here.
func validateDescriptionPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return usageErr("description file %q does not exist", path)
	}
	if !info.Mode().IsRegular() {
		return usageErr("%q is not a regular file", path)
	}
	if !codec.SupportedExtension(path) {
		return usageErr("%q is not a recognized description format (expected one of: %s)",
			path, strings.Join(codec.SupportedExtensions(), ", "))
	}
	return nil
}

// firstNonEmpty returns the first string in vals that is not empty.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
