// Package settings loads the optional HCL settings file that supplies
// workspace-level defaults for the scaffolder. Explicit flags always win
// over settings; settings win over built-in defaults.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFileName is looked up in the working directory when no explicit
// settings path is given.
const DefaultFileName = "scaffold.hcl"

// Settings holds the optional workspace defaults. Every attribute is
// optional; zero values mean "not set".
type Settings struct {
	Interpreter  string `hcl:"interpreter,optional"`
	EnvDir       string `hcl:"venv_dir,optional"`
	Requirements string `hcl:"requirements,optional"`
	GitignoreDir string `hcl:"gitignore_dir,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	LogFormat    string `hcl:"log_format,optional"`
}

// Load parses the settings file at path. A malformed file is an error; the
// caller decides whether the file was mandatory.
func Load(path string) (*Settings, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var s Settings
	diags = gohcl.DecodeBody(hclFile.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	return &s, nil
}

// Discover loads DefaultFileName from dir when it exists. An absent file
// is not an error and yields empty settings.
func Discover(dir string) (*Settings, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	} else if err != nil {
		return nil, err
	}
	return Load(path)
}
