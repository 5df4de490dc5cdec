package app

import (
	"errors"

	"github.com/vk/scaffoldgo/internal/venv"
)

// Config holds all the necessary configuration for one scaffolding run.
type Config struct {
	DescriptionPath string // structure description file; optional in env-only mode
	Destination     string // existing directory the tree is materialized into
	Interpreter     string // interpreter used to create the environment
	EnvOnly         bool   // skip structure creation and the .gitignore copy

	EnvDir       string // environment directory name under the destination
	Requirements string // dependency list file name under the destination
	GitignoreDir string // parent directory name matched by the .gitignore search
	SearchRoot   string // root of the .gitignore search, passed in explicitly

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults for the optional
// fields. Path existence checks belong to the CLI layer; this only guards
// the structural invariants.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptionPath == "" && !cfg.EnvOnly {
		return nil, errors.New("DescriptionPath is required unless environment-only mode is set")
	}
	if cfg.Destination == "" {
		return nil, errors.New("Destination is a required configuration field and cannot be empty")
	}
	if cfg.Interpreter == "" {
		cfg.Interpreter = venv.DefaultInterpreter
	}
	if cfg.GitignoreDir == "" {
		cfg.GitignoreDir = "python"
	}
	if cfg.SearchRoot == "" {
		cfg.SearchRoot = "."
	}
	return &cfg, nil
}
