// Package venv provisions an isolated Python virtual environment by
// shelling out to the configured interpreter, and optionally installs a
// pinned dependency list into it with the environment's own pip.
// Subprocess execution sits behind the Runner interface so provisioning
// logic is testable without real processes.
package venv
