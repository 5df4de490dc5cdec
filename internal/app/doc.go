// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single linear scaffolding run:
// description loading, tree materialization, the best-effort .gitignore
// copy, and environment provisioning, decoupled from the CLI entrypoint.
package app
