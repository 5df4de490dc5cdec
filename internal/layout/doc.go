// Package layout defines the format-agnostic model of a structure
// description: a finite tree of named entries where every mapping-shaped
// value is a directory and every other value is a file with optional
// content. Format-specific decoding lives in the codec package; this
// package only models the tree and renders file content to bytes.
package layout
