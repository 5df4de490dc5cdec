// Package scaffold materializes a layout tree onto disk: it ensures every
// described directory exists and every described file exists with its
// resolved content. Filesystem errors are fatal and nothing is rolled
// back; rerunning over a partial tree is safe.
package scaffold
