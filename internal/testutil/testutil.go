// Package testutil holds shared helpers for exercising a full scaffolding
// run in tests without touching real subprocesses.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordedCall captures one subprocess invocation made through a FakeRunner.
type RecordedCall struct {
	Dir  string
	Name string
	Args []string
}

// FakeRunner satisfies venv.Runner without spawning processes. Err, when
// set, is returned from every call after it has been recorded.
type FakeRunner struct {
	mu    sync.Mutex
	Calls []RecordedCall
	Err   error
}

func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, RecordedCall{Dir: dir, Name: name, Args: args})
	return f.Err
}

// CallCount returns how many subprocesses the runner was asked to start.
func (f *FakeRunner) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// WriteFile creates a file with the given content inside dir and returns
// its full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
