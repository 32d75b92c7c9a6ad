package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watcherTestConfig = `repos:
  - repo: https://github.com/adrienverge/yamllint
    rev: v1.35.1
    hooks:
      - id: yamllint
`

func TestWatcherValidatesOnStart(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherTestConfig), 0644))

	results := make(chan Result, 1)
	w, err := New(path, 50, func(r Result) {
		select {
		case results <- r:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		require.NotNil(t, r.Config)
		assert.Len(t, r.Config.Repos, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no validation result on startup")
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherTestConfig), 0644))

	results := make(chan Result, 8)
	w, err := New(path, 10, func(r Result) {
		results <- r
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Drain the startup validation
	select {
	case <-results:
	case <-time.After(2 * time.Second):
		t.Fatal("no startup validation")
	}

	// Break the file and expect a failing revalidation
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("repos: [\n"), 0644))

	select {
	case r := <-results:
		assert.Error(t, r.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("no revalidation after write")
	}
}

func TestMatchesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherTestConfig), 0644))

	w, err := New(path, 0, nil)
	require.NoError(t, err)
	defer w.watcher.Close()

	assert.True(t, w.matchesConfig(path))
	assert.False(t, w.matchesConfig(filepath.Join(dir, "other.yaml")))
}
