package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpswift/internal/driver"
)

const source = "namespace Bar {\n    class Foo {\n        int x;\n    }\n}\n"

func TestWatchConvertsChangedFiles(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "gen")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var converted []string
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, Config{
			Root:      root,
			Output:    out,
			Recursive: true,
			Debounce:  20 * time.Millisecond,
			Options:   driver.DefaultOptions(),
		}, func(b *driver.Batch) {
			mu.Lock()
			defer mu.Unlock()
			for _, r := range b.Results {
				if !r.Failed() {
					converted = append(converted, r.Output)
				}
			}
		})
	}()

	want := filepath.Join(out, "Foo.swift")
	// the watcher may not be registered yet; keep touching the file
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(root, "Foo.cs"), []byte(source), 0o600)
		_, err := os.Stat(want)
		return err == nil
	}, 5*time.Second, 100*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignored"), 0o600))
	assert.NoFileExists(t, filepath.Join(out, "notes.swift"))

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    var x: Int")

	mu.Lock()
	assert.Contains(t, converted, want)
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingRoot(t *testing.T) {
	err := Watch(context.Background(), Config{Root: filepath.Join(t.TempDir(), "missing")}, nil)
	assert.Error(t, err)
}
