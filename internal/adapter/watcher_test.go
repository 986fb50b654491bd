package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

func TestFSResultsWatcher_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	watcher := NewFSResultsWatcher(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- watcher.Watch(ctx, m.Path(dir), func() {
			calls.Add(1)
		})
	}()

	// Give the watcher time to register the tree.
	time.Sleep(200 * time.Millisecond)

	nested := filepath.Join(dir, "surefire-reports")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		writeTestFile(t, filepath.Join(nested, "TEST-com.acme.FooTest.xml"), parserReport)
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)

	// The burst settles into a single callback.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestFSResultsWatcher_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet")
	watcher := NewFSResultsWatcher(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, watcher.Watch(ctx, m.Path(dir), func() {}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFSResultsWatcher_FollowsRecreatedDir(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := filepath.Join(t.TempDir(), "target", "surefire-reports")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeTestFile(t, filepath.Join(dir, "TEST-old.xml"), parserReport)

	watcher := NewFSResultsWatcher(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- watcher.Watch(ctx, m.Path(dir), func() {
			calls.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)

	// A clean build wipes the reports.
	require.NoError(t, os.RemoveAll(dir))
	time.Sleep(200 * time.Millisecond)

	afterRemoval := calls.Load()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	time.Sleep(100 * time.Millisecond)

	require.Eventually(t, func() bool {
		return calls.Load() > afterRemoval
	}, 3*time.Second, 20*time.Millisecond)

	afterRecreate := calls.Load()

	// Reports written into the new directory are still seen.
	writeTestFile(t, filepath.Join(dir, "TEST-a.xml"), parserReport)

	require.Eventually(t, func() bool {
		return calls.Load() > afterRecreate
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestFSResultsWatcher_IgnoresSiblings(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	target := t.TempDir()
	dir := filepath.Join(target, "surefire-reports")
	watcher := NewFSResultsWatcher(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- watcher.Watch(ctx, m.Path(dir), func() {
			calls.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)

	writeTestFile(t, filepath.Join(target, "build.log"), "compiling")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "classes"), 0o755))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWithinRoot(t *testing.T) {
	root := filepath.Join("target", "surefire-reports")

	assert.True(t, withinRoot(root, root))
	assert.True(t, withinRoot(root, filepath.Join(root, "TEST-a.xml")))
	assert.True(t, withinRoot(root, filepath.Join(root, "nested", "TEST-b.xml")))
	assert.False(t, withinRoot(root, "target"))
	assert.False(t, withinRoot(root, filepath.Join("target", "classes")))
	assert.False(t, withinRoot(root, filepath.Join("target", "surefire-reports-old")))
}
