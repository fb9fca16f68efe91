package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0o644))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.xml"))
	touch(t, filepath.Join(dir, "a.XML"))
	touch(t, filepath.Join(dir, "nested", "c.xml"))
	touch(t, filepath.Join(dir, "nested", "notes.txt"))
	touch(t, filepath.Join(dir, "d.xsd"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xml"), 0o755))

	files, err := Files(dir, ".xml")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.XML"),
		filepath.Join(dir, "b.xml"),
		filepath.Join(dir, "nested", "c.xml"),
	}
	assert.Equal(t, want, files)

	again, err := Files(dir, ".xml")
	require.NoError(t, err)
	assert.Equal(t, files, again, "walk order must be stable")
}

func TestFiles_MissingDir(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "missing"), ".xml")
	assert.Error(t, err)
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 2, Workers(2, 10))
	assert.Equal(t, 3, Workers(8, 3))
	assert.Equal(t, 1, Workers(-1, 1))
	assert.GreaterOrEqual(t, Workers(0, 0), 1)
}

func TestOrdered_KeepsInputOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}
	var running, peak atomic.Int32

	got, err := Ordered(context.Background(), 2, items, func(_ context.Context, n int) int {
		cur := running.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(time.Duration(n) * time.Millisecond)
		running.Add(-1)
		return n * 10
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 10, 40, 20, 30}, got)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestOrdered_Empty(t *testing.T) {
	got, err := Ordered(context.Background(), 4, []string(nil), func(context.Context, string) int { return 1 })
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrdered_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Ordered(ctx, 1, []int{1, 2, 3}, func(context.Context, int) int { return 0 })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
