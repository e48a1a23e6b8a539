package filelock

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}

func TestTryLockWhileHeld(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.Lock())
	defer holder.Unlock()

	acquired, err := NewFileLock(lockPath).TryLock()
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "missing.txt")

	require.NoError(t, AtomicWrite(path, []byte("first\n")))
	require.NoError(t, AtomicWrite(path, []byte("second\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestLockAndWrite_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "different.txt")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			line := strings.Repeat(string(rune('a'+n)), 64) + "\n"
			assert.NoError(t, LockAndWrite(path, []byte(strings.Repeat(line, 100))))
		}(i)
	}
	wg.Wait()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 100)
	for _, line := range lines {
		assert.Equal(t, lines[0], line, "one writer's content wins whole")
	}
}
