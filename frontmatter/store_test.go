package frontmatter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *recordingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func countingReader(files map[string]string, calls *atomic.Int32) ReadFunc {
	return func(id string) ([]byte, error) {
		calls.Add(1)
		src, ok := files[id]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return []byte(src), nil
	}
}

func TestResolveCachesAfterFirstRead(t *testing.T) {
	var calls atomic.Int32
	read := countingReader(map[string]string{
		"posts/newest-post": "---\ndate: 2025-12-15\nauthor: Test Author\ntags: [tag1]\n---\nbody\n",
	}, &calls)
	s := NewStore(read, WithLogger(&recordingLogger{}))

	first := s.Resolve("posts/newest-post")
	second := s.Resolve("posts/newest-post")

	require.True(t, first.Found())
	assert.Equal(t, first, second)
	assert.Equal(t, "Test Author", second.Metadata.Author)
	assert.Equal(t, []string{"tag1"}, second.Metadata.Tags)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, s.Len())
}

func TestResolveMissingFile(t *testing.T) {
	var calls atomic.Int32
	logger := &recordingLogger{}
	s := NewStore(countingReader(nil, &calls), WithLogger(logger))

	res := s.Resolve("posts/missing")

	assert.Equal(t, StatusNotFound, res.Status)
	assert.True(t, errors.Is(res.Err, fs.ErrNotExist))
	assert.Equal(t, Metadata{}, res.Metadata)
	assert.Equal(t, Metadata{}, s.Lookup("posts/missing"))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, logger.count())
}

func TestResolveUnreadable(t *testing.T) {
	readErr := errors.New("permission denied")
	s := NewStore(func(string) ([]byte, error) { return nil, readErr }, WithLogger(&recordingLogger{}))

	res := s.Resolve("posts/locked")
	assert.Equal(t, StatusUnreadable, res.Status)
	assert.ErrorIs(t, res.Err, readErr)
	assert.Equal(t, Metadata{}, res.Metadata)
}

func TestResolveMalformedBlockIsUnreadable(t *testing.T) {
	var calls atomic.Int32
	s := NewStore(countingReader(map[string]string{
		"posts/broken": "---\ntitle: [oops\n---\n",
	}, &calls), WithLogger(&recordingLogger{}))

	res := s.Resolve("posts/broken")
	assert.Equal(t, StatusUnreadable, res.Status)
	assert.Error(t, res.Err)

	// failures are not cached
	s.Resolve("posts/broken")
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolveAfterFailureRecovers(t *testing.T) {
	files := map[string]string{}
	var calls atomic.Int32
	s := NewStore(countingReader(files, &calls), WithLogger(&recordingLogger{}))

	assert.Equal(t, StatusNotFound, s.Resolve("posts/late").Status)
	files["posts/late"] = "---\nauthor: Late\n---\n"
	res := s.Resolve("posts/late")
	require.True(t, res.Found())
	assert.Equal(t, "Late", res.Metadata.Author)
}

func TestResolveConcurrentFirstAccess(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	read := func(id string) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("---\ndate: 2025-01-01\n---\n"), nil
	}
	s := NewStore(read, WithLogger(&recordingLogger{}))

	const n = 16
	results := make([]Result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Resolve("posts/hot")
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		require.True(t, r.Found())
		assert.Equal(t, results[0].Metadata, r.Metadata)
	}
	assert.LessOrEqual(t, calls.Load(), int32(n))
	assert.Equal(t, 1, s.Len())

	before := calls.Load()
	s.Resolve("posts/hot")
	assert.Equal(t, before, calls.Load())
}

func TestFileReader(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "posts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "posts", "hello.md"),
		[]byte("---\nauthor: Disk\n---\nbody"), 0o644))

	s := NewStore(FileReader(root, DefaultExtension), WithLogger(&recordingLogger{}))

	assert.Equal(t, "Disk", s.Lookup("posts/hello").Author)
	assert.Equal(t, StatusNotFound, s.Resolve("posts/nope").Status)
}

func TestFSReader(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/a.md": {Data: []byte("---\ntags: [x, y]\n---\n")},
	}
	s := NewStore(FSReader(fsys, ".md"), WithLogger(&recordingLogger{}))
	assert.Equal(t, []string{"x", "y"}, s.Lookup("posts/a").Tags)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "not found", StatusNotFound.String())
	assert.Equal(t, "unreadable", StatusUnreadable.String())
}
