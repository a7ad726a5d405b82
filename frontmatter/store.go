package frontmatter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRoot is where content files live, relative to the working directory.
	DefaultRoot = "src/content/docs"
	// DefaultExtension is appended to a document ID to locate its source file.
	DefaultExtension = ".md"
)

// Status classifies the outcome of a Resolve call.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusUnreadable
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Result is the outcome of resolving one document. Metadata is empty unless
// Status is StatusFound.
type Result struct {
	Metadata Metadata
	Status   Status
	Err      error
}

// Found reports whether metadata was read successfully.
func (r Result) Found() bool {
	return r.Status == StatusFound
}

// ReadFunc returns the raw source of the document with the given ID.
type ReadFunc func(id string) ([]byte, error)

// FileReader returns a ReadFunc that reads <root>/<id><ext> from disk.
func FileReader(root, ext string) ReadFunc {
	return func(id string) ([]byte, error) {
		return os.ReadFile(filepath.Join(root, filepath.FromSlash(id)+ext))
	}
}

// FSReader returns a ReadFunc that reads <id><ext> from fsys.
func FSReader(fsys fs.FS, ext string) ReadFunc {
	return func(id string) ([]byte, error) {
		return fs.ReadFile(fsys, id+ext)
	}
}

// Logger is the logging surface the store needs. echo.Logger satisfies it.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable documents.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store memoizes document metadata. Once an ID resolves successfully its
// Metadata is never replaced or refreshed.
type Store struct {
	read   ReadFunc
	logger Logger

	mu      sync.RWMutex
	entries map[string]Metadata
	group   singleflight.Group
}

// NewStore creates a Store backed by read. A nil read uses
// FileReader(DefaultRoot, DefaultExtension).
func NewStore(read ReadFunc, opts ...Option) *Store {
	if read == nil {
		read = FileReader(DefaultRoot, DefaultExtension)
	}
	s := &Store{
		read:    read,
		logger:  log.New("frontmatter"),
		entries: make(map[string]Metadata),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the metadata for id, reading and caching it on first use.
// Failures are reported in the Result and are not cached.
func (s *Store) Resolve(id string) Result {
	if md, ok := s.cached(id); ok {
		return Result{Metadata: md, Status: StatusFound}
	}

	v, _, _ := s.group.Do(id, func() (interface{}, error) {
		if md, ok := s.cached(id); ok {
			return Result{Metadata: md, Status: StatusFound}, nil
		}
		return s.load(id), nil
	})
	res := v.(Result)
	if !res.Found() {
		s.logger.Warnf("frontmatter: %s %s: %v", id, res.Status, res.Err)
	}
	return res
}

// Lookup returns the metadata for id, or empty Metadata when it cannot be read.
func (s *Store) Lookup(id string) Metadata {
	return s.Resolve(id).Metadata
}

// Len returns the number of cached documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) cached(id string) (Metadata, bool) {
	s.mu.RLock()
	md, ok := s.entries[id]
	s.mu.RUnlock()
	return md, ok
}

func (s *Store) load(id string) Result {
	raw, err := s.read(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: StatusNotFound, Err: err}
		}
		return Result{Status: StatusUnreadable, Err: err}
	}
	md, err := Parse(raw)
	if err != nil {
		return Result{Status: StatusUnreadable, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[id]; ok {
		return Result{Metadata: existing, Status: StatusFound}
	}
	s.entries[id] = md
	return Result{Metadata: md, Status: StatusFound}
}
