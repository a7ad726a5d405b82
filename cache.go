package blog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/0xdevcult/blog/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("blog: post not found")

// PostLoader returns the enriched, sorted list of published posts.
type PostLoader func(ctx context.Context) ([]content.Document, error)

// PostCache is an in-memory cache of the enriched post list with TTL.
// Frontmatter is memoized separately by the store; this cache only saves
// re-walking the collection on every request.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Document
	fetched time.Time
	ttl     time.Duration
	load    PostLoader
}

// NewPostCache creates a PostCache backed by the given loader.
func NewPostCache(load PostLoader, ttl time.Duration) *PostCache {
	return &PostCache{load: load, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ListPosts returns published posts, newest first. The returned slice is
// shared; callers must not modify it.
func (c *PostCache) ListPosts(ctx context.Context) ([]content.Document, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []content.Document{}
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}

// GetPost returns the published post whose link is path, e.g.
// "/posts/2025/deep/".
func (c *PostCache) GetPost(ctx context.Context, path string) (content.Document, error) {
	posts, err := c.ListPosts(ctx)
	if err != nil {
		return content.Document{}, err
	}
	for _, p := range posts {
		if content.Link(p.ID) == path {
			return p, nil
		}
	}
	return content.Document{}, ErrNotFound
}

// Latest returns the newest post. ok is false when there are no posts.
func (c *PostCache) Latest(ctx context.Context) (post content.Document, ok bool, err error) {
	posts, err := c.ListPosts(ctx)
	if err != nil || len(posts) == 0 {
		return content.Document{}, false, err
	}
	return posts[0], true, nil
}
