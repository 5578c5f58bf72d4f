package feed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/chrisedwards/statsrange/internal/daterange"
)

// cacheVersion is bumped when the cache file layout changes.
const cacheVersion = 1

// CacheData is the top-level structure for the cache file.
type CacheData struct {
	Version  int        `json:"version"`
	SyncedAt int64      `json:"synced_at"`
	Posts    []Activity `json:"posts"`
}

// Store keeps the flattened posts of the current feed.
// Thread-safe for concurrent access.
type Store struct {
	path  string
	clock daterange.Clock
	mu    sync.RWMutex
	posts []Activity
}

// NewStore creates a Store that persists to the given path.
// An empty path disables Load and Save. clock stamps SyncedAt on Save;
// nil uses the system clock.
func NewStore(path string, clock daterange.Clock) *Store {
	if clock == nil {
		clock = daterange.RealClock{}
	}
	return &Store{path: path, clock: clock}
}

// Posts returns a copy of the stored posts.
func (s *Store) Posts() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Activity, len(s.posts))
	copy(out, s.posts)
	return out
}

// SetPosts replaces the stored posts.
func (s *Store) SetPosts(posts []Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]Activity(nil), posts...)
}

// Sync replaces the stored posts with every post of resp, page by page.
// A nil response, or one without pages, leaves the store unchanged.
func (s *Store) Sync(resp *PaginatedResponse) {
	if resp == nil || resp.Pages == nil {
		return
	}
	var all []Activity
	for _, page := range resp.Pages {
		all = append(all, page.Posts...)
	}
	s.SetPosts(all)
}

// Load reads the cache from disk. Returns nil if file doesn't exist.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var cacheData CacheData
	if err := json.Unmarshal(data, &cacheData); err != nil {
		return err
	}
	if cacheData.Version != cacheVersion {
		return nil
	}

	s.posts = cacheData.Posts
	return nil
}

// Save writes the cache to disk.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	cacheData := CacheData{
		Version:  cacheVersion,
		SyncedAt: s.clock.Now().Unix(),
		Posts:    s.posts,
	}

	data, err := json.MarshalIndent(cacheData, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}
