package feed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chrisedwards/statsrange/internal/daterange"
)

func testResponse() *PaginatedResponse {
	return &PaginatedResponse{
		Pages: []Page{
			{Posts: []Activity{
				{ID: "a1", Type: "Create", Actor: Actor{Handle: "@alice@mastodon.social"}},
				{ID: "a2", Type: "Announce", Actor: Actor{Handle: "@bob@ghost.org"}},
			}, Next: "cursor-1"},
			{Posts: []Activity{
				{ID: "a3", Type: "Create", Actor: Actor{Handle: "@carol@fosstodon.org"}},
			}},
		},
	}
}

func TestStore_SyncFlattensPages(t *testing.T) {
	s := NewStore("", nil)
	s.Sync(testResponse())

	got := s.Posts()
	want := []string{"a1", "a2", "a3"}
	if len(got) != len(want) {
		t.Fatalf("len(Posts()) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Posts()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestStore_SyncReplaces(t *testing.T) {
	s := NewStore("", nil)
	s.Sync(testResponse())
	s.Sync(&PaginatedResponse{Pages: []Page{{Posts: []Activity{{ID: "b1"}}}}})

	got := s.Posts()
	if len(got) != 1 || got[0].ID != "b1" {
		t.Errorf("Posts() = %v, want [b1]", got)
	}
}

func TestStore_SyncNilIsNoop(t *testing.T) {
	s := NewStore("", nil)
	s.Sync(testResponse())

	s.Sync(nil)
	s.Sync(&PaginatedResponse{})

	if got := len(s.Posts()); got != 3 {
		t.Errorf("len(Posts()) = %d, want 3 after nil syncs", got)
	}
}

func TestStore_SyncEmptyPagesClears(t *testing.T) {
	s := NewStore("", nil)
	s.Sync(testResponse())
	s.Sync(&PaginatedResponse{Pages: []Page{}})

	if got := len(s.Posts()); got != 0 {
		t.Errorf("len(Posts()) = %d, want 0", got)
	}
}

func TestStore_PostsReturnsCopy(t *testing.T) {
	s := NewStore("", nil)
	s.SetPosts([]Activity{{ID: "a1"}})

	got := s.Posts()
	got[0].ID = "mutated"

	if s.Posts()[0].ID != "a1" {
		t.Error("mutating Posts() result changed the store")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore("", nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Sync(testResponse())
		}()
		go func() {
			defer wg.Done()
			_ = s.Posts()
		}()
	}
	wg.Wait()

	if got := len(s.Posts()); got != 3 {
		t.Errorf("len(Posts()) = %d, want 3", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.json")

	s1 := NewStore(path, nil)
	s1.Sync(testResponse())
	if err := s1.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	s2 := NewStore(path, nil)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got := s2.Posts()
	if len(got) != 3 {
		t.Fatalf("len(Posts()) = %d, want 3", len(got))
	}
	if got[1].Actor.Handle != "@bob@ghost.org" {
		t.Errorf("Posts()[1].Actor.Handle = %q, want @bob@ghost.org", got[1].Actor.Handle)
	}
}

func TestStore_SaveStampsInjectedClock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	syncedAt := time.Date(2024, 1, 12, 7, 0, 0, 0, time.UTC)

	s := NewStore(path, daterange.FixedClock{T: syncedAt})
	s.Sync(testResponse())
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var cacheData CacheData
	if err := json.Unmarshal(data, &cacheData); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cacheData.SyncedAt != syncedAt.Unix() {
		t.Errorf("SyncedAt = %d, want %d", cacheData.SyncedAt, syncedAt.Unix())
	}
	if cacheData.Version != cacheVersion {
		t.Errorf("Version = %d, want %d", cacheData.Version, cacheVersion)
	}
}

func TestStore_LoadNonexistent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nonexistent.json"), nil)
	if err := s.Load(); err != nil {
		t.Errorf("Load of nonexistent file should not error, got: %v", err)
	}
}

func TestStore_LoadIgnoresOtherVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	content := `{"version": 99, "posts": [{"id": "old"}]}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := NewStore(path, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := len(s.Posts()); got != 0 {
		t.Errorf("len(Posts()) = %d, want 0 for unknown cache version", got)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := NewStore(path, nil).Load(); err == nil {
		t.Error("Load of corrupt file should error")
	}
}

func TestStore_SaveCreatesDirWithPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "feed.json")

	s := NewStore(path, nil)
	s.SetPosts([]Activity{{ID: "a1"}})
	if err := s.Save(); err != nil {
		t.Fatalf("Save should create parent dir: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist after Save: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("File permissions = %o, want 0600", perm)
	}
}

func TestReadResponse(t *testing.T) {
	input := `{
  "pages": [
    {"posts": [{"id": "a1", "type": "Create", "actor": {"handle": "@alice@mastodon.social"}, "object": {"type": "Article", "name": "Hello", "published": "2024-01-10T08:00:00Z"}}], "next": "c1"},
    {"posts": []}
  ]
}`

	resp, err := ReadResponse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadResponse() error = %v", err)
	}
	if len(resp.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(resp.Pages))
	}
	post := resp.Pages[0].Posts[0]
	if post.Object.Published != "2024-01-10T08:00:00Z" {
		t.Errorf("Published = %q, want 2024-01-10T08:00:00Z", post.Object.Published)
	}
	if post.Actor.Handle != "@alice@mastodon.social" {
		t.Errorf("Handle = %q, want @alice@mastodon.social", post.Actor.Handle)
	}
}

func TestReadResponse_Invalid(t *testing.T) {
	if _, err := ReadResponse(strings.NewReader("[1, 2")); err == nil {
		t.Error("ReadResponse() expected error for invalid JSON")
	}
}
