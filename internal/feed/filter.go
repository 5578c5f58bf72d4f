package feed

import (
	"path/filepath"
	"strings"
)

// Filter applies include/exclude patterns to actor handles.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a Filter with the given include and exclude patterns.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// Apply returns the posts whose actor handle matches an include pattern
// and no exclude pattern. An empty include list matches every actor.
func (f *Filter) Apply(posts []Activity) []Activity {
	var out []Activity
	for _, p := range posts {
		if f.Match(p.Actor.Handle) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single handle passes the filter.
func (f *Filter) Match(handle string) bool {
	if len(f.include) > 0 && !MatchAny(f.include, handle) {
		return false
	}
	return !MatchAny(f.exclude, handle)
}

// MatchAny reports whether handle matches one of patterns. An empty
// pattern list matches nothing.
func MatchAny(patterns []string, handle string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, handle) {
			return true
		}
	}
	return false
}

// MatchPattern matches an actor handle such as "@alice@mastodon.social"
// against a glob like "*@mastodon.social" or "@alice@*". Handles are
// compared case-insensitively; a malformed glob never matches.
func MatchPattern(pattern, handle string) bool {
	matched, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(handle))
	return err == nil && matched
}
