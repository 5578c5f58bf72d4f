// Package feed holds the posts of a paginated ActivityPub feed and
// filters them by author.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
)

// Actor is the author of an activity.
type Actor struct {
	ID     string `json:"id"`
	Handle string `json:"handle"` // @user@domain
	Name   string `json:"name"`
}

// Object is the content an activity refers to.
type Object struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // Note, Article
	Name      string `json:"name"`
	URL       string `json:"url"`
	Published string `json:"published"` // RFC 3339
}

// Activity is one entry in a feed page.
type Activity struct {
	ID     string `json:"id"`
	Type   string `json:"type"` // Create, Announce
	Actor  Actor  `json:"actor"`
	Object Object `json:"object"`
}

// Page is a single page of a feed response.
type Page struct {
	Posts []Activity `json:"posts"`
	Next  string     `json:"next,omitempty"`
}

// PaginatedResponse is every page fetched so far, in order.
type PaginatedResponse struct {
	Pages []Page `json:"pages"`
}

// ReadResponse decodes a paginated response.
func ReadResponse(r io.Reader) (*PaginatedResponse, error) {
	var resp PaginatedResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding feed response: %w", err)
	}
	return &resp, nil
}
