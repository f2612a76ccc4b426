package feed

import (
	"time"
)

// Entry is a single normalized feed item. All optional date and content
// fields are resolved once at the gofeed boundary; downstream code never
// probes the raw feed structures.
type Entry struct {
	ID          string
	Title       string
	Link        string
	Content     string // full content body, possibly HTML
	Summary     string // feed-level summary/description, possibly HTML
	Description string // secondary description source when a feed carries both
	Tags        []string

	PublishedParsed *time.Time
	UpdatedParsed   *time.Time

	// Raw date strings carried for entries whose dates gofeed could not
	// parse; the recency filter runs them through its own format ladder.
	Published string
	Updated   string
	DCDate    string
}

// BestID returns the identifier used for novelty tracking: the explicit
// entry ID, falling back to the link. May be empty.
func (e *Entry) BestID() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Link
}

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}
