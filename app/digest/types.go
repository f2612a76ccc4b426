package digest

import (
	"time"

	"github.com/lysyi3m/rss-digest/app/feed"
)

// Category is one topical bucket of a channel taxonomy. Keyword lists are
// matched as lowercase substrings; any exclusion hit forces the category
// score to zero.
type Category struct {
	Key       string
	Icon      string
	Name      string
	Primary   []string
	Secondary []string
	Exclude   []string
}

// ChannelTaxonomy holds the immutable classification tables for one channel
// type. Priority is the sole tie-break authority: when several categories
// score equal, the one listed first wins.
type ChannelTaxonomy struct {
	Categories map[string]Category
	TagMapping map[string]string
	Priority   []string
}

// Category returns the named category, falling back to default for unknown
// names. The default category always exists.
func (t *ChannelTaxonomy) Category(key string) Category {
	if c, ok := t.Categories[key]; ok {
		return c
	}
	return t.Categories[DefaultCategory]
}

// Order returns the category emission order: the priority list followed by
// the default bucket.
func (t *ChannelTaxonomy) Order() []string {
	order := make([]string, 0, len(t.Priority)+1)
	order = append(order, t.Priority...)
	return append(order, DefaultCategory)
}

// Classified is one entry that survived novelty and recency filtering,
// together with its computed summary and source feed.
type Classified struct {
	FeedName string
	Entry    feed.Entry
	TLDR     string
	Category string
}

// SeenRef identifies one delivered entry for novelty-store commits.
type SeenRef struct {
	FeedName string
	EntryID  string
}

// Unit is one length-bounded rendered chunk of a digest, analogous to one
// message on the destination surface.
type Unit struct {
	Category string
	Header   string
	Body     string
	Entries  []SeenRef
	First    bool // carries the batch timestamp marker
}

// Batch is the fully assembled output of one channel run.
type Batch struct {
	ChannelName string
	Units       []Unit
	RenderedAt  time.Time
}
