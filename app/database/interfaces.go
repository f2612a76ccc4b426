package database

import "time"

type SeenEntry struct {
	FeedName string
	EntryID  string
	SeenAt   time.Time
}

// SeenRepository is the durable set of already-delivered entries. IsNew
// fails open: when the store is unreachable, entries are reported novel so
// that content is over-posted rather than silently suppressed.
type SeenRepository interface {
	IsNew(feedName, entryID string) bool
	MarkSeen(feedName, entryID string) error
	LoadAll() (map[string][]string, error)
	CountByFeed() (map[string]int, error)
	Count() (int, error)
}
