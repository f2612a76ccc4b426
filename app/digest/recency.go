package digest

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"github.com/lysyi3m/rss-digest/app/feed"
)

// dateLayouts is the ordered ladder of formats tried against raw date
// strings. The first field and layout that parse win; layouts without zone
// information yield UTC timestamps.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",       // ISO 8601 with timezone
	"2006-01-02T15:04:05",             // ISO 8601 without timezone
	"Mon, 02 Jan 2006 15:04:05 -0700", // RFC 822 with numeric timezone
	"Mon, 02 Jan 2006 15:04:05 MST",   // RFC 822 with zone abbreviation
	"Mon, 02 Jan 2006 15:04:05",       // RFC 822 without timezone
	"2006-01-02 15:04:05 -0700",       // Space-separated with timezone
	"2006-01-02 15:04:05",             // Space-separated without timezone
	"02 Jan 2006 15:04:05 -0700",      // Alternative format with timezone
	"02 Jan 2006 15:04:05",            // Alternative format without timezone
	"2006-01-02",                      // Just date
}

var idDatePattern = regexp.MustCompile(`(\d{4})[-/](\d{2})[-/](\d{2})`)

// RecencyFilter decides whether an entry falls within the lookback window.
// An entry whose date cannot be determined at all is excluded and reported
// as a diagnostic event for taxonomy tuning.
type RecencyFilter struct{}

func NewRecencyFilter() *RecencyFilter {
	return &RecencyFilter{}
}

func (f *RecencyFilter) Run(entry feed.Entry, now time.Time, windowDays int) bool {
	published, ok := f.extractTime(entry)
	if !ok {
		slog.Warn("No date found for entry, excluding from digest",
			"title", entry.Title,
			"id", entry.ID,
			"link", entry.Link,
			"published_raw", entry.Published,
			"updated_raw", entry.Updated,
			"dc_date_raw", entry.DCDate)
		return false
	}

	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	// Future-dated entries are included: no upper bound is applied
	return !published.Before(cutoff)
}

func (f *RecencyFilter) extractTime(entry feed.Entry) (time.Time, bool) {
	// Pre-parsed fields first, in fixed priority order
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed, true
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed, true
	}

	// Then raw strings against the layout ladder
	for _, raw := range []string{entry.Published, entry.Updated, entry.DCDate} {
		if raw == "" {
			continue
		}
		if t, ok := parseDateString(raw); ok {
			return t, true
		}
	}

	// Some feeds embed the publication date in their entry IDs
	if entry.ID != "" {
		if m := idDatePattern.FindStringSubmatch(entry.ID); m != nil {
			if t, err := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3]); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

func parseDateString(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	// Last resort: tolerant parsing for the long tail of nonstandard formats
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.UTC(), true
	}

	return time.Time{}, false
}
