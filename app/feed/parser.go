package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) (*Metadata, []Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, p.normalizeItem(item))
	}

	return metadata, entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		ID:        item.GUID,
		Title:     item.Title,
		Link:      item.Link,
		Content:   item.Content,
		Summary:   item.Description,
		Published: item.Published,
		Updated:   item.Updated,
	}

	if item.PublishedParsed != nil {
		entry.PublishedParsed = item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		entry.UpdatedParsed = item.UpdatedParsed
	}

	if item.Categories != nil {
		entry.Tags = item.Categories
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
		entry.DCDate = item.DublinCoreExt.Date[0]
	}

	return entry
}
