package digest

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const entryDivider = "•••"

// Assembler renders classified entries into ordered, length-bounded output
// units. Categories are emitted in the taxonomy priority order; entries are
// packed greedily, closing a unit when the next entry would exceed the
// length limit and continuing the same category header in a fresh unit.
type Assembler struct {
	maxUnitLen int
}

func NewAssembler(maxUnitLen int) *Assembler {
	return &Assembler{maxUnitLen: maxUnitLen}
}

func (a *Assembler) Run(channelName string, taxonomy *ChannelTaxonomy, byCategory map[string][]Classified, now time.Time) *Batch {
	batch := &Batch{
		ChannelName: channelName,
		RenderedAt:  now,
	}

	for _, categoryKey := range taxonomy.Order() {
		entries := byCategory[categoryKey]
		if len(entries) == 0 {
			continue
		}

		category := taxonomy.Category(categoryKey)
		header := fmt.Sprintf("# %s %s", category.Icon, category.Name)

		// The very first unit of the batch carries the timestamp marker
		if len(batch.Units) == 0 {
			header = fmt.Sprintf("📅 %s\n\n%s", now.Format("2006-01-02 15:04:05"), header)
		}

		unit := Unit{
			Category: categoryKey,
			Header:   header,
			First:    len(batch.Units) == 0,
		}
		continuationHeader := fmt.Sprintf("# %s %s", category.Icon, category.Name)
		budget := a.maxUnitLen - len(continuationHeader)

		for _, classified := range entries {
			entryText := a.renderEntry(classified)

			if unit.Body != "" && len(unit.Body)+len(entryText) > budget {
				batch.Units = append(batch.Units, unit)
				unit = Unit{
					Category: categoryKey,
					Header:   continuationHeader,
				}
			}

			unit.Body += entryText
			if id := classified.Entry.BestID(); id != "" {
				unit.Entries = append(unit.Entries, SeenRef{
					FeedName: classified.FeedName,
					EntryID:  id,
				})
			}
		}

		batch.Units = append(batch.Units, unit)
	}

	return batch
}

func (a *Assembler) renderEntry(classified Classified) string {
	entry := classified.Entry
	icon := EntryIcon(classified.FeedName, entry.Title)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s [%s](%s)**\n", icon, entry.Title, entry.Link)
	fmt.Fprintf(&b, "*From: %s*\n", classified.FeedName)

	if classified.TLDR != "" {
		fmt.Fprintf(&b, "\n%s\n", classified.TLDR)
	}

	if entry.PublishedParsed != nil {
		fmt.Fprintf(&b, "\n*Published: %s*\n", entry.PublishedParsed.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(&b, "\n[🤖 Ask ChatGPT to summarize this article](%s)\n", chatGPTLink(entry.Title, entry.Link))
	fmt.Fprintf(&b, "\n%s\n\n", entryDivider)

	return b.String()
}

func chatGPTLink(title, link string) string {
	prompt := fmt.Sprintf("Please summarize this article in approximately 100 words and add key learning points: %s - %s", title, link)
	return "https://chat.openai.com?prompt=" + url.QueryEscape(prompt)
}
