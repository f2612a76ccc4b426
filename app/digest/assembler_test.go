package digest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/rss-digest/app/feed"
)

func testClassified(feedName, title, id string, category string) Classified {
	return Classified{
		FeedName: feedName,
		Category: category,
		TLDR:     "Summary of " + title + ".",
		Entry: feed.Entry{
			ID:    id,
			Title: title,
			Link:  "https://example.com/" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		},
	}
}

func TestAssemblerCategoryOrder(t *testing.T) {
	a := NewAssembler(4000)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	byCategory := map[string][]Classified{
		DefaultCategory: {testClassified("Blog", "Misc Post", "misc-1", DefaultCategory)},
		"cloud":         {testClassified("Blog", "Cloud Post", "cloud-1", "cloud")},
		"tutorial":      {testClassified("Blog", "Tutorial Post", "tut-1", "tutorial")},
	}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) != 3 {
		t.Fatalf("Expected 3 units, got %d", len(batch.Units))
	}
	expected := []string{"tutorial", "cloud", DefaultCategory}
	for i, category := range expected {
		if batch.Units[i].Category != category {
			t.Errorf("Unit %d: expected category %s, got %s", i, category, batch.Units[i].Category)
		}
	}
}

func TestAssemblerSkipsEmptyCategories(t *testing.T) {
	a := NewAssembler(4000)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	byCategory := map[string][]Classified{
		"security": {testClassified("Blog", "Security Post", "sec-1", "security")},
	}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(batch.Units))
	}
	if batch.Units[0].Category != "security" {
		t.Errorf("Expected security unit, got %s", batch.Units[0].Category)
	}
}

func TestAssemblerTimestampOnFirstUnitOnly(t *testing.T) {
	a := NewAssembler(4000)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	byCategory := map[string][]Classified{
		"tutorial": {testClassified("Blog", "Tutorial Post", "tut-1", "tutorial")},
		"cloud":    {testClassified("Blog", "Cloud Post", "cloud-1", "cloud")},
	}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) != 2 {
		t.Fatalf("Expected 2 units, got %d", len(batch.Units))
	}
	if !batch.Units[0].First {
		t.Error("Expected first unit to be marked first")
	}
	if !strings.Contains(batch.Units[0].Header, "📅 2024-06-15 12:00:00") {
		t.Errorf("Expected timestamp marker on first unit, got %q", batch.Units[0].Header)
	}
	if strings.Contains(batch.Units[1].Header, "📅") {
		t.Errorf("Expected no timestamp on later units, got %q", batch.Units[1].Header)
	}
}

func TestAssemblerGreedyPacking(t *testing.T) {
	a := NewAssembler(600)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	entries := make([]Classified, 5)
	for i := range entries {
		entries[i] = testClassified("Blog", fmt.Sprintf("Tutorial Post %d", i), fmt.Sprintf("tut-%d", i), "tutorial")
	}
	byCategory := map[string][]Classified{"tutorial": entries}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) < 2 {
		t.Fatalf("Expected multiple units under a tight limit, got %d", len(batch.Units))
	}

	header := "# 📖 Tutorials & Guides"
	for i, unit := range batch.Units {
		if unit.Category != "tutorial" {
			t.Errorf("Unit %d: expected tutorial, got %s", i, unit.Category)
		}
		if i > 0 && unit.Header != header {
			t.Errorf("Unit %d: expected continuation header %q, got %q", i, header, unit.Header)
		}
		if len(unit.Header)+len(unit.Body) > 600+len("\n\n") {
			t.Errorf("Unit %d exceeds length limit: %d", i, len(unit.Header)+len(unit.Body))
		}
	}

	total := 0
	for _, unit := range batch.Units {
		total += len(unit.Entries)
	}
	if total != 5 {
		t.Errorf("Expected all 5 entries referenced across units, got %d", total)
	}
}

func TestAssemblerOversizedEntryStillEmitted(t *testing.T) {
	a := NewAssembler(200)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// A single entry larger than the limit still gets a unit of its own
	big := testClassified("Blog", "Huge Post", "huge-1", "tutorial")
	big.TLDR = strings.Repeat("word ", 100)
	byCategory := map[string][]Classified{"tutorial": {big}}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(batch.Units))
	}
	if len(batch.Units[0].Entries) != 1 {
		t.Errorf("Expected the oversized entry referenced, got %d", len(batch.Units[0].Entries))
	}
}

func TestAssemblerSeenRefsSkipBlankIDs(t *testing.T) {
	a := NewAssembler(4000)
	taxonomy := DefaultTaxonomies()["engineering"]
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	withID := testClassified("Blog", "Has ID", "id-1", "tutorial")
	withLink := testClassified("Blog", "Link Only", "", "tutorial")
	blank := testClassified("Blog", "Nothing", "", "tutorial")
	blank.Entry.Link = ""

	byCategory := map[string][]Classified{"tutorial": {withID, withLink, blank}}

	batch := a.Run("engineering-news", taxonomy, byCategory, now)

	if len(batch.Units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(batch.Units))
	}
	refs := batch.Units[0].Entries
	if len(refs) != 2 {
		t.Fatalf("Expected 2 seen refs, got %d", len(refs))
	}
	if refs[0].EntryID != "id-1" {
		t.Errorf("Expected explicit ID, got %q", refs[0].EntryID)
	}
	if refs[1].EntryID != withLink.Entry.Link {
		t.Errorf("Expected link fallback as ID, got %q", refs[1].EntryID)
	}
}

func TestRenderEntryFormat(t *testing.T) {
	a := NewAssembler(4000)
	published := time.Date(2024, 6, 14, 9, 30, 0, 0, time.UTC)

	classified := testClassified("DEV Community", "Go Concurrency Patterns", "dev-1", "tutorial")
	classified.Entry.PublishedParsed = &published

	rendered := a.renderEntry(classified)

	for _, want := range []string{
		"[Go Concurrency Patterns](https://example.com/go-concurrency-patterns)",
		"*From: DEV Community*",
		"Summary of Go Concurrency Patterns.",
		"*Published: 2024-06-14 09:30:00*",
		"chat.openai.com",
		entryDivider,
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected rendered entry to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestChatGPTLinkEscaped(t *testing.T) {
	link := chatGPTLink("Title & More", "https://example.com/a?b=c")

	if strings.Contains(link, " ") {
		t.Errorf("Expected no raw spaces in link, got %q", link)
	}
	if !strings.HasPrefix(link, "https://chat.openai.com?prompt=") {
		t.Errorf("Unexpected link prefix: %q", link)
	}
	if strings.Contains(link[len("https://chat.openai.com?prompt="):], "&") {
		t.Errorf("Expected ampersand escaped in prompt, got %q", link)
	}
}
