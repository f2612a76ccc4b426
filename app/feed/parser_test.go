package feed

import (
	"testing"
)

const rssSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <description>Example description</description>
    <language>en</language>
    <item>
      <guid>https://example.com/post-1</guid>
      <title>First Post</title>
      <link>https://example.com/post-1</link>
      <description>Post body.</description>
      <pubDate>Fri, 14 Jun 2024 10:30:00 +0000</pubDate>
      <category>golang</category>
      <category>tutorial</category>
    </item>
    <item>
      <title>No GUID Post</title>
      <link>https://example.com/post-2</link>
      <description>Another body.</description>
      <dc:date>2024-06-13T08:00:00Z</dc:date>
    </item>
  </channel>
</rss>`

const atomSample = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <link href="https://example.org"/>
  <entry>
    <id>urn:uuid:entry-1</id>
    <title>Atom Entry</title>
    <link href="https://example.org/entry-1"/>
    <updated>2024-06-14T10:30:00Z</updated>
    <summary>Atom body.</summary>
  </entry>
</feed>`

func TestParserRSS(t *testing.T) {
	p := NewParser()

	metadata, entries, err := p.Run([]byte(rssSample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if metadata.Title != "Example Feed" {
		t.Errorf("Expected title 'Example Feed', got %q", metadata.Title)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.ID != "https://example.com/post-1" {
		t.Errorf("Unexpected ID: %q", first.ID)
	}
	if first.Title != "First Post" {
		t.Errorf("Unexpected title: %q", first.Title)
	}
	if first.Summary != "Post body." {
		t.Errorf("Unexpected summary: %q", first.Summary)
	}
	if first.PublishedParsed == nil {
		t.Error("Expected parsed publication date")
	}
	if len(first.Tags) != 2 || first.Tags[0] != "golang" {
		t.Errorf("Unexpected tags: %v", first.Tags)
	}

	second := entries[1]
	if second.ID != "" {
		t.Errorf("Expected empty ID, got %q", second.ID)
	}
	if second.BestID() != "https://example.com/post-2" {
		t.Errorf("Expected link fallback, got %q", second.BestID())
	}
}

func TestParserAtom(t *testing.T) {
	p := NewParser()

	_, entries, err := p.Run([]byte(atomSample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != "urn:uuid:entry-1" {
		t.Errorf("Unexpected ID: %q", entries[0].ID)
	}
	if entries[0].UpdatedParsed == nil {
		t.Error("Expected parsed updated date")
	}
}

func TestParserInvalidInput(t *testing.T) {
	p := NewParser()

	if _, _, err := p.Run([]byte("this is not a feed")); err == nil {
		t.Error("Expected parse error for non-feed input")
	}
}

func TestBestID(t *testing.T) {
	entry := Entry{ID: "id-1", Link: "https://example.com"}
	if entry.BestID() != "id-1" {
		t.Errorf("Expected explicit ID, got %q", entry.BestID())
	}

	entry = Entry{Link: "https://example.com"}
	if entry.BestID() != "https://example.com" {
		t.Errorf("Expected link fallback, got %q", entry.BestID())
	}

	entry = Entry{}
	if entry.BestID() != "" {
		t.Errorf("Expected empty BestID, got %q", entry.BestID())
	}
}
