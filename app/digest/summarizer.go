package digest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/lysyi3m/rss-digest/app/feed"
)

const (
	shortTextWordLimit = 50
	shortTextCharLimit = 500
	summaryWordLimit   = 30
	summarySentences   = 3
)

// Phrases stripped from entry content before summarization. Exact
// substrings, applied in no particular order.
var boilerplatePhrases = []string{
	"undefined", "The post", "appeared first on", "Read more",
	"Continue reading", "Click here", "Read the full article",
	"View original", "Source:", "via", "Posted by", "Published by",
	"Written by", "Share this", "Subscribe to", "Follow us",
	"Join our", "Sign up",
}

// Summarizer produces a bounded extractive TL;DR from raw entry content.
// Short content is passed through verbatim; longer content is reduced to
// the highest-salience sentences by word-frequency scoring.
type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Run returns the summary for an entry, or an empty string when no usable
// text could be obtained. Processing failures degrade to a raw-text prefix
// rather than aborting the entry.
func (s *Summarizer) Run(entry feed.Entry) string {
	content := firstNonEmpty(entry.Content, entry.Summary, entry.Description)
	if content == "" {
		return ""
	}

	text := stripMarkup(content)
	text = stripBoilerplate(text)
	if text == "" {
		return ""
	}

	words := strings.Fields(text)
	if len(words) < shortTextWordLimit {
		return truncateChars(text, shortTextCharLimit)
	}

	summary := s.extractSummary(text)
	if summary == "" {
		return truncateWords(text, summaryWordLimit)
	}

	return truncateWords(summary, summaryWordLimit)
}

func (s *Summarizer) extractSummary(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	// Word-frequency histogram over the whole text, stop words and
	// punctuation excluded, normalized by the maximum observed frequency
	frequencies := make(map[string]float64)
	for _, sentence := range sentences {
		for _, word := range tokenize(sentence) {
			if _, stop := stopWords[word]; stop {
				continue
			}
			frequencies[word]++
		}
	}
	if len(frequencies) == 0 {
		return ""
	}

	maxFrequency := 0.0
	for _, f := range frequencies {
		if f > maxFrequency {
			maxFrequency = f
		}
	}
	for word := range frequencies {
		frequencies[word] /= maxFrequency
	}

	// Sentence score: mean salience of its words
	type scored struct {
		index int
		score float64
	}
	scoredSentences := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		tokens := tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		sum := 0.0
		for _, word := range tokens {
			sum += frequencies[word]
		}
		scoredSentences = append(scoredSentences, scored{index: i, score: sum / float64(len(tokens))})
	}

	sort.SliceStable(scoredSentences, func(a, b int) bool {
		return scoredSentences[a].score > scoredSentences[b].score
	})
	top := scoredSentences
	if len(top) > summarySentences {
		top = top[:summarySentences]
	}

	// Selected sentences go back into document order
	sort.Slice(top, func(a, b int) bool { return top[a].index < top[b].index })

	parts := make([]string, 0, len(top))
	for _, sc := range top {
		parts = append(parts, sentences[sc.index])
	}
	return strings.Join(parts, " ")
}

// stripMarkup reduces possibly-HTML content to plain text with collapsed
// whitespace. On parse failure the raw text is used as-is.
func stripMarkup(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return collapseWhitespace(content)
	}

	doc.Find("script, style, meta, link").Remove()
	return collapseWhitespace(doc.Text())
}

func stripBoilerplate(text string) string {
	for _, phrase := range boilerplatePhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}
	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			// Sentence boundary: terminal punctuation followed by space
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func tokenize(sentence string) []string {
	return strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + "..."
}

func truncateChars(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
