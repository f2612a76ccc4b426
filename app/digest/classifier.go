package digest

import (
	"strings"
)

// Classifier assigns each entry to one category of a channel taxonomy.
// Classification is deterministic: structured tags are tried first and
// short-circuit on the first mapped term; otherwise categories are scored
// by keyword hits and ties are resolved by the taxonomy priority list.
type Classifier struct {
	taxonomies map[string]*ChannelTaxonomy
}

func NewClassifier(taxonomies map[string]*ChannelTaxonomy) *Classifier {
	return &Classifier{taxonomies: taxonomies}
}

func (c *Classifier) Run(feedName, title, summary string, tags []string, channelName string) string {
	taxonomy, ok := c.taxonomies[channelName]
	if !ok {
		return DefaultCategory
	}

	if category, ok := c.matchTags(tags, taxonomy); ok {
		return category
	}

	return c.scoreKeywords(feedName, title, summary, taxonomy)
}

// matchTags looks each structured tag up in the channel tag mapping.
// The first mapped tag wins; remaining tags are not considered.
func (c *Classifier) matchTags(tags []string, taxonomy *ChannelTaxonomy) (string, bool) {
	for _, tag := range tags {
		term := normalizeTag(tag)
		if term == "" {
			continue
		}

		if mapped, ok := taxonomy.TagMapping[term]; ok {
			return c.resolve(mapped, taxonomy), true
		}

		// Compound tags like "Web Development" match on individual words
		for _, word := range strings.Fields(term) {
			if mapped, ok := taxonomy.TagMapping[word]; ok {
				return c.resolve(mapped, taxonomy), true
			}
		}
	}

	return "", false
}

// resolve guards against tag mappings that point at a category the taxonomy
// no longer defines.
func (c *Classifier) resolve(category string, taxonomy *ChannelTaxonomy) string {
	if _, ok := taxonomy.Categories[category]; ok {
		return category
	}
	return DefaultCategory
}

func (c *Classifier) scoreKeywords(feedName, title, summary string, taxonomy *ChannelTaxonomy) string {
	text := strings.ToLower(feedName + " " + title + " " + summary)

	scores := make(map[string]int, len(taxonomy.Categories))
	for key, category := range taxonomy.Categories {
		if key == DefaultCategory {
			continue
		}

		score := 0
		for _, keyword := range category.Primary {
			if strings.Contains(text, keyword) {
				score += 2
			}
		}
		for _, keyword := range category.Secondary {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		for _, keyword := range category.Exclude {
			if strings.Contains(text, keyword) {
				score = 0
				break
			}
		}

		scores[key] = score
	}

	maxScore := 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		return DefaultCategory
	}

	// The priority list, not map iteration order, decides ties
	for _, key := range taxonomy.Priority {
		if scores[key] == maxScore {
			return key
		}
	}

	return DefaultCategory
}

// normalizeTag lowercases, trims, and unwraps CDATA-style bracketing that
// some feeds leave in their category terms.
func normalizeTag(tag string) string {
	term := strings.TrimSpace(strings.ToLower(tag))
	if strings.HasPrefix(term, "cdata[") && strings.HasSuffix(term, "]") {
		term = strings.TrimSpace(term[6 : len(term)-1])
	}
	return term
}
