package digest

import "strings"

const defaultIcon = "📢"

// Well-known source icons, matched against the feed name.
var feedIcons = []struct {
	key  string
	icon string
}{
	{"google", "🔍"},
	{"microsoft", "🪟"},
	{"apple", "🍎"},
	{"amazon", "📦"},
	{"meta", "👥"},
	{"netflix", "🎬"},
	{"spotify", "🎵"},
	{"github", "💻"},
	{"stack", "📚"},
	{"medium", "📝"},
	{"dev.to", "👨‍💻"},
	{"hackernews", "📰"},
	{"reddit", "🔴"},
	{"twitter", "🐦"},
	{"linkedin", "💼"},
}

// Title keyword fallbacks, tried in order when the feed name matches
// nothing.
var titleIcons = []struct {
	words []string
	icon  string
}{
	{[]string{"tutorial", "guide", "how to"}, "📖"},
	{[]string{"bug", "fix", "issue"}, "🐛"},
	{[]string{"security", "vulnerability"}, "🔒"},
	{[]string{"release", "update", "version"}, "🔄"},
	{[]string{"interview", "career"}, "💼"},
	{[]string{"ai", "machine learning", "ml"}, "🤖"},
	{[]string{"cloud", "aws", "azure", "gcp"}, "☁️"},
	{[]string{"database", "sql", "nosql"}, "🗄️"},
	{[]string{"mobile", "ios", "android"}, "📱"},
	{[]string{"web", "frontend", "backend"}, "🌐"},
	{[]string{"game", "gaming"}, "🎮"},
	{[]string{"design", "ui", "ux"}, "🎨"},
	{[]string{"data", "analytics"}, "📊"},
	{[]string{"blockchain", "crypto"}, "⛓️"},
	{[]string{"startup", "business"}, "🚀"},
}

// EntryIcon picks a display icon for an entry: the source feed's icon when
// the feed is recognized, otherwise a title keyword match, otherwise the
// generic fallback.
func EntryIcon(feedName, title string) string {
	name := strings.ToLower(feedName)
	for _, fi := range feedIcons {
		if strings.Contains(name, fi.key) {
			return fi.icon
		}
	}

	titleLower := strings.ToLower(title)
	for _, ti := range titleIcons {
		for _, word := range ti.words {
			if strings.Contains(titleLower, word) {
				return ti.icon
			}
		}
	}

	return defaultIcon
}
