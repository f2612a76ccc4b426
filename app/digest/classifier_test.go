package digest

import (
	"testing"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultTaxonomies())
}

func TestClassifierTagShortCircuit(t *testing.T) {
	c := newTestClassifier()

	// A mapped tag decides the category before any keyword scoring; the
	// title would otherwise score for the web category.
	category := c.Run("Tech Blog", "Web development with Kubernetes", "", []string{"Kubernetes"}, "engineering")
	if category != "cloud" {
		t.Errorf("Expected cloud, got %s", category)
	}
}

func TestClassifierFirstMappedTagWins(t *testing.T) {
	c := newTestClassifier()

	category := c.Run("Blog", "Title", "", []string{"not-a-mapped-tag", "python", "docker"}, "engineering")
	if category != "web" {
		t.Errorf("Expected web, got %s", category)
	}
}

func TestClassifierCompoundTag(t *testing.T) {
	c := newTestClassifier()

	// "Deep Learning" is not mapped as a whole, but "learning" is
	category := c.Run("Blog", "Title", "", []string{"Deep Learning"}, "engineering")
	if category != "tutorial" {
		t.Errorf("Expected tutorial, got %s", category)
	}
}

func TestClassifierCDATATag(t *testing.T) {
	c := newTestClassifier()

	category := c.Run("Blog", "Title", "", []string{"CDATA[docker]"}, "engineering")
	if category != "cloud" {
		t.Errorf("Expected cloud, got %s", category)
	}
}

func TestClassifierKeywordScoring(t *testing.T) {
	c := newTestClassifier()

	category := c.Run("Security Weekly", "New vulnerability disclosed in OpenSSL", "An exploit has been published", nil, "engineering")
	if category != "security" {
		t.Errorf("Expected security, got %s", category)
	}
}

func TestClassifierExclusionOverride(t *testing.T) {
	c := newTestClassifier()

	// "software" is an exclusion keyword for the database category: the
	// database score drops to zero and web wins on its own keywords.
	category := c.Run("Blog", "Database software", "", nil, "engineering")
	if category != "web" {
		t.Errorf("Expected web, got %s", category)
	}
}

func TestClassifierTieBreakByPriority(t *testing.T) {
	c := newTestClassifier()

	// tutorial and database both score 2; tutorial is listed first in the
	// engineering priority order.
	category := c.Run("Blog", "A guide to SQL", "", nil, "engineering")
	if category != "tutorial" {
		t.Errorf("Expected tutorial, got %s", category)
	}

	// tutorial and database tie at 4 as well
	category = c.Run("Blog", "This tutorial shows how to use SQL databases", "", nil, "engineering")
	if category != "tutorial" {
		t.Errorf("Expected tutorial, got %s", category)
	}
}

func TestClassifierNoMatchFallsBack(t *testing.T) {
	c := newTestClassifier()

	category := c.Run("Blog", "Quarterly newsletter", "", nil, "engineering")
	if category != DefaultCategory {
		t.Errorf("Expected %s, got %s", DefaultCategory, category)
	}
}

func TestClassifierUnknownChannel(t *testing.T) {
	c := newTestClassifier()

	category := c.Run("Blog", "A guide to SQL", "", nil, "nonexistent")
	if category != DefaultCategory {
		t.Errorf("Expected %s, got %s", DefaultCategory, category)
	}
}

func TestClassifierRetiredTagMapping(t *testing.T) {
	c := newTestClassifier()

	// data-mesh maps to a category the data_analytics taxonomy no longer
	// defines; the result resolves to the default bucket.
	category := c.Run("Blog", "Title", "", []string{"data-mesh"}, "data_analytics")
	if category != DefaultCategory {
		t.Errorf("Expected %s, got %s", DefaultCategory, category)
	}
}

func TestClassifierDeterministic(t *testing.T) {
	c := newTestClassifier()

	first := c.Run("Blog", "A guide to SQL", "", nil, "engineering")
	for i := 0; i < 50; i++ {
		if got := c.Run("Blog", "A guide to SQL", "", nil, "engineering"); got != first {
			t.Fatalf("Classification changed between runs: %s vs %s", first, got)
		}
	}
}

func TestTaxonomyOrderEndsWithDefault(t *testing.T) {
	for name, taxonomy := range DefaultTaxonomies() {
		order := taxonomy.Order()
		if len(order) == 0 {
			t.Fatalf("%s: empty order", name)
		}
		if order[len(order)-1] != DefaultCategory {
			t.Errorf("%s: expected %s last, got %s", name, DefaultCategory, order[len(order)-1])
		}
		for _, key := range taxonomy.Priority {
			if _, ok := taxonomy.Categories[key]; !ok {
				t.Errorf("%s: priority entry %s has no category", name, key)
			}
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"  Docker ", "docker"},
		{"CDATA[python]", "python"},
		{"CDATA[ Machine Learning ]", "machine learning"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeTag(tc.input); got != tc.expected {
			t.Errorf("normalizeTag(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
