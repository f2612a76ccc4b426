package channel

import (
	"os"
	"path/filepath"
	"testing"
)

const validEngineeringYML = `chat_id: -1001234567890
enabled: true
feeds:
  - name: "DEV Community"
    url: "https://dev.to/feed"
  - name: "Hacker News"
    url: "https://hnrss.org/frontpage"
settings:
  lookback_days: 3
`

func writeChannelFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write channel file: %v", err)
	}
}

func TestConfigCacheRun(t *testing.T) {
	dir := t.TempDir()
	writeChannelFile(t, dir, "engineering.yml", validEngineeringYML)

	cc := NewConfigCache(dir)
	if err := cc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if cc.GetConfigCount() != 1 {
		t.Fatalf("Expected 1 config, got %d", cc.GetConfigCount())
	}
	if cc.GetFeedCount() != 2 {
		t.Errorf("Expected 2 feeds, got %d", cc.GetFeedCount())
	}

	config, err := cc.GetConfig("engineering")
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if config.Name != "engineering" {
		t.Errorf("Expected name engineering, got %s", config.Name)
	}
	if config.ChatID != -1001234567890 {
		t.Errorf("Expected chat_id -1001234567890, got %d", config.ChatID)
	}
	if config.Settings.LookbackDays != 3 {
		t.Errorf("Expected lookback_days 3, got %d", config.Settings.LookbackDays)
	}
	if config.Settings.Timeout != 20 {
		t.Errorf("Expected default timeout 20, got %d", config.Settings.Timeout)
	}
}

func TestConfigCacheMissingDir(t *testing.T) {
	cc := NewConfigCache("/nonexistent/channels")
	if err := cc.Run(); err != nil {
		t.Errorf("Expected missing directory to be tolerated, got %v", err)
	}
	if cc.GetConfigCount() != 0 {
		t.Errorf("Expected 0 configs, got %d", cc.GetConfigCount())
	}
}

func TestConfigCacheSkipsInvalidConfigs(t *testing.T) {
	dir := t.TempDir()
	writeChannelFile(t, dir, "engineering.yml", validEngineeringYML)
	// Unknown channel type
	writeChannelFile(t, dir, "random.yml", "chat_id: 123\nenabled: true\n")
	// Missing chat_id
	writeChannelFile(t, dir, "management.yml", "enabled: true\n")
	// Broken YAML
	writeChannelFile(t, dir, "data_analytics.yml", "chat_id: [unclosed\n")

	cc := NewConfigCache(dir)
	if err := cc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if cc.GetConfigCount() != 1 {
		t.Errorf("Expected only the valid config cached, got %d", cc.GetConfigCount())
	}
	if _, err := cc.GetConfig("random"); err == nil {
		t.Error("Expected unknown channel type to be rejected")
	}
}

func TestConfigCacheValidatesFeeds(t *testing.T) {
	dir := t.TempDir()
	writeChannelFile(t, dir, "engineering.yml", `chat_id: 123
feeds:
  - name: "No URL"
`)

	cc := NewConfigCache(dir)
	if err := cc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cc.GetConfigCount() != 0 {
		t.Errorf("Expected feed without URL to be rejected, got %d configs", cc.GetConfigCount())
	}
}

func TestConfigCacheEnabledConfigs(t *testing.T) {
	dir := t.TempDir()
	writeChannelFile(t, dir, "engineering.yml", validEngineeringYML)
	writeChannelFile(t, dir, "management.yml", "chat_id: 456\nenabled: false\n")

	cc := NewConfigCache(dir)
	if err := cc.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if cc.GetConfigCount() != 2 {
		t.Fatalf("Expected 2 configs, got %d", cc.GetConfigCount())
	}
	enabled := cc.GetEnabledConfigs()
	if len(enabled) != 1 {
		t.Fatalf("Expected 1 enabled config, got %d", len(enabled))
	}
	if _, ok := enabled["engineering"]; !ok {
		t.Error("Expected engineering to be enabled")
	}
}

func TestIsValidType(t *testing.T) {
	for _, name := range Types {
		if !IsValidType(name) {
			t.Errorf("Expected %s to be a valid type", name)
		}
	}
	if IsValidType("random") {
		t.Error("Expected random to be invalid")
	}
}
