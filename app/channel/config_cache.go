package channel

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Types is the fixed set of channel types the taxonomy knows about.
var Types = []string{"engineering", "data_analytics", "management"}

func IsValidType(name string) bool {
	for _, t := range Types {
		if t == name {
			return true
		}
	}
	return false
}

type ConfigCache struct {
	channelsDir string
	cache       map[string]*Config
	mu          sync.RWMutex
}

func NewConfigCache(channelsDir string) *ConfigCache {
	return &ConfigCache{
		channelsDir: channelsDir,
		cache:       make(map[string]*Config),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.channelsDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.channelsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		// Derive channel name from filename (remove .yml extension)
		fileName := filepath.Base(file)
		channelName := fileName[:len(fileName)-4]

		config, err := cc.LoadConfig(channelName)
		if err != nil {
			// A malformed channel config disables that channel only
			slog.Error("Skipping invalid channel configuration", "channel", channelName, "error", err)
			continue
		}

		slog.Debug("Channel configuration loaded", "channel", channelName, "enabled", config.Enabled, "feeds", len(config.Feeds))
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(channelName string) (*Config, error) {
	configFile := cc.getConfigFilePath(channelName)
	config, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	// Set channel name from parameter
	config.Name = channelName

	if err := cc.validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[config.Name] = config

	return config, nil
}

func (cc *ConfigCache) GetConfig(channelName string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	config, ok := cc.cache[channelName]
	if !ok {
		return nil, fmt.Errorf("channel config with name '%s' not found", channelName)
	}
	return config, nil
}

func (cc *ConfigCache) GetConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configsCopy := make(map[string]*Config, len(cc.cache))
	for k, v := range cc.cache {
		configsCopy[k] = v
	}
	return configsCopy
}

func (cc *ConfigCache) GetEnabledConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	enabledConfigs := make(map[string]*Config)
	for k, v := range cc.cache {
		if v.Enabled {
			enabledConfigs[k] = v
		}
	}
	return enabledConfigs
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) GetFeedCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	count := 0
	for _, config := range cc.cache {
		count += len(config.Feeds)
	}
	return count
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 20
	}

	return &config, nil
}

func (cc *ConfigCache) validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if !IsValidType(config.Name) {
		return fmt.Errorf("unknown channel type '%s'", config.Name)
	}

	if config.ChatID == 0 {
		return fmt.Errorf("chat_id is required")
	}

	if config.Settings.LookbackDays < 0 {
		return fmt.Errorf("lookback_days must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	for i, feed := range config.Feeds {
		if feed.Name == "" {
			return fmt.Errorf("feed at index %d has no name", i)
		}
		if feed.URL == "" {
			return fmt.Errorf("feed '%s' has no URL", feed.Name)
		}
	}

	return nil
}

func (cc *ConfigCache) getConfigFilePath(channelName string) string {
	return filepath.Join(cc.channelsDir, channelName+".yml")
}
