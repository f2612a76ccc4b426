package channel

// Channel configuration types, loaded from one YAML file per channel type.

type Config struct {
	Name     string         // Derived from filename (without .yml extension)
	ChatID   int64          `yaml:"chat_id"`
	Enabled  bool           `yaml:"enabled"`
	Feeds    []FeedRef      `yaml:"feeds"`
	Settings ConfigSettings `yaml:"settings"`
}

type FeedRef struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type ConfigSettings struct {
	LookbackDays int `yaml:"lookback_days"` // overrides the global lookback window when set
	Timeout      int `yaml:"timeout"`       // per-feed fetch timeout, seconds
}
