package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Persistence
	DBPath string `long:"db-path" env:"DB_PATH" default:"./rss_digest.db" description:"Path to the SQLite database file"`

	// Application configuration
	ChannelsDir       string `long:"channels-dir" env:"CHANNELS_DIR" default:"./channels" description:"Directory containing channel configuration files"`
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for channel processing"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"3600" description:"Scheduler interval in seconds"`
	LookbackDays      int    `long:"lookback-days" env:"LOOKBACK_DAYS" default:"7" description:"Only entries published within this many days are posted"`
	MaxUnitLen        int    `long:"max-unit-len" env:"MAX_UNIT_LEN" default:"4000" description:"Maximum character length of a single digest message"`
	DeliveryTimeout   int    `long:"delivery-timeout" env:"DELIVERY_TIMEOUT" default:"20" description:"Timeout per delivery call in seconds"`
	DeliveryDelayMs   int    `long:"delivery-delay-ms" env:"DELIVERY_DELAY_MS" default:"1500" description:"Pacing delay between consecutive deliveries in milliseconds"`

	// Run mode
	FromStart bool   `long:"from-start" env:"FROM_START" description:"Treat all entries as new, ignoring the seen-entry log"`
	Once      bool   `long:"once" env:"ONCE" description:"Run a single digest cycle and exit"`
	Channel   string `long:"channel" env:"CHANNEL" description:"Restrict the run to a single channel type (engineering, data_analytics, management)"`

	// Destination credentials
	TelegramToken string `long:"telegram-token" env:"TELEGRAM_TOKEN" description:"Telegram bot token (required)" required:"true"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"RSS Digest/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:            raw.DBPath,
		ChannelsDir:       raw.ChannelsDir,
		Port:              raw.Port,
		WorkerCount:       raw.WorkerCount,
		SchedulerInterval: raw.SchedulerInterval,
		LookbackDays:      raw.LookbackDays,
		MaxUnitLen:        raw.MaxUnitLen,
		DeliveryTimeout:   raw.DeliveryTimeout,
		DeliveryDelayMs:   raw.DeliveryDelayMs,
		FromStart:         raw.FromStart,
		Once:              raw.Once,
		Channel:           raw.Channel,
		TelegramToken:     raw.TelegramToken,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
