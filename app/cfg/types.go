package cfg

type Cfg struct {
	// Persistence
	DBPath string

	// Application configuration
	ChannelsDir       string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	LookbackDays      int
	MaxUnitLen        int
	DeliveryTimeout   int
	DeliveryDelayMs   int

	// Run mode
	FromStart bool
	Once      bool
	Channel   string

	// Destination credentials
	TelegramToken string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
