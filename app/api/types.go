package api

import (
	"time"

	"github.com/lysyi3m/rss-digest/app/channel"
	"github.com/lysyi3m/rss-digest/app/database"
)

type Handler struct {
	seenRepo    database.SeenRepository
	configCache *channel.ConfigCache
	startedAt   time.Time
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

type StatsResponse struct {
	Channels    int            `json:"channels"`
	Feeds       int            `json:"feeds"`
	SeenEntries int            `json:"seen_entries"`
	SeenByFeed  map[string]int `json:"seen_by_feed"`
}
