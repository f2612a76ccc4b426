package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/rss-digest/app/cfg"
	"github.com/lysyi3m/rss-digest/app/channel"
	"github.com/lysyi3m/rss-digest/app/database"
)

func NewHandler(seenRepo database.SeenRepository, configCache *channel.ConfigCache) *Handler {
	return &Handler{
		seenRepo:    seenRepo,
		configCache: configCache,
		startedAt:   time.Now(),
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   cfg.Get().Version,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	seenByFeed, err := h.seenRepo.CountByFeed()
	if err != nil {
		slog.Error("Database error", "operation", "count_seen", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	total := 0
	for _, count := range seenByFeed {
		total += count
	}

	c.JSON(http.StatusOK, StatsResponse{
		Channels:    h.configCache.GetConfigCount(),
		Feeds:       h.configCache.GetFeedCount(),
		SeenEntries: total,
		SeenByFeed:  seenByFeed,
	})
}
