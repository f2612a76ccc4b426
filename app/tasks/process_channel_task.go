package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/rss-digest/app/channel"
	"github.com/lysyi3m/rss-digest/app/database"
	"github.com/lysyi3m/rss-digest/app/digest"
	"github.com/lysyi3m/rss-digest/app/feed"
)

// ProcessChannelTask runs one full digest cycle for a single channel type:
// fetch each configured feed, keep entries that are both new and recent,
// summarize and classify them, assemble the digest and deliver it unit by
// unit. Entries are committed to the seen store only after their containing
// unit has been accepted by the destination.
type ProcessChannelTask struct {
	Task
	Config        *channel.Config
	fetcher       *feed.Fetcher
	parser        *feed.Parser
	recency       *digest.RecencyFilter
	summarizer    *digest.Summarizer
	classifier    *digest.Classifier
	assembler     *digest.Assembler
	taxonomies    map[string]*digest.ChannelTaxonomy
	seenRepo      database.SeenRepository
	deliverer     Deliverer
	lookbackDays  int
	deliveryDelay time.Duration
}

func NewProcessChannelTask(config *channel.Config, fetcher *feed.Fetcher, parser *feed.Parser,
	recency *digest.RecencyFilter, summarizer *digest.Summarizer, classifier *digest.Classifier,
	assembler *digest.Assembler, taxonomies map[string]*digest.ChannelTaxonomy,
	seenRepo database.SeenRepository, deliverer Deliverer,
	lookbackDays int, deliveryDelay time.Duration) *ProcessChannelTask {
	return &ProcessChannelTask{
		Task:          NewTask(TaskTypeProcessChannel, config.Name),
		Config:        config,
		fetcher:       fetcher,
		parser:        parser,
		recency:       recency,
		summarizer:    summarizer,
		classifier:    classifier,
		assembler:     assembler,
		taxonomies:    taxonomies,
		seenRepo:      seenRepo,
		deliverer:     deliverer,
		lookbackDays:  lookbackDays,
		deliveryDelay: deliveryDelay,
	}
}

func (t *ProcessChannelTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	taxonomy, ok := t.taxonomies[t.Config.Name]
	if !ok {
		return fmt.Errorf("no taxonomy defined for channel type '%s'", t.Config.Name)
	}

	lookback := t.lookbackDays
	if t.Config.Settings.LookbackDays > 0 {
		lookback = t.Config.Settings.LookbackDays
	}

	now := time.Now().UTC()
	byCategory := make(map[string][]digest.Classified)
	total, fresh := 0, 0

	for _, feedRef := range t.Config.Feeds {
		entries, err := t.collectFeed(ctx, feedRef)
		if err != nil {
			// One broken feed never aborts the rest of the run
			slog.Warn("Skipping feed for this run", "channel", t.Config.Name, "feed", feedRef.Name, "error", err)
			continue
		}

		total += len(entries)
		for _, entry := range entries {
			if !t.seenRepo.IsNew(feedRef.Name, entry.BestID()) {
				continue
			}
			if !t.recency.Run(entry, now, lookback) {
				continue
			}

			tldr := t.summarizer.Run(entry)
			category := t.classifier.Run(feedRef.Name, entry.Title, tldr, entry.Tags, t.Config.Name)

			byCategory[category] = append(byCategory[category], digest.Classified{
				FeedName: feedRef.Name,
				Entry:    entry,
				TLDR:     tldr,
				Category: category,
			})
			fresh++
		}
	}

	if fresh == 0 {
		slog.Info("Task completed, nothing to post",
			"type", "ProcessChannel",
			"channel", t.Config.Name,
			"duration", t.GetDuration(),
			"total", total)
		return nil
	}

	batch := t.assembler.Run(t.Config.Name, taxonomy, byCategory, now)
	delivered, failed := t.deliverBatch(ctx, batch)

	slog.Info("Task completed",
		"type", "ProcessChannel",
		"channel", t.Config.Name,
		"duration", t.GetDuration(),
		"total", total,
		"new", fresh,
		"units", len(batch.Units),
		"delivered", delivered,
		"failed", failed)

	if delivered == 0 && failed > 0 {
		return fmt.Errorf("all %d digest units failed to deliver", failed)
	}

	return nil
}

func (t *ProcessChannelTask) collectFeed(ctx context.Context, feedRef channel.FeedRef) ([]feed.Entry, error) {
	timeout := time.Duration(t.Config.Settings.Timeout) * time.Second

	data, err := t.fetcher.Run(ctx, feedRef.URL, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	_, entries, err := t.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return entries, nil
}

// deliverBatch sends units best-effort: a failed or timed-out unit is
// logged and skipped, remaining units are still attempted, and only
// entries of accepted units are marked seen.
func (t *ProcessChannelTask) deliverBatch(ctx context.Context, batch *digest.Batch) (int, int) {
	delivered, failed := 0, 0

	for i, unit := range batch.Units {
		if i > 0 && t.deliveryDelay > 0 {
			select {
			case <-ctx.Done():
				failed += len(batch.Units) - i
				return delivered, failed
			case <-time.After(t.deliveryDelay):
			}
		}

		if err := t.deliverer.Send(ctx, t.Config.ChatID, unit); err != nil {
			slog.Error("Failed to deliver digest unit",
				"channel", t.Config.Name,
				"category", unit.Category,
				"entries", len(unit.Entries),
				"error", err)
			failed++
			continue
		}
		delivered++

		for _, ref := range unit.Entries {
			if err := t.seenRepo.MarkSeen(ref.FeedName, ref.EntryID); err != nil {
				// The entry may be re-announced next run; acceptable
				slog.Error("Failed to mark entry seen", "feed", ref.FeedName, "entry_id", ref.EntryID, "error", err)
			}
		}
	}

	return delivered, failed
}
