package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/rss-digest/app/cfg"
	"github.com/lysyi3m/rss-digest/app/channel"
	"github.com/lysyi3m/rss-digest/app/database"
	"github.com/lysyi3m/rss-digest/app/digest"
	"github.com/lysyi3m/rss-digest/app/feed"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	configCache   *channel.ConfigCache
	fetcher       *feed.Fetcher
	parser        *feed.Parser
	recency       *digest.RecencyFilter
	summarizer    *digest.Summarizer
	classifier    *digest.Classifier
	assembler     *digest.Assembler
	taxonomies    map[string]*digest.ChannelTaxonomy
	seenRepo      database.SeenRepository
	deliverer     Deliverer
	targetChannel string
	lookbackDays  int
	deliveryDelay time.Duration
	interval      time.Duration
	workerCount   int
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	taskQueue     chan TaskInterface
}

func NewScheduler(configCache *channel.ConfigCache, fetcher *feed.Fetcher, parser *feed.Parser,
	taxonomies map[string]*digest.ChannelTaxonomy, seenRepo database.SeenRepository,
	deliverer Deliverer) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	c := cfg.Get()

	return &Scheduler{
		configCache:   configCache,
		fetcher:       fetcher,
		parser:        parser,
		recency:       digest.NewRecencyFilter(),
		summarizer:    digest.NewSummarizer(),
		classifier:    digest.NewClassifier(taxonomies),
		assembler:     digest.NewAssembler(c.MaxUnitLen),
		taxonomies:    taxonomies,
		seenRepo:      seenRepo,
		deliverer:     deliverer,
		targetChannel: c.Channel,
		lookbackDays:  c.LookbackDays,
		deliveryDelay: time.Duration(c.DeliveryDelayMs) * time.Millisecond,
		interval:      time.Duration(c.SchedulerInterval) * time.Second,
		workerCount:   c.WorkerCount,
		ctx:           ctx,
		cancel:        cancel,
		taskQueue:     make(chan TaskInterface, 30),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

// RunOnce executes a single digest cycle synchronously, processing channel
// types sequentially in a fixed order, then returns.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, task := range s.buildTasks() {
		task.Start()
		if err := task.Execute(ctx); err != nil {
			slog.Error("Channel run failed", "channel", task.GetChannelName(), "error", err)
		}
	}
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueTasks() {
	tasks := s.buildTasks()
	if len(tasks) == 0 {
		slog.Debug("No enabled channel configurations found")
		return
	}

	for _, task := range tasks {
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue ProcessChannelTask", "channel", task.GetChannelName(), "error", err)
		}
	}
}

// buildTasks creates one processing task per enabled channel, in the fixed
// channel-type order so digests always post in a stable sequence.
func (s *Scheduler) buildTasks() []TaskInterface {
	configs := s.configCache.GetEnabledConfigs()

	var built []TaskInterface
	for _, name := range channel.Types {
		if s.targetChannel != "" && s.targetChannel != name {
			continue
		}

		config, ok := configs[name]
		if !ok {
			continue
		}

		built = append(built, NewProcessChannelTask(config, s.fetcher, s.parser,
			s.recency, s.summarizer, s.classifier, s.assembler, s.taxonomies,
			s.seenRepo, s.deliverer, s.lookbackDays, s.deliveryDelay))
	}

	return built
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 10*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "channel", task.GetChannelName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
