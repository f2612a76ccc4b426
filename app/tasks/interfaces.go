package tasks

import (
	"context"

	"github.com/lysyi3m/rss-digest/app/digest"
)

type TaskSchedulerInterface interface {
	Start()
	Stop()
	RunOnce(ctx context.Context)
	EnqueueTask(task TaskInterface) error
}

// Deliverer hands one rendered output unit to the destination surface and
// reports success or failure. Entries are only marked seen after a
// successful hand-off.
type Deliverer interface {
	Send(ctx context.Context, chatID int64, unit digest.Unit) error
}
