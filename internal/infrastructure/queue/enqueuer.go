package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultQueue  = "default"
	repairRetries = 10
)

//go:generate moq -rm -out task_enqueuer_mock.gen.go . taskEnqueuer:TaskEnqueuerMock
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer ставит задачи починки. TaskID не даёт поставить одну и ту же
// починку дважды, пока первая не выполнена.
type Enqueuer struct {
	client taskEnqueuer
	queue  string
}

func NewEnqueuer(client taskEnqueuer, queue string) *Enqueuer {
	if queue == "" {
		queue = DefaultQueue
	}

	return &Enqueuer{client: client, queue: queue}
}

func (e *Enqueuer) EnqueueRepair(ctx context.Context, offerID string) error {
	task, err := NewRepairTask(offerID)
	if err != nil {
		return err
	}

	return e.enqueue(ctx, task, "repair:"+offerID)
}

func (e *Enqueuer) EnqueueRecord(ctx context.Context, offer entity.Offer) error {
	task, err := NewRecordTask(offer)
	if err != nil {
		return err
	}

	return e.enqueue(ctx, task, "record:"+offer.ID)
}

func (e *Enqueuer) enqueue(ctx context.Context, task *asynq.Task, taskID string) error {
	info, err := e.client.EnqueueContext(ctx, task,
		asynq.TaskID(taskID),
		asynq.Queue(e.queue),
		asynq.MaxRetry(repairRetries),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}

		return fmt.Errorf("asynq.EnqueueContext: %w", err)
	}

	logger(ctx).Info("task enqueued",
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String("task-id", info.ID),
		slog.String("queue", info.Queue),
	)

	return nil
}
