package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/pkg/logx"
)

//go:generate moq -rm -out drift_source_mock.gen.go . DriftSource:DriftSourceMock
//go:generate moq -rm -out repair_enqueuer_mock.gen.go . RepairEnqueuer:RepairEnqueuerMock

type DriftSource interface {
	DriftedOffers(
		ctx context.Context,
		afterID string,
		limit int,
		wait func(context.Context) error,
	) ([]entity.Offer, string, error)
}

type RepairEnqueuer interface {
	EnqueueRepair(ctx context.Context, offerID string) error
}

const (
	defaultWatchInterval = time.Minute
	defaultWatchBatch    = 100
)

// EscrowWatcher обходит записи REQUESTED страницами и ставит в очередь
// ремонт тех, чей эскроу на леджере уже закрыт.
type EscrowWatcher struct {
	source DriftSource
	queue  RepairEnqueuer

	interval  time.Duration
	batchSize int
	cursor    string

	requestInterval time.Duration
	lastRequest     time.Time

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewEscrowWatcher(source DriftSource, queue RepairEnqueuer) *EscrowWatcher {
	return &EscrowWatcher{
		source:          source,
		queue:           queue,
		interval:        defaultWatchInterval,
		batchSize:       defaultWatchBatch,
		requestInterval: 100 * time.Millisecond,
	}
}

func (w *EscrowWatcher) WithInterval(interval time.Duration) *EscrowWatcher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *EscrowWatcher) WithBatchSize(size int) *EscrowWatcher {
	if size > 0 {
		w.batchSize = size
	}
	return w
}

// WithRateControl делит лимит запросов к леджеру между клиентами.
func (w *EscrowWatcher) WithRateControl(ratePerClient time.Duration, clientCount int) *EscrowWatcher {
	if clientCount > 0 {
		w.requestInterval = ratePerClient / time.Duration(clientCount)
	}
	return w
}

func (w *EscrowWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("watcher is already running")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("escrow watcher stopped with error", logx.Error(err))
		}
	}()

	return nil
}

func (w *EscrowWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *EscrowWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *EscrowWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("escrow watcher started",
		slog.Duration("interval", w.interval),
		slog.Int("batch", w.batchSize),
	)

	for {
		done, err := w.scanPage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger(ctx).Info("escrow watcher stopped")
				return ctx.Err()
			}

			logger(ctx).Error("escrow watch page failed", logx.Error(err))
		}

		if !done && err == nil {
			continue
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("escrow watcher stopped")
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

// scanPage возвращает true, когда обход дошёл до конца и курсор сброшен.
func (w *EscrowWatcher) scanPage(ctx context.Context) (bool, error) {
	drifted, lastID, err := w.source.DriftedOffers(ctx, w.cursor, w.batchSize, w.waitForNextSlot)
	if err != nil {
		return false, fmt.Errorf("source.DriftedOffers: %w", err)
	}

	for _, o := range drifted {
		if err := w.queue.EnqueueRepair(ctx, o.ID); err != nil {
			logger(ctx).Error("failed to enqueue offer repair",
				slog.String(logx.FieldOfferID, o.ID),
				logx.Error(err),
			)
			continue
		}

		logger(ctx).Info("offer drift found, repair enqueued",
			slog.String(logx.FieldOfferID, o.ID),
			logx.Stringer(logx.FieldEscrowAddress, o.EscrowAddress),
		)
	}

	if lastID == w.cursor {
		w.cursor = ""
		return true, nil
	}

	w.cursor = lastID

	return false, nil
}

func (w *EscrowWatcher) waitForNextSlot(ctx context.Context) error {
	if w.lastRequest.IsZero() {
		w.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(w.lastRequest)
	if elapsed >= w.requestInterval {
		w.lastRequest = time.Now()
		return nil
	}

	wait := w.requestInterval - elapsed

	select {
	case <-time.After(wait):
		w.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
