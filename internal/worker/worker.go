package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/services"
)

// DedupWorker sweeps expired idempotency dedup entries in the background.
type DedupWorker struct {
	Orders        services.OrdersService
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	SweepInterval time.Duration
}

// NewDedupWorker - janitor for the idempotency dedup index
func NewDedupWorker(orders services.OrdersService, sweepInterval time.Duration) *DedupWorker {
	return &DedupWorker{
		Orders:        orders,
		QuitChan:      make(chan struct{}),
		SweepInterval: sweepInterval,
	}
}

// Start - runs the worker in the background
func (w *DedupWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - stops the worker and waits for the current sweep
func (w *DedupWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - main worker loop
func (w *DedupWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("DedupWorker signal stop")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep - drops dedup entries past their TTL
func (w *DedupWorker) Sweep(ctx context.Context) {
	removed, err := w.Orders.SweepDedup(ctx, time.Now())
	if err != nil {
		logger.Error("error sweeping dedup entries", err)
		return
	}
	if removed > 0 {
		logger.Info("swept dedup entries", "removed", removed)
	}
}
