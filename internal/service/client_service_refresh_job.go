package service

import (
	"context"
	"sync"
	"time"
)

type clientRefreshJob struct {
	syncService StudentSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls syncService.List on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(syncService StudentSyncService) ClientRefreshJob {
	return &clientRefreshJob{syncService: syncService}
}

// Start implements ClientRefreshJob. Any running job is stopped first. The
// goroutine exits when ctx is cancelled or Stop is called; errors from List
// are already reported to the sink and are dropped here.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.syncService.List(jobCtx)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
