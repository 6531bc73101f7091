package feed

import (
	"context"
	"sync"
	"time"

	"github.com/aspk74/auto-apply/internal/domain/job"
)

type fetchTask func(ctx context.Context) ([]job.Record, error)

type fetchResult struct {
	records []job.Record
	err     error
}

// pool runs fetch tasks on a fixed set of workers with an optional shared
// rate limit, so a long company list cannot hammer a platform API.
type pool struct {
	workers int
	tasks   chan fetchTask
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func newPool(workers, buffer int) *pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &pool{
		workers: workers,
		tasks:   make(chan fetchTask, buffer),
	}
}

func (p *pool) setRateLimit(rps int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.ticker = t
	p.rate = t.C
}

func (p *pool) submit(t fetchTask) {
	if t == nil {
		return
	}
	p.tasks <- t
}

func (p *pool) close() {
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

func (p *pool) run(ctx context.Context) <-chan fetchResult {
	out := make(chan fetchResult, p.workers*4)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					records, err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- fetchResult{records: records, err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
